package driving

import (
	"context"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// SearchService turns raw input into an ordered ResultList.
// Source failures never surface as errors; the affected section is omitted.
type SearchService interface {
	// Parse splits raw input into operators and lower-cased free text.
	Parse(raw string) domain.SearchQuery

	// Aggregate queries the sources in scope and merges their matches.
	Aggregate(ctx context.Context, query domain.SearchQuery, scope domain.FilterScope) domain.ResultList

	// Search parses raw and aggregates the result.
	Search(ctx context.Context, raw string, scope domain.FilterScope) domain.ResultList
}

// SuggestionService produces autocomplete hints from raw input.
type SuggestionService interface {
	// Suggest returns suggestions in display order.
	Suggest(raw string) []domain.Suggestion
}
