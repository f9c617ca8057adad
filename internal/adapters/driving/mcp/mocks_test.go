package mcp

import (
	"context"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   domain.ResultList
	lastRaw   string
	lastScope domain.FilterScope
}

func (m *mockSearchService) Parse(raw string) domain.SearchQuery {
	return domain.SearchQuery{FreeText: raw}
}

func (m *mockSearchService) Aggregate(
	_ context.Context,
	_ domain.SearchQuery,
	scope domain.FilterScope,
) domain.ResultList {
	m.lastScope = scope
	return m.results
}

func (m *mockSearchService) Search(_ context.Context, raw string, scope domain.FilterScope) domain.ResultList {
	m.lastRaw = raw
	m.lastScope = scope
	return m.results
}

// mockSuggestionService is a mock implementation of driving.SuggestionService.
type mockSuggestionService struct {
	suggestions []domain.Suggestion
}

func (m *mockSuggestionService) Suggest(_ string) []domain.Suggestion {
	return m.suggestions
}
