package services

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
)

// Ensure SuggestionService implements the interface.
var _ driving.SuggestionService = (*SuggestionService)(nil)

// minDomainQuery is the input length above which domain suggestions appear.
const minDomainQuery = 2

// SuggestionService produces operator and common-domain hints.
type SuggestionService struct {
	domains []string
}

// NewSuggestionService creates a suggestion service over the given domain
// shortlist. A nil or empty list uses domain.DefaultCommonDomains.
func NewSuggestionService(domains []string) *SuggestionService {
	if len(domains) == 0 {
		domains = domain.DefaultCommonDomains
	}
	list := make([]string, len(domains))
	copy(list, domains)
	return &SuggestionService{domains: list}
}

// Suggest returns operator suggestions followed by domain suggestions.
func (s *SuggestionService) Suggest(raw string) []domain.Suggestion {
	lower := strings.ToLower(raw)
	var out []domain.Suggestion

	for _, name := range OperatorNames() {
		if strings.HasPrefix(lower, string(name)) {
			out = append(out, domain.Suggestion{
				Text:        name.Prefix() + "example.com",
				Description: "Search by " + string(name),
			})
		}
	}

	if utf8.RuneCountInString(raw) > minDomainQuery {
		for _, d := range s.domains {
			if strings.Contains(strings.ToLower(d), lower) {
				out = append(out, domain.Suggestion{Text: d, Description: "Common domain"})
			}
		}
	}

	return out
}
