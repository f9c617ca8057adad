package services

import (
	"context"
	"sort"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService aggregates open tabs, history and bookmarks into one
// ordered ResultList.
type SearchService struct {
	tabs      driven.TabSource
	history   driven.HistorySource
	bookmarks driven.BookmarkSource
	settings  domain.AppSettings
}

// NewSearchService creates a new search service.
// Any source may be nil; its section is then always empty.
// Non-positive limits in settings fall back to the defaults.
func NewSearchService(
	tabs driven.TabSource,
	history driven.HistorySource,
	bookmarks driven.BookmarkSource,
	settings domain.AppSettings,
) *SearchService {
	return &SearchService{
		tabs:      tabs,
		history:   history,
		bookmarks: bookmarks,
		settings:  normaliseSettings(settings),
	}
}

// Parse splits raw input into operators and free text.
func (s *SearchService) Parse(raw string) domain.SearchQuery {
	return ParseQuery(raw)
}

// Search parses raw and aggregates the result.
func (s *SearchService) Search(ctx context.Context, raw string, scope domain.FilterScope) domain.ResultList {
	return s.Aggregate(ctx, s.Parse(raw), scope)
}

// Aggregate queries each source in scope, in the order tabs, history,
// bookmarks, and appends a literal navigation entry when the free text
// looks like a url. A failing source only loses its own section.
func (s *SearchService) Aggregate(
	ctx context.Context,
	query domain.SearchQuery,
	scope domain.FilterScope,
) domain.ResultList {
	logger.Section("Aggregate")
	logger.Debug("Free text: %q, operators: %v, scope: %s", query.FreeText, query.Operators, scope)

	var results domain.ResultList

	if scope.Includes(domain.SourceTab) {
		for _, tab := range s.matchTabs(ctx, query) {
			results = append(results, domain.ResultEntry{Candidate: tab, Source: domain.SourceTab})
		}
	}

	if scope.Includes(domain.SourceHistory) && query.FreeText != "" {
		for _, entry := range s.matchHistory(ctx, query) {
			results = append(results, domain.ResultEntry{Candidate: entry, Source: domain.SourceHistory})
		}
	}

	if scope.Includes(domain.SourceBookmark) && query.FreeText != "" {
		for _, bm := range s.matchBookmarks(ctx, query) {
			results = append(results, domain.ResultEntry{Candidate: bm, Source: domain.SourceBookmark})
		}
	}

	if IsLiteralURL(query.FreeText) {
		results = append(results, domain.ResultEntry{
			Candidate: domain.LiteralNavigation{Text: query.FreeText},
			Source:    domain.SourceNavigate,
		})
	}

	logger.Debug("Results: %d tabs, %d history, %d bookmarks, %d literal",
		results.Count(domain.SourceTab), results.Count(domain.SourceHistory),
		results.Count(domain.SourceBookmark), results.Count(domain.SourceNavigate))

	return results
}

// matchTabs keeps tabs that satisfy every operator and fuzzy-match the
// free text on title, url or host. Source order is preserved.
func (s *SearchService) matchTabs(ctx context.Context, query domain.SearchQuery) []domain.Tab {
	if s.tabs == nil {
		logger.Debug("Tab source not configured")
		return nil
	}

	tabs, err := s.tabs.ListOpenTabs(ctx)
	if err != nil {
		logger.Warn("Omitting tabs section: %v", err)
		return nil
	}

	var matched []domain.Tab
	for _, tab := range tabs {
		if !MatchesOperators(tab, query.Operators) {
			continue
		}
		host, _ := hostOf(tab.URL)
		if FuzzyMatch(query.FreeText, tab.Title) ||
			FuzzyMatch(query.FreeText, tab.URL) ||
			FuzzyMatch(query.FreeText, host) {
			matched = append(matched, tab)
		}
	}
	return matched
}

// matchHistory dedups by url keeping the first occurrence, applies the
// operators, ranks by visit count then recency and truncates.
// Dedup runs before the operators: a repeated url is dropped even when only
// its later copy would pass a title: filter.
func (s *SearchService) matchHistory(ctx context.Context, query domain.SearchQuery) []domain.HistoryEntry {
	if s.history == nil {
		logger.Debug("History source not configured")
		return nil
	}

	cfg := s.settings.History
	entries, err := s.history.SearchHistory(ctx, query.FreeText, cfg.Lookback(), cfg.MaxResults)
	if err != nil {
		logger.Warn("Omitting history section: %v", err)
		return nil
	}

	seen := make(map[string]struct{}, len(entries))
	matched := make([]domain.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry.URL]; dup {
			continue
		}
		seen[entry.URL] = struct{}{}
		if MatchesOperators(entry, query.Operators) {
			matched = append(matched, entry)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.VisitCount != b.VisitCount {
			return a.VisitCount > b.VisitCount
		}
		return a.LastVisitTime.After(b.LastVisitTime)
	})

	if len(matched) > cfg.Limit {
		matched = matched[:cfg.Limit]
	}
	return matched
}

// matchBookmarks keeps bookmarks with a url that satisfy the operators,
// in source order, deduplicated by url and truncated.
func (s *SearchService) matchBookmarks(ctx context.Context, query domain.SearchQuery) []domain.Bookmark {
	if s.bookmarks == nil {
		logger.Debug("Bookmark source not configured")
		return nil
	}

	bookmarks, err := s.bookmarks.SearchBookmarks(ctx, query.FreeText)
	if err != nil {
		logger.Warn("Omitting bookmarks section: %v", err)
		return nil
	}

	limit := s.settings.Bookmarks.Limit
	seen := make(map[string]struct{}, len(bookmarks))
	matched := make([]domain.Bookmark, 0, limit)
	for _, bm := range bookmarks {
		if len(matched) == limit {
			break
		}
		if bm.URL == "" {
			continue
		}
		if _, dup := seen[bm.URL]; dup {
			continue
		}
		seen[bm.URL] = struct{}{}
		if MatchesOperators(bm, query.Operators) {
			matched = append(matched, bm)
		}
	}
	return matched
}

// normaliseSettings replaces non-positive limits with defaults.
func normaliseSettings(s domain.AppSettings) domain.AppSettings {
	defaults := domain.DefaultAppSettings()
	if s.History.LookbackDays <= 0 {
		s.History.LookbackDays = defaults.History.LookbackDays
	}
	if s.History.MaxResults <= 0 {
		s.History.MaxResults = defaults.History.MaxResults
	}
	if s.History.Limit <= 0 {
		s.History.Limit = defaults.History.Limit
	}
	if s.Bookmarks.Limit <= 0 {
		s.Bookmarks.Limit = defaults.Bookmarks.Limit
	}
	if !s.Search.DefaultScope.IsValid() {
		s.Search.DefaultScope = defaults.Search.DefaultScope
	}
	if len(s.Suggestions.CommonDomains) == 0 {
		s.Suggestions.CommonDomains = defaults.Suggestions.CommonDomains
	}
	return s
}
