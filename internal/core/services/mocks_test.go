package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// --- Mock implementations ---

// mockTabSource implements driven.TabSource for testing.
type mockTabSource struct {
	tabs  []domain.Tab
	err   error
	calls int
}

func (m *mockTabSource) ListOpenTabs(_ context.Context) ([]domain.Tab, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.tabs, nil
}

// mockHistorySource implements driven.HistorySource for testing.
type mockHistorySource struct {
	SearchFunc func(ctx context.Context, text string, lookback time.Duration, max int) ([]domain.HistoryEntry, error)

	mu           sync.Mutex
	lastText     string
	lastLookback time.Duration
	lastMax      int
	calls        int
}

func (m *mockHistorySource) SearchHistory(
	ctx context.Context,
	text string,
	lookback time.Duration,
	maxResults int,
) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	m.calls++
	m.lastText = text
	m.lastLookback = lookback
	m.lastMax = maxResults
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, text, lookback, maxResults)
	}
	return nil, nil
}

// mockBookmarkSource implements driven.BookmarkSource for testing.
type mockBookmarkSource struct {
	bookmarks []domain.Bookmark
	err       error
	lastText  string
	calls     int
}

func (m *mockBookmarkSource) SearchBookmarks(_ context.Context, text string) ([]domain.Bookmark, error) {
	m.calls++
	m.lastText = text
	if m.err != nil {
		return nil, m.err
	}
	return m.bookmarks, nil
}

// mockBrowser implements driven.Browser for testing.
type mockBrowser struct {
	calls []string
	err   error
}

func (m *mockBrowser) ActivateTab(_ context.Context, _ int, url string) error {
	m.calls = append(m.calls, "activate:"+url)
	return m.err
}

func (m *mockBrowser) OpenInNewTab(_ context.Context, url string, background bool) error {
	if background {
		m.calls = append(m.calls, "background:"+url)
	} else {
		m.calls = append(m.calls, "tab:"+url)
	}
	return m.err
}

func (m *mockBrowser) OpenInNewWindow(_ context.Context, url string) error {
	m.calls = append(m.calls, "window:"+url)
	return m.err
}

// mockHistoryStore implements driven.HistoryStore for testing.
type mockHistoryStore struct {
	mockHistorySource
	recorded []domain.HistoryEntry
	err      error
}

func (m *mockHistoryStore) RecordVisits(_ context.Context, entries []domain.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	m.recorded = append(m.recorded, entries...)
	return nil
}

// mockBookmarkStore implements driven.BookmarkStore for testing.
type mockBookmarkStore struct {
	mockBookmarkSource
	saved []domain.Bookmark
	err   error
}

func (m *mockBookmarkStore) SaveBookmarks(_ context.Context, bookmarks []domain.Bookmark) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, bookmarks...)
	return nil
}

func staticHistory(entries ...domain.HistoryEntry) *mockHistorySource {
	return &mockHistorySource{
		SearchFunc: func(context.Context, string, time.Duration, int) ([]domain.HistoryEntry, error) {
			return entries, nil
		},
	}
}
