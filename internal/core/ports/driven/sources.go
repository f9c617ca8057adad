package driven

import (
	"context"
	"io"
	"time"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// TabSource lists the currently open tabs.
type TabSource interface {
	// ListOpenTabs returns a snapshot of open tabs in browser order.
	ListOpenTabs(ctx context.Context) ([]domain.Tab, error)
}

// HistorySource looks up visited pages.
type HistorySource interface {
	// SearchHistory returns up to maxResults entries visited within the
	// lookback window whose title or url matches text.
	// Matching is the source's responsibility; entries may repeat a url.
	SearchHistory(ctx context.Context, text string, lookback time.Duration, maxResults int) ([]domain.HistoryEntry, error)
}

// BookmarkSource looks up saved pages.
type BookmarkSource interface {
	// SearchBookmarks returns bookmarks whose title or url matches text.
	SearchBookmarks(ctx context.Context, text string) ([]domain.Bookmark, error)
}

// HistoryStore is a writable history backend.
type HistoryStore interface {
	HistorySource

	// RecordVisits upserts entries by url. Visit counts are summed and the
	// latest visit time is kept.
	RecordVisits(ctx context.Context, entries []domain.HistoryEntry) error
}

// BookmarkStore is a writable bookmark backend.
type BookmarkStore interface {
	BookmarkSource

	// SaveBookmarks inserts or replaces bookmarks by ID.
	SaveBookmarks(ctx context.Context, bookmarks []domain.Bookmark) error
}

// BookmarkParser decodes a browser bookmark export.
type BookmarkParser interface {
	// ParseBookmarks returns every bookmark in r in document order.
	// Folders are flattened; entries without a url are skipped.
	ParseBookmarks(r io.Reader) ([]domain.Bookmark, error)
}
