package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure BookmarkStore implements the interface.
var _ driven.BookmarkStore = (*BookmarkStore)(nil)

// BookmarkStore is an in-memory driven.BookmarkStore preserving insertion order.
type BookmarkStore struct {
	mu        sync.RWMutex
	order     []string
	bookmarks map[string]domain.Bookmark
}

// NewBookmarkStore creates an empty bookmark store.
func NewBookmarkStore() *BookmarkStore {
	return &BookmarkStore{
		bookmarks: make(map[string]domain.Bookmark),
	}
}

// SaveBookmarks inserts or replaces bookmarks by ID.
// Replaced bookmarks keep their original position.
func (s *BookmarkStore) SaveBookmarks(_ context.Context, bookmarks []domain.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range bookmarks {
		if b.ID == "" {
			return domain.ErrInvalidInput
		}
		if _, ok := s.bookmarks[b.ID]; !ok {
			s.order = append(s.order, b.ID)
		}
		s.bookmarks[b.ID] = b
	}
	return nil
}

// SearchBookmarks returns bookmarks matching text in insertion order.
func (s *BookmarkStore) SearchBookmarks(ctx context.Context, text string) ([]domain.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Bookmark
	for _, id := range s.order {
		b := s.bookmarks[id]
		if matchesWords(text, b.Title, b.URL) {
			out = append(out, b)
		}
	}
	return out, nil
}
