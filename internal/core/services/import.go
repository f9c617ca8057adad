package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// ImportService loads exported history and bookmarks into writable stores.
type ImportService struct {
	history   driven.HistoryStore
	bookmarks driven.BookmarkStore
	parser    driven.BookmarkParser
	now       func() time.Time
}

// NewImportService creates a new import service.
func NewImportService(history driven.HistoryStore, bookmarks driven.BookmarkStore) *ImportService {
	return &ImportService{
		history:   history,
		bookmarks: bookmarks,
		now:       time.Now,
	}
}

// WithBookmarkParser sets the decoder used by ImportBookmarksHTML.
func (s *ImportService) WithBookmarkParser(p driven.BookmarkParser) *ImportService {
	s.parser = p
	return s
}

// ImportHistory reads a JSON array of history entries.
// Entries without a url are rejected; a missing visit count counts as one
// visit and a missing visit time as now.
func (s *ImportService) ImportHistory(ctx context.Context, r io.Reader) (int, error) {
	if s.history == nil {
		return 0, fmt.Errorf("history store: %w", domain.ErrNotConfigured)
	}

	var entries []domain.HistoryEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decoding history: %w", err)
	}

	for i := range entries {
		entries[i].URL = strings.TrimSpace(entries[i].URL)
		if entries[i].URL == "" {
			return 0, fmt.Errorf("history entry %d: %w: url is required", i, domain.ErrInvalidInput)
		}
		if entries[i].VisitCount <= 0 {
			entries[i].VisitCount = 1
		}
		if entries[i].LastVisitTime.IsZero() {
			entries[i].LastVisitTime = s.now()
		}
	}

	if err := s.history.RecordVisits(ctx, entries); err != nil {
		return 0, fmt.Errorf("recording visits: %w", err)
	}

	logger.Info("Imported %d history entries", len(entries))
	return len(entries), nil
}

// ImportBookmarks reads a JSON array of bookmarks.
// Bookmarks without an ID are assigned a new UUID.
func (s *ImportService) ImportBookmarks(ctx context.Context, r io.Reader) (int, error) {
	if s.bookmarks == nil {
		return 0, fmt.Errorf("bookmark store: %w", domain.ErrNotConfigured)
	}

	var bookmarks []domain.Bookmark
	if err := json.NewDecoder(r).Decode(&bookmarks); err != nil {
		return 0, fmt.Errorf("decoding bookmarks: %w", err)
	}
	return s.saveBookmarks(ctx, bookmarks)
}

// ImportBookmarksHTML parses a bookmark export with the configured parser.
func (s *ImportService) ImportBookmarksHTML(ctx context.Context, r io.Reader) (int, error) {
	if s.bookmarks == nil {
		return 0, fmt.Errorf("bookmark store: %w", domain.ErrNotConfigured)
	}
	if s.parser == nil {
		return 0, fmt.Errorf("bookmark parser: %w", domain.ErrNotConfigured)
	}

	bookmarks, err := s.parser.ParseBookmarks(r)
	if err != nil {
		return 0, fmt.Errorf("parsing bookmarks: %w", err)
	}
	return s.saveBookmarks(ctx, bookmarks)
}

// saveBookmarks validates bookmarks, assigns missing IDs and saves them.
func (s *ImportService) saveBookmarks(ctx context.Context, bookmarks []domain.Bookmark) (int, error) {
	for i := range bookmarks {
		bookmarks[i].URL = strings.TrimSpace(bookmarks[i].URL)
		if bookmarks[i].URL == "" {
			return 0, fmt.Errorf("bookmark %d: %w: url is required", i, domain.ErrInvalidInput)
		}
		if bookmarks[i].ID == "" {
			bookmarks[i].ID = uuid.NewString()
		}
	}

	if err := s.bookmarks.SaveBookmarks(ctx, bookmarks); err != nil {
		return 0, fmt.Errorf("saving bookmarks: %w", err)
	}

	logger.Info("Imported %d bookmarks", len(bookmarks))
	return len(bookmarks), nil
}
