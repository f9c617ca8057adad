package firefox

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/quickswitch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure Source implements the interfaces.
var (
	_ driven.HistorySource  = (*Source)(nil)
	_ driven.BookmarkSource = (*Source)(nil)
)

// bookmarkType is moz_bookmarks.type for a url bookmark (folders are 2).
const bookmarkType = 1

// Source serves history and bookmarks from a Firefox places database.
type Source struct {
	db      *sql.DB
	profile string
	now     func() time.Time
}

// NewSource opens places.sqlite in profileDir. If profileDir is empty the
// default profile is located with FindProfile.
func NewSource(profileDir string) (*Source, error) {
	if profileDir == "" {
		found, err := FindProfile()
		if err != nil {
			return nil, err
		}
		profileDir = found
	}

	path := filepath.Join(profileDir, placesFile)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("firefox places database: %w", err)
	}

	db, err := sql.Open("sqlite", placesDSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening places database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening places database: %w", err)
	}

	return &Source{
		db:      db,
		profile: profileDir,
		now:     time.Now,
	}, nil
}

// placesDSN builds a read-only immutable URI for path.
func placesDSN(path string) string {
	return "file:" + filepath.ToSlash(path) + "?mode=ro&immutable=1"
}

// Profile returns the profile directory in use.
func (s *Source) Profile() string {
	return s.profile
}

// Close closes the database.
func (s *Source) Close() error {
	return s.db.Close()
}

// SearchHistory returns visited, non-hidden places matching text, newest first.
// Firefox stores last_visit_date in microseconds.
func (s *Source) SearchHistory(
	ctx context.Context,
	text string,
	lookback time.Duration,
	maxResults int,
) ([]domain.HistoryEntry, error) {
	where, args := sqlite.WordFilter(text, "COALESCE(p.title, '')", "p.url")
	if lookback > 0 {
		where += " AND p.last_visit_date >= ?"
		args = append(args, s.now().Add(-lookback).UnixMicro())
	}

	query := `
		SELECT p.url, COALESCE(p.title, ''), p.visit_count, COALESCE(p.last_visit_date, 0)
		FROM moz_places p
		WHERE p.hidden = 0 AND p.visit_count > 0 AND ` + where + `
		ORDER BY p.last_visit_date DESC`
	if maxResults > 0 {
		query += " LIMIT ?"
		args = append(args, maxResults)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query firefox history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var (
			e         domain.HistoryEntry
			lastVisit int64
		)
		if err := rows.Scan(&e.URL, &e.Title, &e.VisitCount, &lastVisit); err != nil {
			return nil, fmt.Errorf("scan firefox history: %w", err)
		}
		if lastVisit > 0 {
			e.LastVisitTime = time.UnixMicro(lastVisit)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SearchBookmarks returns url bookmarks matching text in folder order.
func (s *Source) SearchBookmarks(ctx context.Context, text string) ([]domain.Bookmark, error) {
	where, args := sqlite.WordFilter(text, "COALESCE(b.title, p.title, '')", "p.url")

	rows, err := s.db.QueryContext(ctx, `
		SELECT b.guid, COALESCE(b.title, p.title, ''), p.url
		FROM moz_bookmarks b
		JOIN moz_places p ON p.id = b.fk
		WHERE b.type = ? AND `+where+`
		ORDER BY b.parent, b.position`, append([]any{bookmarkType}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("query firefox bookmarks: %w", err)
	}
	defer rows.Close()

	var out []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.Title, &b.URL); err != nil {
			return nil, fmt.Errorf("scan firefox bookmark: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
