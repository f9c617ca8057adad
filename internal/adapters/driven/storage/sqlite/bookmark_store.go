package sqlite

import (
	"context"
	"fmt"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure bookmarkStore implements the interface.
var _ driven.BookmarkStore = (*bookmarkStore)(nil)

// bookmarkStore wraps Store to implement driven.BookmarkStore.
type bookmarkStore struct {
	store *Store
}

// SaveBookmarks inserts or replaces bookmarks by ID. A replaced bookmark
// keeps its position; new bookmarks are appended.
func (b *bookmarkStore) SaveBookmarks(ctx context.Context, bookmarks []domain.Bookmark) error {
	for _, bm := range bookmarks {
		if bm.ID == "" {
			return fmt.Errorf("bookmark %q: %w", bm.URL, domain.ErrInvalidInput)
		}
	}

	tx, err := b.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var next int64
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), 0) FROM bookmarks").Scan(&next); err != nil {
		return fmt.Errorf("read position: %w", err)
	}

	for _, bm := range bookmarks {
		next++
		_, err := tx.ExecContext(ctx, `
			INSERT INTO bookmarks (id, position, title, url, favicon_url)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				url = excluded.url,
				favicon_url = excluded.favicon_url
		`, bm.ID, next, bm.Title, bm.URL, bm.FavIconURL)
		if err != nil {
			return fmt.Errorf("save bookmark %s: %w", bm.ID, err)
		}
	}

	return tx.Commit()
}

// SearchBookmarks returns matching bookmarks in saved order.
func (b *bookmarkStore) SearchBookmarks(ctx context.Context, text string) ([]domain.Bookmark, error) {
	where, args := WordFilter(text, "title", "url")

	rows, err := b.store.db.QueryContext(ctx, `
		SELECT id, title, url, favicon_url
		FROM bookmarks
		WHERE `+where+`
		ORDER BY position ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookmarks: %w", err)
	}
	defer rows.Close()

	var out []domain.Bookmark
	for rows.Next() {
		var bm domain.Bookmark
		if err := rows.Scan(&bm.ID, &bm.Title, &bm.URL, &bm.FavIconURL); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		out = append(out, bm)
	}

	return out, rows.Err()
}
