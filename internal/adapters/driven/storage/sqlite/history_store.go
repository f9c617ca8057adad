package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure historyStore implements the interface.
var _ driven.HistoryStore = (*historyStore)(nil)

// historyStore wraps Store to implement driven.HistoryStore.
type historyStore struct {
	store *Store
}

const upsertHistorySQL = `
	INSERT INTO history (url, title, favicon_url, visit_count, last_visit_ms)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(url) DO UPDATE SET
		visit_count = history.visit_count + excluded.visit_count,
		title = CASE
			WHEN excluded.last_visit_ms > history.last_visit_ms AND excluded.title != ''
			THEN excluded.title ELSE history.title END,
		favicon_url = CASE
			WHEN excluded.favicon_url != '' THEN excluded.favicon_url
			ELSE history.favicon_url END,
		last_visit_ms = MAX(history.last_visit_ms, excluded.last_visit_ms)
`

// RecordVisits upserts entries in a single transaction.
func (h *historyStore) RecordVisits(ctx context.Context, entries []domain.HistoryEntry) error {
	tx, err := h.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, upsertHistorySQL)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		var lastVisit int64
		if !e.LastVisitTime.IsZero() {
			lastVisit = e.LastVisitTime.UnixMilli()
		}
		if _, err := stmt.ExecContext(ctx, e.URL, e.Title, e.FavIconURL, e.VisitCount, lastVisit); err != nil {
			return fmt.Errorf("record visit %s: %w", e.URL, err)
		}
	}

	return tx.Commit()
}

// SearchHistory returns matching entries newest first.
func (h *historyStore) SearchHistory(
	ctx context.Context,
	text string,
	lookback time.Duration,
	maxResults int,
) ([]domain.HistoryEntry, error) {
	where, args := WordFilter(text, "title", "url")
	if lookback > 0 {
		where += " AND last_visit_ms >= ?"
		args = append(args, time.Now().Add(-lookback).UnixMilli())
	}

	query := `
		SELECT url, title, favicon_url, visit_count, last_visit_ms
		FROM history
		WHERE ` + where + `
		ORDER BY last_visit_ms DESC, url ASC`
	if maxResults > 0 {
		query += " LIMIT ?"
		args = append(args, maxResults)
	}

	rows, err := h.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var (
			e         domain.HistoryEntry
			lastVisit int64
		)
		if err := rows.Scan(&e.URL, &e.Title, &e.FavIconURL, &e.VisitCount, &lastVisit); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		if lastVisit > 0 {
			e.LastVisitTime = time.UnixMilli(lastVisit)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
