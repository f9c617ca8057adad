package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

func TestTabStore(t *testing.T) {
	store := NewTabStore(
		domain.Tab{ID: 2, Title: "B", URL: "https://b.test"},
		domain.Tab{ID: 1, Title: "A", URL: "https://a.test"},
	)

	tabs, err := store.ListOpenTabs(context.Background())
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, 2, tabs[0].ID)

	tabs[0].Title = "mutated"
	again, _ := store.ListOpenTabs(context.Background())
	assert.Equal(t, "B", again[0].Title)

	store.Replace(nil)
	tabs, err = store.ListOpenTabs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tabs)
}

func TestTabStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTabStore().ListOpenTabs(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHistoryStore_RecordAndSearch(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewHistoryStore()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.RecordVisits(ctx, []domain.HistoryEntry{
		{Title: "Go Blog", URL: "https://go.dev/blog", VisitCount: 2, LastVisitTime: now.Add(-time.Hour)},
		{Title: "Old", URL: "https://old.test", VisitCount: 9, LastVisitTime: now.Add(-60 * 24 * time.Hour)},
		{Title: "Go Tour", URL: "https://go.dev/tour", VisitCount: 1, LastVisitTime: now.Add(-2 * time.Hour)},
	}))
	require.NoError(t, store.RecordVisits(ctx, []domain.HistoryEntry{
		{Title: "The Go Blog", URL: "https://go.dev/blog", VisitCount: 3, LastVisitTime: now},
	}))

	entries, err := store.SearchHistory(ctx, "GO", 30*24*time.Hour, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "The Go Blog", entries[0].Title)
	assert.Equal(t, 5, entries[0].VisitCount)
	assert.Equal(t, now, entries[0].LastVisitTime)
	assert.Equal(t, "https://go.dev/tour", entries[1].URL)

	entries, err = store.SearchHistory(ctx, "go tour", 30*24*time.Hour, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entries, err = store.SearchHistory(ctx, "", 0, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBookmarkStore_SaveAndSearch(t *testing.T) {
	store := NewBookmarkStore()
	ctx := context.Background()

	require.NoError(t, store.SaveBookmarks(ctx, []domain.Bookmark{
		{ID: "1", Title: "Go", URL: "https://go.dev"},
		{ID: "2", Title: "Rust", URL: "https://rust-lang.org"},
	}))
	require.NoError(t, store.SaveBookmarks(ctx, []domain.Bookmark{
		{ID: "1", Title: "Go website", URL: "https://go.dev"},
	}))

	all, err := store.SearchBookmarks(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Go website", all[0].Title)

	matched, err := store.SearchBookmarks(ctx, "lang")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "2", matched[0].ID)

	assert.ErrorIs(t, store.SaveBookmarks(ctx, []domain.Bookmark{{Title: "no id"}}), domain.ErrInvalidInput)
}
