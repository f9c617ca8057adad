package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory driven.HistoryStore keyed by url.
type HistoryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.HistoryEntry
	now     func() time.Time
}

// NewHistoryStore creates an empty history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		entries: make(map[string]domain.HistoryEntry),
		now:     time.Now,
	}
}

// RecordVisits upserts entries by url, summing visit counts and keeping
// the latest visit time and most recent non-empty title.
func (s *HistoryStore) RecordVisits(_ context.Context, entries []domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		existing, ok := s.entries[e.URL]
		if !ok {
			s.entries[e.URL] = e
			continue
		}
		existing.VisitCount += e.VisitCount
		if e.LastVisitTime.After(existing.LastVisitTime) {
			existing.LastVisitTime = e.LastVisitTime
			if e.Title != "" {
				existing.Title = e.Title
			}
		}
		if e.FavIconURL != "" {
			existing.FavIconURL = e.FavIconURL
		}
		s.entries[e.URL] = existing
	}
	return nil
}

// SearchHistory returns entries visited within lookback that match text,
// most recent first, limited to maxResults when positive.
func (s *HistoryStore) SearchHistory(
	ctx context.Context,
	text string,
	lookback time.Duration,
	maxResults int,
) ([]domain.HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.now().Add(-lookback)
	var out []domain.HistoryEntry
	for _, e := range s.entries {
		if lookback > 0 && e.LastVisitTime.Before(cutoff) {
			continue
		}
		if matchesWords(text, e.Title, e.URL) {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastVisitTime.Equal(out[j].LastVisitTime) {
			return out[i].LastVisitTime.After(out[j].LastVisitTime)
		}
		return out[i].URL < out[j].URL
	})

	if maxResults > 0 && len(out) > maxResults {
		out = out[:maxResults]
	}
	return out, nil
}
