package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure TabStore implements the interface.
var _ driven.TabSource = (*TabStore)(nil)

// TabStore is an in-memory driven.TabSource.
type TabStore struct {
	mu   sync.RWMutex
	tabs []domain.Tab
}

// NewTabStore creates a tab store holding a copy of tabs.
func NewTabStore(tabs ...domain.Tab) *TabStore {
	s := &TabStore{}
	s.Replace(tabs)
	return s
}

// ListOpenTabs returns a copy of the tabs in insertion order.
func (s *TabStore) ListOpenTabs(ctx context.Context) ([]domain.Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Tab, len(s.tabs))
	copy(out, s.tabs)
	return out, nil
}

// Replace swaps the whole snapshot.
func (s *TabStore) Replace(tabs []domain.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs = make([]domain.Tab, len(tabs))
	copy(s.tabs, tabs)
}
