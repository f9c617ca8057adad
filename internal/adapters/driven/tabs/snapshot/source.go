package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.TabSource = (*Source)(nil)

// DefaultDebounce is how long the source waits after the last change
// event before reloading.
const DefaultDebounce = 50 * time.Millisecond

// Source serves open tabs from a watched snapshot file.
type Source struct {
	path     string
	debounce time.Duration

	mu     sync.RWMutex
	tabs   []domain.Tab
	closed bool

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup

	// onReload is called after each reload attempt. Used by tests.
	onReload func(err error)
}

// Option configures a Source.
type Option func(*Source)

// WithDebounce sets the reload debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(s *Source) {
		s.debounce = d
	}
}

// WithReloadHook registers fn to run after each reload attempt.
func WithReloadHook(fn func(err error)) Option {
	return func(s *Source) {
		s.onReload = fn
	}
}

// NewSource loads the snapshot at path and starts watching it.
// The parent directory is watched so atomic replace-by-rename is seen.
// If the directory does not exist the source serves the initial load only.
func NewSource(path string, opts ...Option) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path: %w", domain.ErrNotConfigured)
	}

	s := &Source{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.reload(); err != nil && !errors.Is(err, errPartialSnapshot) {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		logger.Warn("Not watching tab snapshot directory %s: %v", dir, err)
		watcher.Close()
		return s, nil
	}
	s.watcher = watcher

	s.wg.Add(1)
	go s.watch()

	return s, nil
}

// ListOpenTabs returns a copy of the latest snapshot.
func (s *Source) ListOpenTabs(ctx context.Context) ([]domain.Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, domain.ErrSourceClosed
	}

	out := make([]domain.Tab, len(s.tabs))
	copy(out, s.tabs)
	return out, nil
}

// Path returns the snapshot file path.
func (s *Source) Path() string {
	return s.path
}

// Close stops watching and waits for the watch goroutine to exit.
func (s *Source) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	var err error
	if s.watcher != nil {
		err = s.watcher.Close()
	}
	s.wg.Wait()
	return err
}

func (s *Source) watch() {
	defer s.wg.Done()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-s.done:
			return

		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			err := s.reload()
			switch {
			case errors.Is(err, errPartialSnapshot):
				err = nil
			case err != nil:
				logger.Warn("Keeping previous tab snapshot: %v", err)
			}
			if s.onReload != nil {
				s.onReload(err)
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Tab snapshot watcher error: %v", err)
		}
	}
}

// errPartialSnapshot marks an empty file, seen mid-write while the writer
// truncates before writing.
var errPartialSnapshot = errors.New("empty tab snapshot")

// reload replaces the cached tabs with the file contents. On any error the
// previous tabs are kept.
func (s *Source) reload() error {
	tabs, err := readSnapshot(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tabs = tabs
	s.mu.Unlock()

	logger.Debug("Loaded %d tabs from %s", len(tabs), s.path)
	return nil
}

func readSnapshot(path string) ([]domain.Tab, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading tab snapshot: %w", err)
	}
	if len(data) == 0 {
		return nil, errPartialSnapshot
	}

	var tabs []domain.Tab
	if err := json.Unmarshal(data, &tabs); err != nil {
		return nil, fmt.Errorf("decoding tab snapshot %s: %w", path, err)
	}
	return tabs, nil
}
