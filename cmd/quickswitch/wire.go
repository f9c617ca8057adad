package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/custodia-labs/quickswitch/internal/adapters/driven/bookmarks/netscape"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/browser/firefox"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/browser/launcher"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/tabs/snapshot"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/cli"
	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/core/services"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

const (
	tabsFile = "tabs.json"
	dataDir  = "data"
)

// buildServices wires adapters to the core for configDir.
func buildServices(configDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	dir := configStore.Dir()

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var closers []io.Closer
	closeAll := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i].Close())
		}
		return errors.Join(errs...)
	}

	var (
		historyStore  driven.HistoryStore
		bookmarkStore driven.BookmarkStore
	)
	store, err := sqlite.NewStore(filepath.Join(dir, dataDir))
	if err != nil {
		// The picker stays usable on a read-only config dir; imports last for the session.
		logger.Warn("Local store unavailable, history and bookmarks will not persist: %v", err)
		historyStore, bookmarkStore = memory.NewHistoryStore(), memory.NewBookmarkStore()
	} else {
		closers = append(closers, store)
		historyStore, bookmarkStore = store.HistoryStore(), store.BookmarkStore()
	}

	tabsPath := settings.Sources.TabsSnapshot
	if tabsPath == "" {
		tabsPath = filepath.Join(dir, tabsFile)
	}
	var tabs driven.TabSource
	if watched, err := snapshot.NewSource(tabsPath); err != nil {
		logger.Warn("Tab snapshot unavailable, no open tabs will be listed: %v", err)
		tabs = memory.NewTabStore()
	} else {
		closers = append(closers, watched)
		tabs = watched
	}

	var history driven.HistorySource = historyStore
	var bookmarks driven.BookmarkSource = bookmarkStore
	if settings.Sources.History == domain.HistoryBackendFirefox {
		places, err := firefox.NewSource(settings.Sources.FirefoxProfile)
		if err != nil {
			logger.Warn("Firefox profile unavailable, using local store: %v", err)
		} else {
			closers = append(closers, places)
			history, bookmarks = places, places
		}
	}

	search := services.NewSearchService(tabs, history, bookmarks, *settings)
	suggest := services.NewSuggestionService(settings.Suggestions.CommonDomains)
	browser := launcher.New(settings.Browser)

	return &cli.Services{
		Search:   search,
		Suggest:  suggest,
		Settings: settingsService,
		Import: services.NewImportService(historyStore, bookmarkStore).
			WithBookmarkParser(netscape.New()),
		Actions: func(w io.Writer) driving.ActionService {
			if w != nil {
				return services.NewActionService(launcher.NewPrinter(w))
			}
			return services.NewActionService(browser)
		},
		NewPicker: func(scope domain.FilterScope) driving.Picker {
			return services.NewPicker(search, suggest, scope)
		},
		DefaultScope: settings.Search.DefaultScope,
		ConfigDir:    dir,
		Close:        closeAll,
	}, nil
}
