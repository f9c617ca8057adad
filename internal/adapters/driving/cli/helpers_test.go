package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickswitch/internal/adapters/driven/bookmarks/netscape"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/browser/launcher"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/quickswitch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/core/services"
)

// memTabs implements driven.TabSource for testing.
type memTabs struct {
	tabs []domain.Tab
}

func (m *memTabs) ListOpenTabs(_ context.Context) ([]domain.Tab, error) {
	return m.tabs, nil
}

// recordingBrowser implements driven.Browser for testing.
type recordingBrowser struct {
	activated []int
	opened    []string
	windows   []string
}

func (b *recordingBrowser) ActivateTab(_ context.Context, tabID int, _ string) error {
	b.activated = append(b.activated, tabID)
	return nil
}

func (b *recordingBrowser) OpenInNewTab(_ context.Context, url string, _ bool) error {
	b.opened = append(b.opened, url)
	return nil
}

func (b *recordingBrowser) OpenInNewWindow(_ context.Context, url string) error {
	b.windows = append(b.windows, url)
	return nil
}

type testEnv struct {
	dir      string
	browser  *recordingBrowser
	store    *sqlite.Store
	services *Services
}

// setupTestServices installs services backed by a temp config dir, a
// sqlite store and two open tabs. The returned env is torn down with t.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	configStore, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	store, err := sqlite.NewStore(dir)
	require.NoError(t, err)

	tabs := &memTabs{tabs: []domain.Tab{
		{ID: 1, Title: "GitHub", URL: "https://github.com"},
		{ID: 2, Title: "Go Packages", URL: "https://pkg.go.dev"},
	}}
	settings := services.NewSettingsService(configStore)
	appSettings, err := settings.Get()
	require.NoError(t, err)

	search := services.NewSearchService(tabs, store.HistoryStore(), store.BookmarkStore(), *appSettings)
	suggest := services.NewSuggestionService(appSettings.Suggestions.CommonDomains)
	browser := &recordingBrowser{}

	env := &testEnv{dir: dir, browser: browser, store: store}
	env.services = &Services{
		Search:   search,
		Suggest:  suggest,
		Settings: settings,
		Import: services.NewImportService(store.HistoryStore(), store.BookmarkStore()).
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
		DefaultScope: appSettings.Search.DefaultScope,
		ConfigDir:    dir,
		Close:        store.Close,
	}

	SetServices(env.services)
	t.Cleanup(func() {
		_ = closeServices()
		appServices = nil
		resetFlags(rootCmd)
	})
	return env
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
