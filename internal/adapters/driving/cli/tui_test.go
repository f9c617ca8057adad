package cli

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

func stubTerminal(t *testing.T, tty bool, run func(app *tui.App) error) {
	t.Helper()
	origTTY, origRun := isTerminal, runApp
	isTerminal = func() bool { return tty }
	if run != nil {
		runApp = run
	}
	t.Cleanup(func() {
		isTerminal, runApp = origTTY, origRun
	})
}

// typeAndEnter types text into app and presses enter without waiting for
// the lookup cycle.
func typeAndEnter(app *tui.App, text string) {
	app.SetDimensions(80, 24)
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		app.Update(cmd())
	}
}

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.NotNil(t, tuiCmd.Flags().Lookup("print"))
	assert.NotNil(t, tuiCmd.Flags().Lookup("scope"))
	assert.NotNil(t, rootCmd.Flags().Lookup("print"))
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	setupTestServices(t)
	stubTerminal(t, false, nil)

	_, err := execute(t, "tui")

	assert.ErrorIs(t, err, errNotATerminal)
}

func TestTUICmd_PrintMode(t *testing.T) {
	env := setupTestServices(t)
	stubTerminal(t, true, func(app *tui.App) error {
		typeAndEnter(app, "example.org")
		return nil
	})

	out, err := execute(t, "tui", "--print")

	require.NoError(t, err)
	assert.Equal(t, "https://example.org\n", out)
	assert.Empty(t, env.browser.opened)
}

func TestTUICmd_OpensInBrowser(t *testing.T) {
	env := setupTestServices(t)
	var opened []string
	stubTerminal(t, true, func(app *tui.App) error {
		typeAndEnter(app, "example.org")
		opened = app.Opened()
		return nil
	})

	_, err := execute(t)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.org"}, env.browser.opened)
	assert.Equal(t, env.browser.opened, opened)
}

func TestTUICmd_InvalidScope(t *testing.T) {
	setupTestServices(t)
	stubTerminal(t, true, func(*tui.App) error {
		t.Fatal("picker started with an invalid scope")
		return nil
	})

	_, err := execute(t, "tui", "--scope", "downloads")

	assert.Error(t, err)
}

func TestTUICmd_VerboseLogsToFile(t *testing.T) {
	env := setupTestServices(t)
	stubTerminal(t, true, func(*tui.App) error {
		logger.Info("inside picker")
		return nil
	})
	t.Cleanup(func() { logger.SetVerbose(false) })

	_, err := execute(t, "--verbose", "tui")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.dir, "quickswitch.log"))
}
