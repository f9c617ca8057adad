package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui"
	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// errNotATerminal is returned when the picker is started without a TTY.
var errNotATerminal = errors.New("the picker needs an interactive terminal; use search or open instead")

// isTerminal reports whether stdin is a terminal. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // fd fits in int
}

// runApp runs the bubbletea program. Replaced in tests.
var runApp = func(app *tui.App) error {
	return app.Run()
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive picker",
	Long: `Open the interactive quick-switch picker.

Controls:
  type          Search tabs, history and bookmarks
  ↑/↓, ctrl+p/n Move the highlight (wraps)
  enter         Switch to the tab, or open the page
  ctrl+t        Open in a background tab
  ctrl+o        Open in a new window
  tab           Accept the first suggestion
  ctrl+f        Cycle the filter scope
  ctrl+y        Copy the highlighted url
  esc           Clear the highlight, then close
  ctrl+c        Quit

With --print the chosen urls are written to stdout instead of opening the
browser.`,
	RunE: runTUI,
}

func init() {
	addPickerFlags(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}

// addPickerFlags registers the flags shared by the root and tui commands.
func addPickerFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("scope", "s", "", "filter scope: all, tabs, history or bookmarks")
	cmd.Flags().Bool("print", false, "print chosen urls instead of opening them")
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("picker crashed: %v", r)
		}
	}()

	if !isTerminal() {
		return errNotATerminal
	}

	scope, err := scopeFlag(cmd)
	if err != nil {
		return err
	}
	printMode, err := cmd.Flags().GetBool("print")
	if err != nil {
		return fmt.Errorf("getting print flag: %w", err)
	}

	if logger.IsVerbose() {
		restore, logErr := logger.ToFile(filepath.Join(appServices.ConfigDir, "quickswitch.log"))
		if logErr != nil {
			return logErr
		}
		defer restore() //nolint:errcheck
	}

	var printed bytes.Buffer
	var sink io.Writer
	if printMode {
		sink = &printed
	}

	ports := tui.NewPorts(appServices.NewPicker(scope), appServices.Actions(sink))
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if printMode {
		_, err = cmd.OutOrStdout().Write(printed.Bytes())
		return err
	}
	for _, url := range app.Opened() {
		logger.Info("Opened %s", url)
	}
	return nil
}

// scopeFlag reads --scope, falling back to the configured default.
func scopeFlag(cmd *cobra.Command) (domain.FilterScope, error) {
	raw, err := cmd.Flags().GetString("scope")
	if err != nil {
		return "", fmt.Errorf("getting scope flag: %w", err)
	}
	if raw == "" && appServices.DefaultScope.IsValid() {
		return appServices.DefaultScope, nil
	}
	return domain.ParseFilterScope(raw)
}
