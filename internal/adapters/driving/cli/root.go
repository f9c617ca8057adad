// Package cli provides the quickswitch command line interface.
//
// Commands share a lazily built set of driving ports. The composition root
// registers a ServiceFactory and PersistentPreRunE calls it once, so
// commands such as version work without touching sources or stores.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Services is the set of driving ports the commands use.
type Services struct {
	Search   driving.SearchService
	Suggest  driving.SuggestionService
	Settings driving.SettingsService
	Import   driving.ImportService

	// Actions builds an action service. A non-nil writer receives chosen
	// urls instead of the browser.
	Actions func(print io.Writer) driving.ActionService

	// NewPicker creates a fresh picker session starting in scope.
	NewPicker func(scope domain.FilterScope) driving.Picker

	// DefaultScope is the configured search.default_scope.
	DefaultScope domain.FilterScope

	// ConfigDir is the resolved configuration directory.
	ConfigDir string

	// Close releases sources and stores. May be nil.
	Close func() error
}

// ServiceFactory builds Services for a configuration directory.
// An empty configDir means the default location.
type ServiceFactory func(configDir string) (*Services, error)

// errServicesNotConfigured is returned when no factory was registered.
var errServicesNotConfigured = errors.New("services not configured")

var (
	version   = "dev"
	verbose   bool
	configDir string

	serviceFactory ServiceFactory
	appServices    *Services
)

// noServiceCommands lists top-level commands that run without services.
var noServiceCommands = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

var rootCmd = &cobra.Command{
	Use:   "quickswitch",
	Short: "Keyboard-driven switcher for browser tabs, history and bookmarks",
	Long: `quickswitch finds an open tab, a previously visited page or a bookmark
as you type and switches to it.

Input may carry site:, title: and url: operators. Text that looks like a
url or bare domain is offered as a "Go to" entry.

Run without a subcommand to open the interactive picker.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		if noServiceCommands[topLevelCmdName(cmd)] {
			return nil
		}
		return initServices()
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.quickswitch)")
	addPickerFlags(rootCmd)
}

// topLevelCmdName returns the name of the direct child of root that cmd
// belongs to, or the root's own name.
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// SetServiceFactory registers the function that builds the services.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetServices installs ready-made services, bypassing the factory.
func SetServices(s *Services) {
	appServices = s
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func initServices() error {
	if appServices != nil {
		return nil
	}
	if serviceFactory == nil {
		return errServicesNotConfigured
	}

	s, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	appServices = s
	return nil
}

func closeServices() error {
	if appServices == nil || appServices.Close == nil {
		return nil
	}
	err := appServices.Close()
	appServices = nil
	return err
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd.SetOut(os.Stdout)
	err := rootCmd.Execute()

	if closeErr := closeServices(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "warning: closing services: %v\n", closeErr)
	}

	if err != nil {
		os.Exit(1)
	}
}
