package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change settings stored in <config-dir>/config.toml.

Keys use dot notation, for example history.limit or browser.open_command.
List values such as suggestions.common_domains are comma separated.`,
	RunE: runSettingsList,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every setting with its effective value",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	keys := appServices.Settings.Keys()

	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}

	for _, k := range keys {
		value, err := appServices.Settings.Value(k)
		if err != nil {
			return fmt.Errorf("reading %s: %w", k, err)
		}
		if value == "" {
			value = "(default)"
		}
		cmd.Printf("%-*s  %s\n", width, k, value)
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	value, err := appServices.Settings.Value(args[0])
	if err != nil {
		return err
	}
	cmd.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if err := appServices.Settings.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("setting %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}
