package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

var openCmd = &cobra.Command{
	Use:   "open <query>",
	Short: "Activate the top result for a query",
	Long: `Runs one update cycle and activates the first result, exactly as
pressing enter in the picker would: an open tab is switched to, anything
else opens in a new tab. Text that looks like a url opens directly.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringP("scope", "s", "", "filter scope: all, tabs, history or bookmarks")
	openCmd.Flags().Bool("background", false, "open in a background tab")
	openCmd.Flags().Bool("window", false, "open in a new window")
	openCmd.Flags().Bool("print", false, "print the url instead of opening it")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	scope, err := scopeFlag(cmd)
	if err != nil {
		return err
	}
	background, _ := cmd.Flags().GetBool("background")
	window, _ := cmd.Flags().GetBool("window")
	printMode, _ := cmd.Flags().GetBool("print")

	query := strings.Join(args, " ")
	picker := appServices.NewPicker(scope)
	cycle := picker.SetInput(query)
	picker.Apply(picker.Run(cmd.Context(), cycle))

	mods := domain.Modifiers{Ctrl: background || window, Shift: window}
	effects := picker.Dispatch(domain.Activate{Modifiers: mods})
	if len(effects) == 0 {
		return fmt.Errorf("no result for %q: %w", query, domain.ErrNotFound)
	}

	var sink io.Writer
	if printMode {
		sink = cmd.OutOrStdout()
	}
	outcome, err := appServices.Actions(sink).Execute(cmd.Context(), effects)
	if err != nil {
		return err
	}
	if !printMode {
		for _, url := range outcome.Opened {
			cmd.Printf("Opened %s\n", url)
		}
	}
	return nil
}
