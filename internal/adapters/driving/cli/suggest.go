package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [input]",
	Short: "Show suggestions for partial input",
	Long: `Prints the suggestions the picker would show for the input: operator
hints for a matching operator prefix, then common domains.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	suggestions := appServices.Suggest.Suggest(strings.Join(args, " "))
	if len(suggestions) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}

	width := 0
	for _, s := range suggestions {
		if len(s.Text) > width {
			width = len(s.Text)
		}
	}
	for _, s := range suggestions {
		cmd.Printf("%-*s  %s\n", width, s.Text, s.Description)
	}
	return nil
}
