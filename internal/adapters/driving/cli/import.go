package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import history or bookmarks into the local store",
	Long: `Loads a JSON export into the local quickswitch store. Use - to read
from stdin.

History files hold an array of {"url", "title", "visit_count",
"last_visit_time"} objects; entries are merged by url. Bookmark files hold
an array of {"id", "url", "title"} objects; missing ids are generated.
Bookmark exports in the browser HTML format are read with --format html,
which is the default for .html and .htm files.`,
}

var importFormat string

var importHistoryCmd = &cobra.Command{
	Use:   "history <file>",
	Short: "Import history entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], "history entries", appServices.Import.ImportHistory)
	},
}

var importBookmarksCmd = &cobra.Command{
	Use:   "bookmarks <file>",
	Short: "Import bookmarks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := bookmarkFormat(args[0], importFormat)
		if err != nil {
			return err
		}
		load := appServices.Import.ImportBookmarks
		if format == "html" {
			load = appServices.Import.ImportBookmarksHTML
		}
		return runImport(cmd, args[0], "bookmarks", load)
	},
}

func init() {
	importBookmarksCmd.Flags().StringVar(&importFormat, "format", "",
		"File format: json or html (default: from the file extension)")
	importCmd.AddCommand(importHistoryCmd)
	importCmd.AddCommand(importBookmarksCmd)
	rootCmd.AddCommand(importCmd)
}

func runImport(
	cmd *cobra.Command,
	path, noun string,
	load func(ctx context.Context, r io.Reader) (int, error),
) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path) //nolint:gosec // user-supplied import file
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	n, err := load(cmd.Context(), r)
	if err != nil {
		return fmt.Errorf("importing %s: %w", noun, err)
	}
	cmd.Printf("Imported %d %s\n", n, noun)
	return nil
}

func bookmarkFormat(path, flag string) (string, error) {
	switch strings.ToLower(flag) {
	case "json", "html":
		return strings.ToLower(flag), nil
	case "":
	default:
		return "", fmt.Errorf("unknown bookmark format %q: want json or html", flag)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return "html", nil
	default:
		return "json", nil
	}
}
