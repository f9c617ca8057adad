package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search tabs, history and bookmarks",
	Long: `Runs one update cycle for the query and prints the sectioned results.

Operators restrict matches: site:<host>, title:<text>, url:<text>.
An empty query lists the open tabs.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringP("scope", "s", "", "filter scope: all, tabs, history or bookmarks")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchResult is the JSON form of one result entry.
type searchResult struct {
	Source     string     `json:"source"`
	Title      string     `json:"title,omitempty"`
	URL        string     `json:"url,omitempty"`
	Text       string     `json:"text,omitempty"`
	TabID      int        `json:"tab_id,omitempty"`
	VisitCount int        `json:"visit_count,omitempty"`
	LastVisit  *time.Time `json:"last_visit,omitempty"`
	BookmarkID string     `json:"bookmark_id,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	scope, err := scopeFlag(cmd)
	if err != nil {
		return err
	}

	results := appServices.Search.Search(cmd.Context(), strings.Join(args, " "), scope)

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	outputSearchTable(cmd, results)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, results domain.ResultList) error {
	out := make([]searchResult, len(results))
	for i, entry := range results {
		r := searchResult{
			Source: entry.Source.String(),
			Title:  entry.Candidate.TitleText(),
			URL:    entry.Candidate.Link(),
		}
		switch c := entry.Candidate.(type) {
		case domain.Tab:
			r.TabID = c.ID
		case domain.HistoryEntry:
			r.VisitCount = c.VisitCount
			if !c.LastVisitTime.IsZero() {
				t := c.LastVisitTime
				r.LastVisit = &t
			}
		case domain.Bookmark:
			r.BookmarkID = c.ID
		case domain.LiteralNavigation:
			r.Text = c.Text
		}
		out[i] = r
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results domain.ResultList) {
	if results.Len() == 0 {
		cmd.Println("No results found.")
		return
	}

	var current domain.SourceKind
	for _, entry := range results {
		if entry.Source != current {
			if current != "" {
				cmd.Println()
			}
			current = entry.Source
			cmd.Printf("%s (%d)\n", current.Label(), results.Count(current))
		}
		cmd.Println("  " + describeEntry(entry.Candidate))
	}
}

// describeEntry renders one result line.
func describeEntry(c domain.Candidate) string {
	switch v := c.(type) {
	case domain.LiteralNavigation:
		return "Go to " + v.Text
	case domain.HistoryEntry:
		line := titled(v.Title, v.URL)
		if v.VisitCount > 0 {
			line += fmt.Sprintf(" (%s, %s)", visits(v.VisitCount), humanize.Time(v.LastVisitTime))
		}
		return line
	case domain.Tab:
		return fmt.Sprintf("[%d] %s", v.ID, titled(v.Title, v.URL))
	default:
		return titled(c.TitleText(), c.Link())
	}
}

func titled(title, url string) string {
	if title == "" {
		return url
	}
	return title + " · " + url
}

func visits(n int) string {
	if n == 1 {
		return "1 visit"
	}
	return humanize.Comma(int64(n)) + " visits"
}
