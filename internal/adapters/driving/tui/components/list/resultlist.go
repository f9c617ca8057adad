// Package list renders the sectioned result list and the suggestion panel.
package list

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// noRow marks a rendered line that is not a selectable row.
const noRow = -1

// ResultList displays a ResultList grouped under section headings.
// It holds no selection logic; the highlighted index is pushed in.
type ResultList struct {
	results  domain.ResultList
	selected int
	styles   *styles.Styles
	width    int
	height   int
	now      func() time.Time
}

// NewResultList creates an empty result list.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		selected: domain.NoSelection,
		styles:   s,
		width:    80,
		height:   12,
		now:      time.Now,
	}
}

// SetResults replaces the displayed results.
func (r *ResultList) SetResults(results domain.ResultList) {
	r.results = results
}

// SetSelected sets the highlighted index. NoSelection clears it.
func (r *ResultList) SetSelected(index int) {
	r.selected = index
}

// Selected returns the highlighted index.
func (r *ResultList) Selected() int {
	return r.selected
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return r.results.Len()
}

// SetDimensions sets the width and the maximum number of lines.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	if height < 1 {
		height = 1
	}
	r.height = height
}

// View renders the visible window of the list.
func (r *ResultList) View() string {
	if r.results.Len() == 0 {
		return r.styles.Muted.Render("No matches")
	}
	lines, _ := r.window()
	return strings.Join(lines, "\n")
}

// IndexAt maps a line offset within View to a result index.
func (r *ResultList) IndexAt(line int) (int, bool) {
	_, rows := r.window()
	if line < 0 || line >= len(rows) || rows[line] == noRow {
		return 0, false
	}
	return rows[line], true
}

// window returns the visible lines and, per line, the result index it shows.
func (r *ResultList) window() ([]string, []int) {
	lines, rows := r.render()

	start := 0
	if r.selected >= 0 {
		for i, idx := range rows {
			if idx == r.selected && i >= r.height {
				start = i - r.height + 1
				break
			}
		}
	}
	end := start + r.height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end], rows[start:end]
}

// render lays out every section heading and row.
func (r *ResultList) render() ([]string, []int) {
	lines := make([]string, 0, r.results.Len()+4)
	rows := make([]int, 0, r.results.Len()+4)

	var current domain.SourceKind
	for i, entry := range r.results {
		if entry.Source != current {
			current = entry.Source
			heading := fmt.Sprintf("%s (%d)", current.Label(), r.results.Count(current))
			lines = append(lines, r.styles.Section(current).Render(heading))
			rows = append(rows, noRow)
		}
		lines = append(lines, r.renderRow(i, entry))
		rows = append(rows, i)
	}
	return lines, rows
}

func (r *ResultList) renderRow(index int, entry domain.ResultEntry) string {
	title, detail := r.describe(entry.Candidate)

	titleWidth := r.width / 2
	if titleWidth < 16 {
		titleWidth = 16
	}
	detailWidth := r.width - titleWidth - 6
	if detailWidth < 10 {
		detailWidth = 10
	}

	title = runewidth.FillRight(runewidth.Truncate(title, titleWidth, "…"), titleWidth)
	detail = runewidth.Truncate(detail, detailWidth, "…")

	if index == r.selected {
		return r.styles.Selected.Render("› " + title + "  " + detail)
	}
	return "  " + r.styles.Normal.Render(title) + "  " + r.styles.URL.Render(detail)
}

// describe returns the title and detail text for a candidate.
func (r *ResultList) describe(c domain.Candidate) (string, string) {
	switch v := c.(type) {
	case domain.LiteralNavigation:
		return "Go to " + v.Text, ""
	case domain.HistoryEntry:
		detail := v.URL
		if !v.LastVisitTime.IsZero() {
			detail += " · " + humanize.RelTime(v.LastVisitTime, r.now(), "ago", "from now")
		}
		return titleOrURL(v.Title, v.URL), detail
	default:
		return titleOrURL(c.TitleText(), c.Link()), c.Link()
	}
}

func titleOrURL(title, url string) string {
	if strings.TrimSpace(title) == "" {
		return url
	}
	return title
}
