package list

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// SuggestionPanel renders completion suggestions in a bordered box.
type SuggestionPanel struct {
	suggestions []domain.Suggestion
	styles      *styles.Styles
	width       int
}

// NewSuggestionPanel creates an empty panel.
func NewSuggestionPanel(s *styles.Styles) *SuggestionPanel {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &SuggestionPanel{styles: s, width: 60}
}

// SetSuggestions replaces the panel contents.
func (p *SuggestionPanel) SetSuggestions(suggestions []domain.Suggestion) {
	p.suggestions = suggestions
}

// Visible reports whether there is anything to show.
func (p *SuggestionPanel) Visible() bool {
	return len(p.suggestions) > 0
}

// Count returns the number of suggestions.
func (p *SuggestionPanel) Count() int {
	return len(p.suggestions)
}

// SetWidth sets the panel width.
func (p *SuggestionPanel) SetWidth(width int) {
	p.width = width
}

// View renders the panel, or "" when empty.
func (p *SuggestionPanel) View() string {
	if !p.Visible() {
		return ""
	}

	textWidth := 0
	for _, s := range p.suggestions {
		if w := runewidth.StringWidth(s.Text); w > textWidth {
			textWidth = w
		}
	}

	lines := make([]string, len(p.suggestions))
	for i, s := range p.suggestions {
		line := p.styles.Suggestion.Render(runewidth.FillRight(s.Text, textWidth))
		if s.Description != "" {
			line += "  " + p.styles.Muted.Render(s.Description)
		}
		lines[i] = line
	}
	return p.styles.Panel.Render(strings.Join(lines, "\n"))
}

// IndexAt maps a line offset within View to a suggestion index.
// The first and last lines are the border.
func (p *SuggestionPanel) IndexAt(line int) (int, bool) {
	i := line - 1
	if i < 0 || i >= len(p.suggestions) {
		return 0, false
	}
	return i, true
}
