// Package styles provides colour themes and styling for the picker.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// Theme defines the colour palette.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	StatusBg   lipgloss.Color

	// Section accents, one per result source.
	Tab      lipgloss.Color
	History  lipgloss.Color
	Bookmark lipgloss.Color
	Navigate lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#45475A"),
		StatusBg:   lipgloss.Color("#181825"),
		Tab:        lipgloss.Color("#A6E3A1"), // Green
		History:    lipgloss.Color("#F9E2AF"), // Yellow
		Bookmark:   lipgloss.Color("#89B4FA"), // Blue
		Navigate:   lipgloss.Color("#F5C2E7"), // Pink
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	URL        lipgloss.Style
	InputField lipgloss.Style
	Scope      lipgloss.Style
	StatusBar  lipgloss.Style
	Suggestion lipgloss.Style
	Panel      lipgloss.Style

	sections map[domain.SourceKind]lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	section := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(c)
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		URL: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Scope: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.StatusBg).
			Padding(0, 1),

		Suggestion: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		sections: map[domain.SourceKind]lipgloss.Style{
			domain.SourceTab:      section(theme.Tab),
			domain.SourceHistory:  section(theme.History),
			domain.SourceBookmark: section(theme.Bookmark),
			domain.SourceNavigate: section(theme.Navigate),
		},
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Section returns the heading style for a result source.
func (s *Styles) Section(kind domain.SourceKind) lipgloss.Style {
	if st, ok := s.sections[kind]; ok {
		return st
	}
	return s.Muted
}
