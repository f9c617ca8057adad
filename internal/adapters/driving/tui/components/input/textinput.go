// Package input provides the picker's text input.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// Placeholder is shown while the input is empty.
const Placeholder = "Search tabs, history and bookmarks, or type a url"

// SearchInput wraps a bubbles textinput with a scope label.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	scope     domain.FilterScope
	width     int
}

// NewSearchInput creates a focused input.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	return &SearchInput{
		textinput: ti,
		styles:    s,
		scope:     domain.ScopeAll,
		width:     60,
	}
}

// Init starts cursor blinking.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the textinput. changed reports whether the value
// differs afterwards.
func (s *SearchInput) Update(msg tea.Msg) (in *SearchInput, cmd tea.Cmd, changed bool) {
	before := s.textinput.Value()
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd, s.textinput.Value() != before
}

// View renders the scope label beside the bordered input.
func (s *SearchInput) View() string {
	label := s.styles.Scope.Render("[" + s.scope.String() + "]")
	field := s.styles.InputField.Render(s.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, " ", field)
}

// Value returns the current input value.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue replaces the value and moves the cursor to the end.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
	s.textinput.CursorEnd()
}

// SetScope sets the scope label.
func (s *SearchInput) SetScope(scope domain.FilterScope) {
	s.scope = scope
}

// Focus sets focus on the input.
func (s *SearchInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SearchInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the overall width including the scope label.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	inputWidth := width - 20
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.textinput.Width = inputWidth
}

// Width returns the current width.
func (s *SearchInput) Width() int {
	return s.width
}

// Height returns the rendered height in lines.
func (s *SearchInput) Height() int {
	return lipgloss.Height(s.View())
}
