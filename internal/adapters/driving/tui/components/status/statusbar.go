// Package status provides the picker status bar.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/styles"
)

// State represents what the picker is doing.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
)

// Bar displays state, result counts and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	resultCount int
	suggesting  bool
	width       int
}

// NewBar creates a status bar.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateSearching:
		return s.styles.Muted.Render("Searching...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render("Error: " + s.message)
		}
		return s.styles.Error.Render("Error")
	case StateReady:
	}

	if s.message != "" {
		return s.styles.Normal.Render(s.message)
	}
	switch s.resultCount {
	case 0:
		return s.styles.Muted.Render("No results")
	case 1:
		return s.styles.Normal.Render("1 result")
	default:
		return s.styles.Normal.Render(fmt.Sprintf("%d results", s.resultCount))
	}
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.suggesting {
		bindings = s.keymap.SuggestionHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return s.styles.Muted.Render(strings.Join(hints, " · "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a transient message shown instead of the result count.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetResultCount sets the result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// SetSuggesting switches the hints to the suggestion bindings.
func (s *Bar) SetSuggesting(suggesting bool) {
	s.suggesting = suggesting
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// SetError shows err, or clears the error state when err is nil.
func (s *Bar) SetError(err error) {
	if err == nil {
		if s.state == StateError {
			s.state = StateReady
			s.message = ""
		}
		return
	}
	s.state = StateError
	s.message = err.Error()
}
