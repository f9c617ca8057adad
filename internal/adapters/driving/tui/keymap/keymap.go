// Package keymap defines keybindings for the picker.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// KeyMap defines all keybindings for the picker.
type KeyMap struct {
	// Next and Previous move the highlight, wrapping at either end.
	Next     key.Binding
	Previous key.Binding

	// Activate runs the primary action for the highlighted row or the
	// literal url in the input.
	Activate key.Binding

	// Background opens the highlighted row in a background tab.
	// Terminals cannot report ctrl+enter, so it is bound to ctrl+t and alt+enter.
	Background key.Binding

	// Window opens the highlighted row in a new window.
	Window key.Binding

	// Escape clears the highlight, or dismisses when nothing is highlighted.
	Escape key.Binding

	// Accept replaces the input with the first suggestion.
	Accept key.Binding

	// Scope cycles the filter scope.
	Scope key.Binding

	// Copy copies the highlighted url to the clipboard.
	Copy key.Binding

	// Quit exits immediately.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+j", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("up", "ctrl+k", "ctrl+p"),
			key.WithHelp("↑", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Background: key.NewBinding(
			key.WithKeys("ctrl+t", "alt+enter"),
			key.WithHelp("ctrl+t", "background"),
		),
		Window: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "window"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Accept: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Scope: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "scope"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Modifiers returns the activation modifiers a key press stands for, and
// false when keyStr is not an activation key.
func (k *KeyMap) Modifiers(keyStr string) (domain.Modifiers, bool) {
	switch {
	case Matches(keyStr, k.Activate):
		return domain.Modifiers{}, true
	case Matches(keyStr, k.Background):
		return domain.Modifiers{Ctrl: true}, true
	case Matches(keyStr, k.Window):
		return domain.Modifiers{Ctrl: true, Shift: true}, true
	default:
		return domain.Modifiers{}, false
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Background, k.Scope, k.Escape}
}

// SuggestionHelp returns the bindings shown while suggestions are visible.
func (k *KeyMap) SuggestionHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Activate, k.Escape}
}

// FullHelp returns every binding grouped by purpose.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous},
		{k.Activate, k.Background, k.Window},
		{k.Accept, k.Scope, k.Copy},
		{k.Escape, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
