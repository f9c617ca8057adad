package domain

// NoSelection is the SelectedIndex value when nothing is highlighted.
const NoSelection = -1

// SelectionState tracks which entry of the current ResultList is highlighted.
// SelectedIndex is NoSelection or within [0, len-1].
type SelectionState struct {
	SelectedIndex int
}

// HasSelection reports whether an entry is highlighted.
func (s SelectionState) HasSelection() bool {
	return s.SelectedIndex != NoSelection
}

// Modifiers are the modifier keys held while activating.
type Modifiers struct {
	Ctrl  bool
	Shift bool
}

// SelectionEvent is an input to the selection state machine.
type SelectionEvent interface {
	selectionEvent()
}

// ResultsChanged is emitted whenever a new ResultList is installed.
type ResultsChanged struct {
	Count int
}

// MoveNext highlights the following entry, wrapping to the first.
type MoveNext struct{}

// MovePrevious highlights the preceding entry, wrapping to the last.
type MovePrevious struct{}

// Hover highlights the entry under the pointer.
type Hover struct {
	Index int
}

// Activate acts on the highlighted entry.
type Activate struct {
	Modifiers Modifiers
}

// Escape clears the selection, or dismisses the picker when none is active.
type Escape struct{}

func (ResultsChanged) selectionEvent() {}
func (MoveNext) selectionEvent()       {}
func (MovePrevious) selectionEvent()   {}
func (Hover) selectionEvent()          {}
func (Activate) selectionEvent()       {}
func (Escape) selectionEvent()         {}

// EffectKind enumerates the side effects a selection event can request.
type EffectKind string

// Side effects, executed by the driving adapter through the browser port.
const (
	// EffectActivateTab switches to an already open tab.
	EffectActivateTab EffectKind = "activate_tab"

	// EffectOpenTab navigates to a url in a new foreground tab.
	EffectOpenTab EffectKind = "open_tab"

	// EffectOpenBackgroundTab opens a url in a new tab without focusing it.
	EffectOpenBackgroundTab EffectKind = "open_background_tab"

	// EffectOpenWindow opens a url in a new window.
	EffectOpenWindow EffectKind = "open_window"

	// EffectDismiss closes the picker.
	EffectDismiss EffectKind = "dismiss"

	// EffectFocusInput returns keyboard focus to the text input.
	EffectFocusInput EffectKind = "focus_input"
)

// Effect is a single side effect requested by the selection state machine.
type Effect struct {
	Kind  EffectKind
	TabID int
	URL   string
}

// IsNavigation reports whether the effect leaves the picker for a page.
func (e Effect) IsNavigation() bool {
	switch e.Kind {
	case EffectActivateTab, EffectOpenTab, EffectOpenBackgroundTab, EffectOpenWindow:
		return true
	default:
		return false
	}
}
