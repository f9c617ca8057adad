package services

import (
	"strings"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// ReduceContext is the read-only state a selection event is evaluated against.
type ReduceContext struct {
	// Results is the currently rendered list.
	Results domain.ResultList

	// Input is the raw text in the input box, used when activating
	// without a selection.
	Input string
}

// Reduce applies event to state and returns the new state with the side
// effects it requests. It never mutates its arguments.
func Reduce(
	state domain.SelectionState,
	event domain.SelectionEvent,
	rc ReduceContext,
) (domain.SelectionState, []domain.Effect) {
	n := rc.Results.Len()

	switch ev := event.(type) {
	case domain.ResultsChanged:
		if ev.Count > 0 {
			return domain.SelectionState{SelectedIndex: 0}, nil
		}
		return domain.SelectionState{SelectedIndex: domain.NoSelection}, nil

	case domain.MoveNext:
		if n == 0 {
			return state, nil
		}
		return domain.SelectionState{SelectedIndex: wrap(state.SelectedIndex+1, n)}, nil

	case domain.MovePrevious:
		if n == 0 {
			return state, nil
		}
		// From no selection (-1) this lands on n-2, or 0 for a single entry.
		return domain.SelectionState{SelectedIndex: wrap(state.SelectedIndex-1, n)}, nil

	case domain.Hover:
		if ev.Index < 0 || ev.Index >= n {
			return state, nil
		}
		return domain.SelectionState{SelectedIndex: ev.Index}, nil

	case domain.Activate:
		return state, activate(state, ev.Modifiers, rc)

	case domain.Escape:
		if state.HasSelection() {
			return domain.SelectionState{SelectedIndex: domain.NoSelection},
				[]domain.Effect{{Kind: domain.EffectFocusInput}}
		}
		return state, []domain.Effect{{Kind: domain.EffectDismiss}}
	}

	return state, nil
}

// activate resolves the effect for an activation with the given modifiers.
// Every navigation is followed by a dismiss.
func activate(state domain.SelectionState, mods domain.Modifiers, rc ReduceContext) []domain.Effect {
	entry, selected := rc.Results.At(state.SelectedIndex)

	var nav domain.Effect
	switch {
	case mods.Ctrl && mods.Shift:
		if !selected || entry.Candidate.Link() == "" {
			return nil
		}
		nav = domain.Effect{Kind: domain.EffectOpenWindow, URL: entry.Candidate.Link()}

	case mods.Ctrl:
		if !selected || entry.Candidate.Link() == "" {
			return nil
		}
		nav = domain.Effect{Kind: domain.EffectOpenBackgroundTab, URL: entry.Candidate.Link()}

	case selected:
		effect, ok := primaryAction(entry.Candidate)
		if !ok {
			return nil
		}
		nav = effect

	default:
		raw := strings.TrimSpace(rc.Input)
		if !IsLiteralURL(raw) {
			return nil
		}
		nav = domain.Effect{Kind: domain.EffectOpenTab, URL: WithScheme(raw)}
	}

	return []domain.Effect{nav, {Kind: domain.EffectDismiss}}
}

// primaryAction is the plain-enter action for a candidate: switch to an
// open tab, otherwise navigate in a new tab.
func primaryAction(c domain.Candidate) (domain.Effect, bool) {
	switch v := c.(type) {
	case domain.Tab:
		return domain.Effect{Kind: domain.EffectActivateTab, TabID: v.ID, URL: v.URL}, true
	case domain.LiteralNavigation:
		if v.Text == "" {
			return domain.Effect{}, false
		}
		return domain.Effect{Kind: domain.EffectOpenTab, URL: WithScheme(v.Text)}, true
	default:
		if c.Link() == "" {
			return domain.Effect{}, false
		}
		return domain.Effect{Kind: domain.EffectOpenTab, URL: WithScheme(c.Link())}, true
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
