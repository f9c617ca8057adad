// Package picker provides the quick-switch view: input, suggestions,
// sectioned results and status bar driven by a driving.Picker session.
package picker

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
)

// ErrNothingToCopy is reported when copy is requested without a highlighted url.
var ErrNothingToCopy = errors.New("nothing to copy")

const title = "quickswitch"

// View is the picker screen.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	input       *input.SearchInput
	suggestions *list.SuggestionPanel
	list        *list.ResultList
	statusbar   *status.Bar

	picker  driving.Picker
	actions driving.ActionService
	ctx     context.Context
	copy    func(string) error

	width  int
	height int
	opened []string
}

// NewView creates a picker view over session p.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	p driving.Picker,
	actions driving.ActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:      s,
		keymap:      km,
		input:       input.NewSearchInput(s),
		suggestions: list.NewSuggestionPanel(s),
		list:        list.NewResultList(s),
		statusbar:   status.NewBar(s, km),
		picker:      p,
		actions:     actions,
		ctx:         context.Background(),
		copy:        clipboard.WriteAll,
		width:       80,
		height:      24,
	}
	v.input.SetValue(p.Input())
	v.input.SetScope(p.Scope())
	return v
}

// WithContext sets the context used for lookups and browser actions.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the first cycle so open tabs show before any typing.
func (v *View) Init() tea.Cmd {
	cycle := v.picker.SetInput(v.picker.Input())
	return tea.Batch(v.input.Init(), v.startCycle(cycle))
}

// Update handles messages for the picker.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case tea.MouseMsg:
		return v.handleMouse(msg)

	case messages.CycleCompleted:
		if v.picker.Apply(msg.Result) {
			v.statusbar.SetState(status.StateReady)
			v.sync()
		}
		return v, nil

	case messages.EffectsExecuted:
		return v.handleOutcome(msg)

	case messages.Copied:
		if msg.Err != nil {
			v.statusbar.SetError(msg.Err)
		} else {
			v.statusbar.SetMessage("Copied " + msg.URL)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetError(msg.Err)
		return v, nil
	}

	in, cmd, _ := v.input.Update(msg)
	v.input = in
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if mods, ok := v.keymap.Modifiers(keyStr); ok {
		return v, v.dispatch(domain.Activate{Modifiers: mods})
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Next):
		return v, v.dispatch(domain.MoveNext{})

	case keymap.Matches(keyStr, v.keymap.Previous):
		return v, v.dispatch(domain.MovePrevious{})

	case keymap.Matches(keyStr, v.keymap.Escape):
		return v, v.dispatch(domain.Escape{})

	case keymap.Matches(keyStr, v.keymap.Accept):
		return v, v.acceptSuggestion(0)

	case keymap.Matches(keyStr, v.keymap.Scope):
		cycle := v.picker.SetScope(v.picker.Scope().Next())
		v.input.SetScope(cycle.Scope)
		return v, v.startCycle(cycle)

	case keymap.Matches(keyStr, v.keymap.Copy):
		return v, v.copySelected()
	}

	in, cmd, changed := v.input.Update(msg)
	v.input = in
	if !changed {
		return v, cmd
	}

	cycle := v.picker.SetInput(v.input.Value())
	v.suggestions.SetSuggestions(v.picker.Suggestions())
	v.statusbar.SetSuggesting(v.suggestions.Visible())
	return v, tea.Batch(cmd, v.startCycle(cycle))
}

// handleMouse hovers rows under the pointer and activates or accepts on click.
func (v *View) handleMouse(msg tea.MouseMsg) (*View, tea.Cmd) {
	layout := v.layout()

	if v.suggestions.Visible() {
		if i, ok := v.suggestions.IndexAt(msg.Y - layout.suggestionsTop); ok {
			if isLeftClick(msg) {
				return v, v.acceptSuggestion(i)
			}
			return v, nil
		}
	}

	index, ok := v.list.IndexAt(msg.Y - layout.listTop)
	if !ok {
		return v, nil
	}

	//nolint:exhaustive // only motion and press matter
	switch msg.Action {
	case tea.MouseActionMotion:
		return v, v.dispatch(domain.Hover{Index: index})
	case tea.MouseActionPress:
		if !isLeftClick(msg) {
			return v, nil
		}
		v.dispatch(domain.Hover{Index: index})
		mods := domain.Modifiers{Ctrl: msg.Ctrl, Shift: msg.Shift}
		return v, v.dispatch(domain.Activate{Modifiers: mods})
	}
	return v, nil
}

func isLeftClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// dispatch feeds event to the selection state machine and runs any effects.
func (v *View) dispatch(event domain.SelectionEvent) tea.Cmd {
	effects := v.picker.Dispatch(event)
	v.list.SetSelected(v.picker.Selection().SelectedIndex)
	if len(effects) == 0 {
		return nil
	}
	return v.execute(effects)
}

func (v *View) execute(effects []domain.Effect) tea.Cmd {
	actions := v.actions
	ctx := v.ctx
	return func() tea.Msg {
		outcome, err := actions.Execute(ctx, effects)
		return messages.EffectsExecuted{Outcome: outcome, Err: err}
	}
}

func (v *View) handleOutcome(msg messages.EffectsExecuted) (*View, tea.Cmd) {
	v.opened = append(v.opened, msg.Outcome.Opened...)
	if msg.Err != nil {
		v.statusbar.SetError(msg.Err)
		return v, nil
	}
	if msg.Outcome.Dismiss {
		return v, func() tea.Msg { return messages.Quit{} }
	}
	if msg.Outcome.FocusInput {
		return v, v.input.Focus()
	}
	return v, nil
}

func (v *View) acceptSuggestion(i int) tea.Cmd {
	cycle, ok := v.picker.ApplySuggestion(i)
	if !ok {
		return nil
	}
	v.input.SetValue(cycle.Raw)
	v.suggestions.SetSuggestions(v.picker.Suggestions())
	v.statusbar.SetSuggesting(false)
	return v.startCycle(cycle)
}

func (v *View) copySelected() tea.Cmd {
	entry, ok := v.picker.Selected()
	url := ""
	if ok {
		url = entry.Candidate.Link()
	}
	copyFn := v.copy
	return func() tea.Msg {
		if url == "" {
			return messages.Copied{Err: ErrNothingToCopy}
		}
		return messages.Copied{URL: url, Err: copyFn(url)}
	}
}

// startCycle runs cycle off the event loop.
func (v *View) startCycle(cycle driving.Cycle) tea.Cmd {
	v.statusbar.SetState(status.StateSearching)
	v.statusbar.SetMessage("")
	p := v.picker
	ctx := v.ctx
	return func() tea.Msg {
		return messages.CycleCompleted{Result: p.Run(ctx, cycle)}
	}
}

// sync copies session state into the components.
func (v *View) sync() {
	results := v.picker.Results()
	v.list.SetResults(results)
	v.list.SetSelected(v.picker.Selection().SelectedIndex)
	v.statusbar.SetResultCount(results.Len())
	v.suggestions.SetSuggestions(v.picker.Suggestions())
	v.statusbar.SetSuggesting(v.suggestions.Visible())
}

// viewLayout records where each section starts, in screen lines.
type viewLayout struct {
	sections       []string
	suggestionsTop int
	listTop        int
}

func (v *View) layout() viewLayout {
	var l viewLayout
	line := 0
	add := func(s string) int {
		top := line
		l.sections = append(l.sections, s)
		line += lipgloss.Height(s)
		return top
	}

	add(v.styles.Title.Render(title))
	add(v.input.View())
	if v.suggestions.Visible() {
		l.suggestionsTop = add(v.suggestions.View())
	}
	l.listTop = add(v.list.View())
	add(v.statusbar.View())
	return l
}

// View renders the picker.
func (v *View) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, v.layout().sections...)
}

// SetDimensions sizes components to the terminal.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	v.input.SetWidth(width)
	v.suggestions.SetWidth(width)
	v.statusbar.SetWidth(width)

	// title, bordered input, status bar
	listHeight := height - 1 - v.input.Height() - 1
	if v.suggestions.Visible() {
		listHeight -= lipgloss.Height(v.suggestions.View())
	}
	v.list.SetDimensions(width, listHeight)
}

// Opened returns every url handed to the browser during the session.
func (v *View) Opened() []string {
	return v.opened
}

// Input returns the current input value.
func (v *View) Input() string {
	return v.input.Value()
}
