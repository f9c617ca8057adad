package driving

import (
	"context"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// Cycle identifies one update cycle. Generation is captured when the cycle
// starts and compared on completion.
type Cycle struct {
	Generation uint64
	Raw        string
	Scope      domain.FilterScope
}

// CycleResult is the output of running a Cycle.
type CycleResult struct {
	Cycle   Cycle
	Results domain.ResultList
}

// Picker is the interactive session owning input, scope, results,
// selection and suggestions. Every input or scope change starts a new
// cycle and invalidates older ones.
type Picker interface {
	// Input returns the current raw input.
	Input() string

	// Scope returns the current filter scope.
	Scope() domain.FilterScope

	// Results returns the most recently applied ResultList.
	Results() domain.ResultList

	// Selection returns the current selection state.
	Selection() domain.SelectionState

	// Selected returns the highlighted entry, or false when none.
	Selected() (domain.ResultEntry, bool)

	// Suggestions returns the suggestion panel contents.
	Suggestions() []domain.Suggestion

	// Generation returns the current generation counter.
	Generation() uint64

	// SetInput replaces the raw input, recomputes suggestions and starts a cycle.
	SetInput(raw string) Cycle

	// SetScope changes the filter scope and starts a cycle.
	SetScope(scope domain.FilterScope) Cycle

	// ApplySuggestion replaces the input with suggestion i, clears the
	// panel and starts a cycle. Returns false when i is out of range.
	ApplySuggestion(i int) (Cycle, bool)

	// Run performs the source lookups for a cycle. It does not touch
	// session state and may be called off the event loop.
	Run(ctx context.Context, cycle Cycle) CycleResult

	// Apply installs a cycle's results if it is still current.
	// Returns false when the result is stale and was discarded.
	Apply(result CycleResult) bool

	// Dispatch feeds a selection event through the state machine and
	// returns the resulting side effects.
	Dispatch(event domain.SelectionEvent) []domain.Effect
}
