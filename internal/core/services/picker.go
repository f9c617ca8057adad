package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure Picker implements the interface.
var _ driving.Picker = (*Picker)(nil)

// Picker owns one interactive session. Each input or scope change bumps
// the generation counter; a cycle's results are applied only if its
// generation is still current.
type Picker struct {
	mu sync.Mutex

	search  driving.SearchService
	suggest driving.SuggestionService

	generation  uint64
	input       string
	scope       domain.FilterScope
	results     domain.ResultList
	selection   domain.SelectionState
	suggestions []domain.Suggestion
}

// NewPicker creates a picker starting in the given scope with empty input.
func NewPicker(
	search driving.SearchService,
	suggest driving.SuggestionService,
	scope domain.FilterScope,
) *Picker {
	if !scope.IsValid() {
		scope = domain.ScopeAll
	}
	return &Picker{
		search:    search,
		suggest:   suggest,
		scope:     scope,
		selection: domain.SelectionState{SelectedIndex: domain.NoSelection},
	}
}

// Input returns the current raw input.
func (p *Picker) Input() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.input
}

// Scope returns the current filter scope.
func (p *Picker) Scope() domain.FilterScope {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scope
}

// Results returns the most recently applied results.
func (p *Picker) Results() domain.ResultList {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results
}

// Selection returns the current selection state.
func (p *Picker) Selection() domain.SelectionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selection
}

// Selected returns the highlighted entry.
func (p *Picker) Selected() (domain.ResultEntry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results.At(p.selection.SelectedIndex)
}

// Suggestions returns the suggestion panel contents.
func (p *Picker) Suggestions() []domain.Suggestion {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.suggestions
}

// Generation returns the current generation counter.
func (p *Picker) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

// SetInput replaces the input, recomputes suggestions and starts a cycle.
func (p *Picker) SetInput(raw string) driving.Cycle {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.input = raw
	if p.suggest != nil {
		p.suggestions = p.suggest.Suggest(raw)
	}
	return p.nextCycle()
}

// SetScope changes the filter scope and starts a cycle.
func (p *Picker) SetScope(scope domain.FilterScope) driving.Cycle {
	p.mu.Lock()
	defer p.mu.Unlock()

	if scope.IsValid() {
		p.scope = scope
	}
	return p.nextCycle()
}

// ApplySuggestion replaces the input with suggestion i and clears the panel.
func (p *Picker) ApplySuggestion(i int) (driving.Cycle, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i < 0 || i >= len(p.suggestions) {
		return driving.Cycle{}, false
	}
	p.input = p.suggestions[i].Text
	p.suggestions = nil
	return p.nextCycle(), true
}

// Run performs the source lookups for cycle without touching session state.
func (p *Picker) Run(ctx context.Context, cycle driving.Cycle) driving.CycleResult {
	var results domain.ResultList
	if p.search != nil {
		results = p.search.Search(ctx, cycle.Raw, cycle.Scope)
	}
	return driving.CycleResult{Cycle: cycle, Results: results}
}

// Apply installs result if its generation is current and resets the selection.
func (p *Picker) Apply(result driving.CycleResult) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if result.Cycle.Generation != p.generation {
		logger.Debug("Discarding stale cycle %d (current %d)", result.Cycle.Generation, p.generation)
		return false
	}

	p.results = result.Results
	p.selection, _ = Reduce(p.selection, domain.ResultsChanged{Count: len(result.Results)}, p.reduceContext())
	return true
}

// Dispatch feeds event through the selection state machine.
func (p *Picker) Dispatch(event domain.SelectionEvent) []domain.Effect {
	p.mu.Lock()
	defer p.mu.Unlock()

	var effects []domain.Effect
	p.selection, effects = Reduce(p.selection, event, p.reduceContext())
	return effects
}

// nextCycle bumps the generation (caller must hold lock).
func (p *Picker) nextCycle() driving.Cycle {
	p.generation++
	return driving.Cycle{Generation: p.generation, Raw: p.input, Scope: p.scope}
}

func (p *Picker) reduceContext() ReduceContext {
	return ReduceContext{Results: p.results, Input: p.input}
}
