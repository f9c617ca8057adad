// Package messages defines Bubbletea message types for the picker.
package messages

import (
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
)

// CycleCompleted carries the results of one update cycle back to the
// event loop. The picker decides whether they are still current.
type CycleCompleted struct {
	Result driving.CycleResult
}

// EffectsExecuted reports the outcome of running selection effects.
type EffectsExecuted struct {
	Outcome driving.ActionOutcome
	Err     error
}

// Copied reports a clipboard copy.
type Copied struct {
	URL string
	Err error
}

// ErrorOccurred carries an error to display in the status bar.
type ErrorOccurred struct {
	Err error
}

// Quit requests the program to exit.
type Quit struct{}
