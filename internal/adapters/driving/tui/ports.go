// Package tui provides the interactive quick-switch picker for the terminal.
// It is a driving adapter over the Picker session and the action service.
package tui

import (
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI needs.
type Ports struct {
	// Picker holds session state for one picker invocation.
	Picker driving.Picker

	// Actions executes the browser side effects of a selection.
	Actions driving.ActionService
}

// NewPorts creates a new Ports aggregate.
func NewPorts(picker driving.Picker, actions driving.ActionService) *Ports {
	return &Ports{
		Picker:  picker,
		Actions: actions,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Picker == nil {
		return ErrMissingPicker
	}
	if p.Actions == nil {
		return ErrMissingActionService
	}
	return nil
}
