package driving

import (
	"context"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// ActionOutcome tells the driving adapter what to do after effects ran.
type ActionOutcome struct {
	// Dismiss means the picker should close.
	Dismiss bool

	// FocusInput means keyboard focus returns to the text input.
	FocusInput bool

	// Opened lists the urls handed to the browser, in order.
	Opened []string
}

// ActionService executes selection side effects against the browser.
type ActionService interface {
	// Execute runs effects in order and stops at the first browser error.
	Execute(ctx context.Context, effects []domain.Effect) (ActionOutcome, error)
}
