package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure ActionService implements the interface.
var _ driving.ActionService = (*ActionService)(nil)

// ActionService executes selection effects against a browser.
type ActionService struct {
	browser driven.Browser
}

// NewActionService creates a new action service.
func NewActionService(browser driven.Browser) *ActionService {
	return &ActionService{browser: browser}
}

// Execute runs effects in order. It stops at the first browser error and
// returns the outcome accumulated so far.
func (s *ActionService) Execute(ctx context.Context, effects []domain.Effect) (driving.ActionOutcome, error) {
	var outcome driving.ActionOutcome

	for _, effect := range effects {
		if effect.IsNavigation() && s.browser == nil {
			return outcome, fmt.Errorf("%s: %w", effect.Kind, domain.ErrBrowserUnavailable)
		}

		var err error
		switch effect.Kind {
		case domain.EffectActivateTab:
			err = s.browser.ActivateTab(ctx, effect.TabID, effect.URL)
		case domain.EffectOpenTab:
			err = s.browser.OpenInNewTab(ctx, effect.URL, false)
		case domain.EffectOpenBackgroundTab:
			err = s.browser.OpenInNewTab(ctx, effect.URL, true)
		case domain.EffectOpenWindow:
			err = s.browser.OpenInNewWindow(ctx, effect.URL)
		case domain.EffectDismiss:
			outcome.Dismiss = true
		case domain.EffectFocusInput:
			outcome.FocusInput = true
		}

		if err != nil {
			return outcome, fmt.Errorf("%s %s: %w", effect.Kind, effect.URL, err)
		}
		if effect.IsNavigation() {
			logger.Debug("Executed %s for %s", effect.Kind, effect.URL)
			outcome.Opened = append(outcome.Opened, effect.URL)
		}
	}

	return outcome, nil
}
