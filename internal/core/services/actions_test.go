package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

func TestActionService_Execute(t *testing.T) {
	browser := &mockBrowser{}
	service := NewActionService(browser)

	outcome, err := service.Execute(context.Background(), []domain.Effect{
		{Kind: domain.EffectActivateTab, TabID: 3, URL: "https://a.test"},
		{Kind: domain.EffectOpenTab, URL: "https://b.test"},
		{Kind: domain.EffectOpenBackgroundTab, URL: "https://c.test"},
		{Kind: domain.EffectOpenWindow, URL: "https://d.test"},
		{Kind: domain.EffectDismiss},
	})

	require.NoError(t, err)
	assert.True(t, outcome.Dismiss)
	assert.False(t, outcome.FocusInput)
	assert.Equal(t, []string{"https://a.test", "https://b.test", "https://c.test", "https://d.test"}, outcome.Opened)
	assert.Equal(t, []string{
		"activate:https://a.test",
		"tab:https://b.test",
		"background:https://c.test",
		"window:https://d.test",
	}, browser.calls)
}

func TestActionService_FocusInput(t *testing.T) {
	outcome, err := NewActionService(nil).Execute(context.Background(), []domain.Effect{
		{Kind: domain.EffectFocusInput},
	})

	require.NoError(t, err)
	assert.True(t, outcome.FocusInput)
	assert.False(t, outcome.Dismiss)
}

func TestActionService_BrowserErrorStops(t *testing.T) {
	browser := &mockBrowser{err: errors.New("no display")}
	service := NewActionService(browser)

	outcome, err := service.Execute(context.Background(), []domain.Effect{
		{Kind: domain.EffectOpenTab, URL: "https://b.test"},
		{Kind: domain.EffectDismiss},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
	assert.False(t, outcome.Dismiss)
}

func TestActionService_NoBrowser(t *testing.T) {
	_, err := NewActionService(nil).Execute(context.Background(), []domain.Effect{
		{Kind: domain.EffectOpenWindow, URL: "https://b.test"},
	})

	assert.True(t, errors.Is(err, domain.ErrBrowserUnavailable))
}
