package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotConfigured", ErrNotConfigured},
		{"ErrUnsupportedSource", ErrUnsupportedSource},
		{"ErrInvalidScope", ErrInvalidScope},
		{"ErrBrowserUnavailable", ErrBrowserUnavailable},
		{"ErrSourceClosed", ErrSourceClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("listing tabs: %w", ErrSourceClosed)

	assert.True(t, errors.Is(wrapped, ErrSourceClosed))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
}
