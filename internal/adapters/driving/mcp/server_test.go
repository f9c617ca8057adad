package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPorts() *Ports {
	return &Ports{
		Search:  &mockSearchService{},
		Suggest: &mockSuggestionService{},
	}
}

func TestNewServer(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Suggest: &mockSuggestionService{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(validPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.Equal(t, "dev", server.Version())
	})

	t.Run("version option", func(t *testing.T) {
		server, err := NewServer(validPorts(), WithVersion("1.4.0"))
		require.NoError(t, err)
		assert.Equal(t, "1.4.0", server.Version())
	})

	t.Run("empty version keeps default", func(t *testing.T) {
		server, err := NewServer(validPorts(), WithVersion(""))
		require.NoError(t, err)
		assert.Equal(t, "dev", server.Version())
	})
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"empty", &Ports{}, ErrMissingSearchService},
		{"search only", &Ports{Search: &mockSearchService{}}, ErrMissingSuggestionService},
		{"complete", validPorts(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServer_RunHTTPStopsOnCancel(t *testing.T) {
	server, err := NewServer(validPorts())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.RunHTTP(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunHTTP did not return after cancel")
	}
}

func TestServer_RunHTTPInvalidAddress(t *testing.T) {
	server, err := NewServer(validPorts())
	require.NoError(t, err)

	err = server.RunHTTP(context.Background(), "127.0.0.1:-1")
	assert.ErrorContains(t, err, "listening on")
}
