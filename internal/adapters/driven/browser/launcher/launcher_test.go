package launcher

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

type recordingRunner struct {
	calls [][]string
	err   error
}

func (r *recordingRunner) run(name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func newTestLauncher(settings domain.BrowserSettings, goos string) (*Launcher, *recordingRunner) {
	rec := &recordingRunner{}
	l := New(settings).WithRunner(rec.run)
	l.goos = goos
	return l, rec
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		template string
		url      string
		id       string
		want     []string
	}{
		{
			name:     "appends url without token",
			template: "firefox --new-tab",
			url:      "https://go.dev",
			want:     []string{"firefox", "--new-tab", "https://go.dev"},
		},
		{
			name:     "substitutes url token",
			template: "chromium --app={url} --incognito",
			url:      "https://go.dev",
			want:     []string{"chromium", "--app=https://go.dev", "--incognito"},
		},
		{
			name:     "substitutes id token only",
			template: "brotab activate {id}",
			url:      "https://go.dev",
			id:       "42",
			want:     []string{"brotab", "activate", "42"},
		},
		{
			name:     "empty template",
			template: "   ",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expand(tt.template, tt.url, tt.id))
		})
	}
}

func TestLauncher_DefaultOpener(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{goos: "darwin", want: []string{"open", "https://go.dev"}},
		{goos: "linux", want: []string{"xdg-open", "https://go.dev"}},
		{goos: "windows", want: []string{"rundll32", "url.dll,FileProtocolHandler", "https://go.dev"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			l, rec := newTestLauncher(domain.BrowserSettings{}, tt.goos)
			require.NoError(t, l.OpenInNewTab(context.Background(), "https://go.dev", false))
			require.Len(t, rec.calls, 1)
			assert.Equal(t, tt.want, rec.calls[0])
		})
	}
}

func TestLauncher_UnsupportedPlatform(t *testing.T) {
	l, rec := newTestLauncher(domain.BrowserSettings{}, "plan9")

	err := l.OpenInNewTab(context.Background(), "https://go.dev", false)
	assert.ErrorIs(t, err, domain.ErrBrowserUnavailable)
	assert.Empty(t, rec.calls)
}

func TestLauncher_ConfiguredCommands(t *testing.T) {
	settings := domain.BrowserSettings{
		OpenCommand:     "firefox --new-tab",
		WindowCommand:   "firefox --new-window {url}",
		ActivateCommand: "brotab activate {id}",
	}
	l, rec := newTestLauncher(settings, "linux")
	ctx := context.Background()

	require.NoError(t, l.OpenInNewTab(ctx, "https://a.example.com", true))
	require.NoError(t, l.OpenInNewWindow(ctx, "https://b.example.com"))
	require.NoError(t, l.ActivateTab(ctx, 7, "https://c.example.com"))

	assert.Equal(t, [][]string{
		{"firefox", "--new-tab", "https://a.example.com"},
		{"firefox", "--new-window", "https://b.example.com"},
		{"brotab", "activate", "7"},
	}, rec.calls)
}

func TestLauncher_Fallbacks(t *testing.T) {
	l, rec := newTestLauncher(domain.BrowserSettings{OpenCommand: "browser"}, "linux")
	ctx := context.Background()

	require.NoError(t, l.OpenInNewWindow(ctx, "https://a.example.com"))
	require.NoError(t, l.ActivateTab(ctx, 3, "https://b.example.com"))

	assert.Equal(t, [][]string{
		{"browser", "https://a.example.com"},
		{"browser", "https://b.example.com"},
	}, rec.calls)
}

func TestLauncher_RunnerError(t *testing.T) {
	l, rec := newTestLauncher(domain.BrowserSettings{OpenCommand: "browser"}, "linux")
	rec.err = errors.New("exec: not found")

	err := l.OpenInNewTab(context.Background(), "https://go.dev", false)
	assert.EqualError(t, err, "exec: not found")
}

func TestLauncher_CancelledContext(t *testing.T) {
	l, rec := newTestLauncher(domain.BrowserSettings{OpenCommand: "browser"}, "linux")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, l.OpenInNewTab(ctx, "https://go.dev", false), context.Canceled)
	assert.Empty(t, rec.calls)
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	ctx := context.Background()

	require.NoError(t, p.ActivateTab(ctx, 1, "https://a.example.com"))
	require.NoError(t, p.OpenInNewTab(ctx, "https://b.example.com", true))
	require.NoError(t, p.OpenInNewWindow(ctx, "https://c.example.com"))

	assert.Equal(t, "https://a.example.com\nhttps://b.example.com\nhttps://c.example.com\n", buf.String())
}
