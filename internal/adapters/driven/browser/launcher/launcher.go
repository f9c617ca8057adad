// Package launcher implements the Browser port by running commands.
package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure Launcher implements the interface.
var _ driven.Browser = (*Launcher)(nil)

const (
	urlToken = "{url}"
	idToken  = "{id}"
)

// Runner starts a process without waiting for it to exit.
type Runner func(name string, args ...string) error

// Launcher runs the configured browser commands.
type Launcher struct {
	settings domain.BrowserSettings
	goos     string
	run      Runner
}

// New creates a Launcher for settings using the real process runner.
func New(settings domain.BrowserSettings) *Launcher {
	return &Launcher{
		settings: settings,
		goos:     runtime.GOOS,
		run:      startProcess,
	}
}

// WithRunner returns a copy of l that starts processes with run.
func (l *Launcher) WithRunner(run Runner) *Launcher {
	clone := *l
	clone.run = run
	return &clone
}

// ActivateTab runs the activate command, or reopens url when none is set.
func (l *Launcher) ActivateTab(ctx context.Context, tabID int, url string) error {
	if l.settings.ActivateCommand == "" {
		logger.Debug("No activate command, opening tab %d url", tabID)
		return l.OpenInNewTab(ctx, url, false)
	}
	return l.exec(ctx, l.settings.ActivateCommand, url, strconv.Itoa(tabID))
}

// OpenInNewTab runs the open command or the OS default opener.
// Background tabs use the same command; most openers cannot express focus.
func (l *Launcher) OpenInNewTab(ctx context.Context, url string, background bool) error {
	if l.settings.OpenCommand == "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		name, args, err := defaultOpener(l.goos, url)
		if err != nil {
			return err
		}
		logger.Debug("Opening %s with %s (background=%t)", url, name, background)
		return l.run(name, args...)
	}
	return l.exec(ctx, l.settings.OpenCommand, url, "")
}

// OpenInNewWindow runs the window command, or opens a tab when none is set.
func (l *Launcher) OpenInNewWindow(ctx context.Context, url string) error {
	if l.settings.WindowCommand == "" {
		return l.OpenInNewTab(ctx, url, false)
	}
	return l.exec(ctx, l.settings.WindowCommand, url, "")
}

func (l *Launcher) exec(ctx context.Context, template, url, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	argv := expand(template, url, id)
	if len(argv) == 0 {
		return fmt.Errorf("empty browser command: %w", domain.ErrNotConfigured)
	}
	logger.Debug("Running %s", strings.Join(argv, " "))
	return l.run(argv[0], argv[1:]...)
}

// expand splits template on whitespace and substitutes tokens. When no
// token is present the url is appended as the last argument.
func expand(template, url, id string) []string {
	fields := strings.Fields(template)
	if len(fields) == 0 {
		return nil
	}

	substituted := false
	out := make([]string, len(fields))
	for i, f := range fields {
		if strings.Contains(f, urlToken) || strings.Contains(f, idToken) {
			substituted = true
			f = strings.ReplaceAll(f, urlToken, url)
			f = strings.ReplaceAll(f, idToken, id)
		}
		out[i] = f
	}
	if !substituted {
		out = append(out, url)
	}
	return out
}

// defaultOpener returns the platform command that opens url.
func defaultOpener(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform %s: %w", goos, domain.ErrBrowserUnavailable)
	}
}

func startProcess(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return cmd.Process.Release()
}
