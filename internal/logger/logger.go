// Package logger provides verbose logging for quickswitch.
// When verbose mode is enabled via the --verbose flag, messages describe
// each query cycle: parsing, per-source lookups, and discarded stale results.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	stamp   bool
	now     = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetTimestamps prefixes each line with a wall-clock time when enabled.
func SetTimestamps(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	stamp = enabled
}

// ToFile appends log output to path, creating parent directories, and
// enables timestamps. The returned function restores the previous output
// and closes the file.
func ToFile(path string) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	mu.Lock()
	prevOutput, prevStamp := output, stamp
	output, stamp = f, true
	mu.Unlock()

	return func() error {
		mu.Lock()
		output, stamp = prevOutput, prevStamp
		mu.Unlock()
		return f.Close()
	}, nil
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write("[DEBUG] ", format, args)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write("[INFO] ", format, args)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write("[WARN] ", format, args)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n%s=== %s ===\n", prefix(), name)
	}
}

func write(level, format string, args []any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, prefix()+level+format+"\n", args...)
	}
}

// prefix returns the timestamp prefix. The caller must hold the lock.
func prefix() string {
	if !stamp {
		return ""
	}
	return now().Format("15:04:05.000") + " "
}
