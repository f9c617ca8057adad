package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a collaborator was not wired.
	// Aggregation treats it like any other source failure and omits the section.
	ErrNotConfigured = errors.New("not configured")

	// ErrUnsupportedSource indicates an unknown history or bookmark backend.
	ErrUnsupportedSource = errors.New("unsupported source")

	// ErrInvalidScope indicates an unknown filter scope string.
	ErrInvalidScope = errors.New("invalid filter scope")

	// ErrBrowserUnavailable indicates no command could be found to open a url.
	ErrBrowserUnavailable = errors.New("browser unavailable")

	// ErrSourceClosed indicates the source has been closed.
	ErrSourceClosed = errors.New("source closed")
)
