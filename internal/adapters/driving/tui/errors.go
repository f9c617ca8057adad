package tui

import "errors"

// ErrMissingPicker is returned when the picker session is not provided.
var ErrMissingPicker = errors.New("tui: picker is required")

// ErrMissingActionService is returned when the action service is not provided.
var ErrMissingActionService = errors.New("tui: action service is required")
