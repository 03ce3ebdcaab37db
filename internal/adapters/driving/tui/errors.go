package tui

import "errors"

// ErrMissingGrepService is returned when the grep service is not provided.
var ErrMissingGrepService = errors.New("tui: grep service is required")
