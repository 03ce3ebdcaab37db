package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidPattern indicates the supplied regular expression does not
	// compile. The batch terminates before any file is touched (exit 2).
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNoInput indicates no PDF candidates were resolved from the
	// supplied paths (exit 1).
	ErrNoInput = errors.New("no PDF files found")

	// ErrNamingExhausted indicates every auto-generated output name in
	// 001..999 is already taken. Fatal to the output-writing step only.
	ErrNamingExhausted = errors.New("no available output filename")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDocumentClosed indicates an operation on an already-closed document.
	ErrDocumentClosed = errors.New("document closed")
)
