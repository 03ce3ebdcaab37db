// Package mcp provides an MCP (Model Context Protocol) server adapter for gpdf.
// It lets AI assistants search local PDF collections and inspect past runs.
package mcp

import "errors"

// ErrMissingGrepService is returned when the grep service is not provided.
var ErrMissingGrepService = errors.New("mcp: grep service is required")
