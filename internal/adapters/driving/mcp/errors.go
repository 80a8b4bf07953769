// Package mcp provides an MCP (Model Context Protocol) server adapter for clipseek.
// It lets AI assistants search videos and read the viewing history.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrHistoryUnavailable is returned by history tools when no history service is wired.
var ErrHistoryUnavailable = errors.New("mcp: history is not available")
