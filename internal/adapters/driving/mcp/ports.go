package mcp

import (
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search fetches filtered result pages.
	Search driving.SearchService

	// History reads the viewing history.
	History driving.HistoryService

	// Filter hides forbidden videos from the history.
	Filter driving.FilterService

	// Settings exposes the keywords and theme.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
