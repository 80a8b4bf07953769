// Package tui provides an interactive terminal user interface for clipseek.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Controller routes searches, selections, view switches and player events.
	Controller driving.Controller

	// Settings reads and writes the API key, keywords and theme.
	Settings driving.SettingsService

	// Playback exposes the player state and its event stream.
	Playback driving.PlaybackService

	// Search exposes the accumulated results of the active query.
	Search driving.SearchService

	// Filter re-applies the keywords after they change.
	Filter driving.FilterService
}

// Validate ensures all required ports are set.
// Search and Filter are optional; without them results are not refiltered
// when the keywords change.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Controller == nil {
		return ErrMissingController
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	if p.Playback == nil {
		return ErrMissingPlaybackService
	}
	return nil
}
