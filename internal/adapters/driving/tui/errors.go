package tui

import "errors"

// ErrMissingController is returned when the session controller is not provided.
var ErrMissingController = errors.New("tui: controller is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")

// ErrMissingPlaybackService is returned when the playback service is not provided.
var ErrMissingPlaybackService = errors.New("tui: playback service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
