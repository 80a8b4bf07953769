// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// SearchRequested asks the app to start a new query.
type SearchRequested struct {
	Query string
}

// SearchCompleted carries the first page of a new query.
type SearchCompleted struct {
	Query string
	Batch domain.SearchBatch
	Err   error
}

// ScrollRequested asks the app to extend the active list.
type ScrollRequested struct{}

// ScrollCompleted carries the batch loaded by an infinite-scroll trigger.
type ScrollCompleted struct {
	Result domain.ScrollResult
	Err    error
}

// ViewChanged asks the app to switch to another view.
type ViewChanged struct {
	View domain.View
}

// ViewSwitched carries the outcome of a view switch.
type ViewSwitched struct {
	Transition domain.ViewTransition
	Err        error
}

// VideoSelected asks the app to play a video.
type VideoSelected struct {
	Video domain.Video
}

// PlaybackStarted signals the outcome of playing a selected video.
type PlaybackStarted struct {
	Video domain.Video
	Err   error
}

// PlayerEventReceived carries an event read from the player.
type PlayerEventReceived struct {
	Event domain.PlayerEvent
}

// AdvanceCompleted carries the outcome of an autoplay step.
type AdvanceCompleted struct {
	Event   domain.PlayerEvent
	Result  domain.AdvanceResult
	Handled bool
	Err     error
}

// PlaybackClosed signals the player was closed.
type PlaybackClosed struct {
	Err error
}

// HistoryRemoveRequested asks the app to delete a history entry.
type HistoryRemoveRequested struct {
	ID string
}

// HistoryRemoved signals a history entry was deleted.
type HistoryRemoved struct {
	ID  string
	Err error
}

// APIKeySubmitted asks the app to store an API key.
type APIKeySubmitted struct {
	Key string
}

// KeywordsSubmitted asks the app to store the filter keywords.
type KeywordsSubmitted struct {
	Keywords string
}

// SettingsSaved signals a setting was written.
type SettingsSaved struct {
	Key string
	Err error
}

// ThemeToggled signals the theme was switched.
type ThemeToggled struct {
	Theme domain.Theme
	Err   error
}

// ConfigChanged relays a settings change, local or external.
type ConfigChanged struct {
	Change domain.ConfigChange
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
