package driving

import (
	"context"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// PlaybackService plays videos and autoplays related ones without repeats.
type PlaybackService interface {
	// Play loads v in a fresh player and records it in history.
	Play(ctx context.Context, v domain.Video) error

	// OnEnded advances to a related video after the current one finished.
	OnEnded(ctx context.Context) (domain.AdvanceResult, error)

	// OnError skips an unplayable video by advancing.
	OnError(ctx context.Context, code int) (domain.AdvanceResult, error)

	// Advance selects and plays the next related video.
	Advance(ctx context.Context, excludeID, queryTitle string) (domain.AdvanceResult, error)

	// Close destroys the player and ends the session.
	Close() error

	// State returns the playback state.
	State() domain.PlaybackState

	// Current returns the loaded video. Zero when nothing is loaded.
	Current() domain.Video

	// Watched returns the IDs played in this session.
	Watched() []string

	// Events delivers player events. Nil when no player is configured.
	Events() <-chan domain.PlayerEvent
}
