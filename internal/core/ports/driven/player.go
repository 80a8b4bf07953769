package driven

import (
	"context"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// Player renders videos and reports their lifecycle.
type Player interface {
	// Load starts playing the given video, replacing whatever is loaded.
	Load(ctx context.Context, videoID string) error

	// Destroy tears down the current player. Destroying an absent player is a no-op.
	Destroy() error

	// Events delivers Ready, Ended and Error events for loaded videos.
	// Events for replaced or destroyed videos are not delivered.
	Events() <-chan domain.PlayerEvent
}
