package driving

import (
	"context"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// Controller coordinates the services behind one interactive session.
// Interfaces drive it with user intents and player events.
type Controller interface {
	// Search validates configuration, switches to the search view and
	// starts a new query.
	Search(ctx context.Context, text string) (domain.SearchBatch, error)

	// Select plays the chosen video.
	Select(ctx context.Context, v domain.Video) error

	// HandlePlayerEvent reacts to a player lifecycle event. The boolean is
	// false when the event required no action.
	HandlePlayerEvent(ctx context.Context, ev domain.PlayerEvent) (domain.AdvanceResult, bool, error)

	// RemoveFromHistory deletes a history entry without disturbing the
	// entries still to be scrolled into view.
	RemoveFromHistory(id string) error

	// SwitchTo changes the active view.
	SwitchTo(view domain.View) (domain.ViewTransition, error)

	// Scroll extends the active data view.
	Scroll(ctx context.Context) (domain.ScrollResult, error)

	// ActiveView returns the active view.
	ActiveView() domain.View

	// ScrollArmed reports whether scrolling the active view can load more.
	ScrollArmed() bool

	// HistoryDirty reports whether the rendered history is stale and clears the flag.
	HistoryDirty() bool

	// Close ends playback.
	Close() error
}
