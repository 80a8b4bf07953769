package driving

import (
	"context"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// ViewRouter switches between the application views.
type ViewRouter interface {
	// SwitchTo activates view and returns what must be re-rendered.
	SwitchTo(view domain.View) (domain.ViewTransition, error)

	// Active returns the active view.
	Active() domain.View
}

// ScrollDriver loads the next batch of the active data view.
type ScrollDriver interface {
	// Trigger extends the active view by one batch.
	Trigger(ctx context.Context) (domain.ScrollResult, error)

	// Rearm re-enables the trigger for view after its cursor was reset.
	Rearm(view domain.View)

	// Disarm stops all triggers until the next Rearm.
	Disarm()

	// Armed reports whether the trigger for the active view is armed.
	Armed() bool
}
