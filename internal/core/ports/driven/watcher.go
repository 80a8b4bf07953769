package driven

import (
	"context"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// ChangeWatcher notices configuration and storage changes made outside
// this process.
type ChangeWatcher interface {
	// Start begins watching until ctx is cancelled or Close is called.
	Start(ctx context.Context) error

	// Changes delivers one notification per detected change.
	Changes() <-chan domain.ConfigChange

	// Close stops watching and closes the Changes channel.
	Close() error
}
