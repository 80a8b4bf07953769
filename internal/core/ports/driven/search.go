package driven

import (
	"context"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// VideoSearcher queries the remote video search API.
// Implementations return *domain.APIError for errors reported by the API
// and wrap domain.ErrTransport for everything else. They never retry.
type VideoSearcher interface {
	// Search fetches one page of results.
	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchPage, error)
}
