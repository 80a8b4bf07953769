package driving

import (
	"context"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// SearchService runs paginated, keyword-filtered video searches.
type SearchService interface {
	// StartQuery begins a new query and fetches its first page.
	StartQuery(ctx context.Context, text string) (domain.SearchBatch, error)

	// LoadMore fetches the next page of the active query.
	LoadMore(ctx context.Context) (domain.SearchBatch, error)

	// FetchPage fetches a single filtered page without touching session state.
	FetchPage(ctx context.Context, query, token string) (domain.SearchBatch, error)

	// Cursor returns a snapshot of the pagination state.
	Cursor() domain.SearchCursor

	// Results returns every video accumulated for the active query.
	Results() []domain.Video

	// HasResults reports whether a query has been run.
	HasResults() bool
}
