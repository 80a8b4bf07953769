package domain

// DefaultPageSize is the number of results requested per search page.
const DefaultPageSize = 20

// SafeSearchStrict is the content rating applied to every search request.
const SafeSearchStrict = "strict"

// SearchRequest describes one page request to the video search API.
type SearchRequest struct {
	// Query is the free text to search for.
	Query string

	// ContinuationToken selects the next page. Empty requests the first page.
	ContinuationToken string

	// PageSize is the maximum number of results.
	PageSize int

	// SafeSearch is the provider's content rating filter.
	SafeSearch string

	// EmbeddableOnly restricts results to videos that can be played in an
	// embedded player.
	EmbeddableOnly bool
}

// NewSearchRequest returns a request with the fixed safety parameters set.
func NewSearchRequest(query, token string, pageSize int) SearchRequest {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return SearchRequest{
		Query:             query,
		ContinuationToken: token,
		PageSize:          pageSize,
		SafeSearch:        SafeSearchStrict,
		EmbeddableOnly:    true,
	}
}

// SearchPage is one page of raw results as returned by the provider.
type SearchPage struct {
	Items                 []Video
	NextContinuationToken string
}

// SearchCursor is the pagination state of the active search query.
type SearchCursor struct {
	// Query is the text of the active query.
	Query string

	// ContinuationToken is the token for the next page. Empty once the
	// results are exhausted.
	ContinuationToken string

	// IsFetching guards against concurrent page requests.
	IsFetching bool

	// Generation identifies the user-initiated query the cursor belongs to.
	Generation string
}

// HasMore reports whether another page can be requested.
func (c SearchCursor) HasMore() bool {
	return c.ContinuationToken != ""
}

// SearchBatch is the filtered outcome of one page fetch, ready to render.
type SearchBatch struct {
	// Query is the query the batch belongs to.
	Query string

	// Items are the videos that survived filtering.
	Items []Video

	// FilteredCount is the number of videos removed by the keyword filter.
	FilteredCount int

	// Exhausted is true when no further page exists.
	Exhausted bool

	// Append is false for the first page of a query.
	Append bool

	// NextContinuationToken is the token for the following page.
	NextContinuationToken string
}
