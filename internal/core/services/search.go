package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driven"
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// Ensure SearchSession implements the interface.
var _ driving.SearchService = (*SearchSession)(nil)

// SearchSession owns the active query, its continuation token and the
// filtered results accumulated so far. The lock is never held across a
// network call; responses belonging to a superseded query are discarded.
type SearchSession struct {
	searcher driven.VideoSearcher
	filter   driving.FilterService
	settings driving.SettingsService
	pageSize int
	newID    func() string

	mu      sync.Mutex
	cursor  domain.SearchCursor
	results []domain.Video
	started bool
}

// NewSearchSession creates a search session.
func NewSearchSession(
	searcher driven.VideoSearcher,
	filter driving.FilterService,
	settings driving.SettingsService,
	pageSize int,
) *SearchSession {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &SearchSession{
		searcher: searcher,
		filter:   filter,
		settings: settings,
		pageSize: pageSize,
		newID:    uuid.NewString,
	}
}

// StartQuery resets the session and fetches the first page of text.
func (s *SearchSession) StartQuery(ctx context.Context, text string) (domain.SearchBatch, error) {
	logger.Section("Search")

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.SearchBatch{}, domain.ErrEmptyQuery
	}
	if s.settings.APIKey() == "" {
		logger.Debug("No API key configured, not searching")
		return domain.SearchBatch{}, domain.ErrAPIKeyMissing
	}

	s.mu.Lock()
	gen := s.newID()
	s.cursor = domain.SearchCursor{Query: text, IsFetching: true, Generation: gen}
	s.results = nil
	s.started = true
	s.mu.Unlock()

	logger.Debug("Query: %q (generation %s)", text, gen)
	return s.fetch(ctx, gen, text, "", false)
}

// LoadMore fetches the next page of the active query.
func (s *SearchSession) LoadMore(ctx context.Context) (domain.SearchBatch, error) {
	s.mu.Lock()
	if s.cursor.IsFetching {
		s.mu.Unlock()
		return domain.SearchBatch{}, domain.ErrFetchInProgress
	}
	if !s.cursor.HasMore() {
		s.mu.Unlock()
		return domain.SearchBatch{}, domain.ErrExhausted
	}
	s.cursor.IsFetching = true
	gen, query, token := s.cursor.Generation, s.cursor.Query, s.cursor.ContinuationToken
	s.mu.Unlock()

	logger.Debug("Loading next page of %q", query)
	return s.fetch(ctx, gen, query, token, true)
}

// FetchPage fetches one filtered page without touching the session.
func (s *SearchSession) FetchPage(ctx context.Context, query, token string) (domain.SearchBatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.SearchBatch{}, domain.ErrEmptyQuery
	}
	if s.settings.APIKey() == "" {
		return domain.SearchBatch{}, domain.ErrAPIKeyMissing
	}

	page, err := s.searcher.Search(ctx, domain.NewSearchRequest(query, token, s.pageSize))
	if err != nil {
		return domain.SearchBatch{}, fmt.Errorf("search %q: %w", query, err)
	}
	kept, filtered := s.filter.Apply(page.Items)
	return domain.SearchBatch{
		Query:                 query,
		Items:                 kept,
		FilteredCount:         filtered,
		Exhausted:             page.NextContinuationToken == "",
		Append:                token != "",
		NextContinuationToken: page.NextContinuationToken,
	}, nil
}

// Cursor returns a snapshot of the pagination state.
func (s *SearchSession) Cursor() domain.SearchCursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Results returns the accumulated results of the active query.
func (s *SearchSession) Results() []domain.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Video, len(s.results))
	copy(out, s.results)
	return out
}

// HasResults reports whether a query has been started.
func (s *SearchSession) HasResults() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func (s *SearchSession) fetch(
	ctx context.Context, gen, query, token string, appending bool,
) (domain.SearchBatch, error) {
	page, err := s.searcher.Search(ctx, domain.NewSearchRequest(query, token, s.pageSize))

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor.Generation != gen {
		logger.Debug("Discarding response for superseded query %q", query)
		return domain.SearchBatch{}, domain.ErrStaleResponse
	}
	s.cursor.IsFetching = false

	if err != nil {
		logger.Warn("Search for %q failed: %v", query, err)
		return domain.SearchBatch{}, fmt.Errorf("search %q: %w", query, err)
	}

	s.cursor.ContinuationToken = page.NextContinuationToken
	kept, filtered := s.filter.Apply(page.Items)
	s.results = append(s.results, kept...)

	logger.Debug("Received %d items, %d filtered, more=%t", len(page.Items), filtered, s.cursor.HasMore())

	return domain.SearchBatch{
		Query:                 query,
		Items:                 kept,
		FilteredCount:         filtered,
		Exhausted:             !s.cursor.HasMore(),
		Append:                appending,
		NextContinuationToken: page.NextContinuationToken,
	}, nil
}
