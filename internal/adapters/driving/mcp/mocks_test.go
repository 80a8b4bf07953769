package mcp

import (
	"context"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	batch     domain.SearchBatch
	err       error
	lastQuery string
	lastToken string
}

func (m *mockSearchService) StartQuery(_ context.Context, _ string) (domain.SearchBatch, error) {
	return m.batch, m.err
}

func (m *mockSearchService) LoadMore(_ context.Context) (domain.SearchBatch, error) {
	return m.batch, m.err
}

func (m *mockSearchService) FetchPage(_ context.Context, query, token string) (domain.SearchBatch, error) {
	m.lastQuery = query
	m.lastToken = token
	return m.batch, m.err
}

func (m *mockSearchService) Cursor() domain.SearchCursor { return domain.SearchCursor{} }

func (m *mockSearchService) Results() []domain.Video { return m.batch.Items }

func (m *mockSearchService) HasResults() bool { return len(m.batch.Items) > 0 }

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	videos []domain.Video
}

func (m *mockHistoryService) RecordView(v domain.Video) error {
	m.videos = domain.PushHistory(m.videos, v, domain.DefaultMaxHistory)
	return nil
}

func (m *mockHistoryService) ReadBatch(offset, size int) ([]domain.Video, bool) {
	return domain.HistoryBatch(m.videos, offset, size)
}

func (m *mockHistoryService) ClearCursor(c *domain.HistoryCursor) { c.Reset() }

func (m *mockHistoryService) All() []domain.Video { return m.videos }

func (m *mockHistoryService) Len() int { return len(m.videos) }

func (m *mockHistoryService) Remove(_ string) error { return nil }

func (m *mockHistoryService) Clear() error {
	m.videos = nil
	return nil
}

// mockFilterService hides videos by keyword.
type mockFilterService struct {
	keywords domain.KeywordSet
}

func (m *mockFilterService) IsForbidden(v domain.Video) bool {
	return domain.IsForbidden(v, m.keywords)
}

func (m *mockFilterService) Apply(videos []domain.Video) ([]domain.Video, int) {
	return domain.FilterVideos(videos, m.keywords)
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	apiKey   string
	keywords string
	theme    domain.Theme
}

func (m *mockSettingsService) APIKey() string { return m.apiKey }

func (m *mockSettingsService) SetAPIKey(key string) error {
	m.apiKey = key
	return nil
}

func (m *mockSettingsService) Keywords() string { return m.keywords }

func (m *mockSettingsService) KeywordSet() domain.KeywordSet { return domain.ParseKeywords(m.keywords) }

func (m *mockSettingsService) SetKeywords(raw string) error {
	m.keywords = raw
	return nil
}

func (m *mockSettingsService) Theme() domain.Theme { return m.theme }

func (m *mockSettingsService) SetTheme(t domain.Theme) error {
	m.theme = t
	return nil
}

func (m *mockSettingsService) ToggleTheme() (domain.Theme, error) {
	m.theme = m.theme.Toggle()
	return m.theme, nil
}

func (m *mockSettingsService) Subscribe(func(domain.ConfigChange)) {}

func (m *mockSettingsService) Publish(domain.ConfigChange) {}
