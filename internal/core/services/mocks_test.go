package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipseek/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// mockSearcher implements driven.VideoSearcher for testing.
type mockSearcher struct {
	mu         sync.Mutex
	pages      map[string]domain.SearchPage
	err        error
	requests   []domain.SearchRequest
	SearchFunc func(ctx context.Context, req domain.SearchRequest) (domain.SearchPage, error)
}

func newMockSearcher() *mockSearcher {
	return &mockSearcher{pages: make(map[string]domain.SearchPage)}
}

// addPage registers the page returned for query and token.
func (m *mockSearcher) addPage(query, token string, page domain.SearchPage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[query+"|"+token] = page
}

func (m *mockSearcher) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchPage, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	fn := m.SearchFunc
	err := m.err
	page := m.pages[req.Query+"|"+req.ContinuationToken]
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	if err != nil {
		return domain.SearchPage{}, err
	}
	return page, nil
}

func (m *mockSearcher) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *mockSearcher) lastRequest() domain.SearchRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return domain.SearchRequest{}
	}
	return m.requests[len(m.requests)-1]
}

// mockPlayer implements driven.Player for testing.
type mockPlayer struct {
	mu        sync.Mutex
	loaded    []string
	destroyed int
	loadErr   error
	events    chan domain.PlayerEvent
}

func newMockPlayer() *mockPlayer {
	return &mockPlayer{events: make(chan domain.PlayerEvent, 8)}
}

func (m *mockPlayer) Load(_ context.Context, videoID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return m.loadErr
	}
	m.loaded = append(m.loaded, videoID)
	return nil
}

func (m *mockPlayer) Destroy() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroyed++
	return nil
}

func (m *mockPlayer) Events() <-chan domain.PlayerEvent {
	return m.events
}

func (m *mockPlayer) loads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.loaded))
	copy(out, m.loaded)
	return out
}

func (m *mockPlayer) destroys() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destroyed
}

// failingKV implements driven.KeyValueStore with failing writes.
type failingKV struct {
	*memory.KeyValueStore
	getErr error
	setErr error
}

func (f *failingKV) Get(key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.KeyValueStore.Get(key)
}

func (f *failingKV) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.KeyValueStore.Set(key, value)
}

var errDiskFull = errors.New("disk full")

// testEnv bundles the services wired the way the application wires them.
type testEnv struct {
	kv       *memory.KeyValueStore
	settings *SettingsService
	filter   *KeywordFilter
	history  *HistoryStore
	searcher *mockSearcher
	player   *mockPlayer
	search   *SearchSession
	playback *PlaybackSession
}

func newTestEnv(t *testing.T, apiKey string, maxHistory int) *testEnv {
	t.Helper()

	kv := memory.NewKeyValueStore()
	settings := NewSettingsService(kv)
	if apiKey != "" {
		require.NoError(t, settings.SetAPIKey(apiKey))
	}
	filter := NewKeywordFilter(settings)
	history := NewHistoryStore(kv, maxHistory)
	searcher := newMockSearcher()
	player := newMockPlayer()

	return &testEnv{
		kv:       kv,
		settings: settings,
		filter:   filter,
		history:  history,
		searcher: searcher,
		player:   player,
		search:   NewSearchSession(searcher, filter, settings, 20),
		playback: NewPlaybackSession(player, searcher, filter, history, 20),
	}
}

func videoIDs(videos []domain.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}

// gatedHistory pauses RecordView for one video until release is closed.
type gatedHistory struct {
	*HistoryStore
	gateID  string
	entered chan struct{}
	release chan struct{}
}

func newGatedHistory(h *HistoryStore, id string) *gatedHistory {
	return &gatedHistory{
		HistoryStore: h,
		gateID:       id,
		entered:      make(chan struct{}),
		release:      make(chan struct{}),
	}
}

func (g *gatedHistory) RecordView(v domain.Video) error {
	if v.ID == g.gateID {
		close(g.entered)
		<-g.release
	}
	return g.HistoryStore.RecordView(v)
}
