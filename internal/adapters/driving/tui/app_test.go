package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipseek/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/views/config"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/services"
)

// fakeSearcher implements driven.VideoSearcher for testing.
type fakeSearcher struct {
	mu    sync.Mutex
	pages map[string]domain.SearchPage
	calls int
}

func (f *fakeSearcher) Search(_ context.Context, req domain.SearchRequest) (domain.SearchPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.pages[req.Query+"|"+req.ContinuationToken], nil
}

// fakePlayer implements driven.Player for testing.
type fakePlayer struct {
	mu        sync.Mutex
	loaded    []string
	destroyed int
	events    chan domain.PlayerEvent
}

func (f *fakePlayer) Load(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = append(f.loaded, id)
	return nil
}

func (f *fakePlayer) Destroy() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed++
	return nil
}

func (f *fakePlayer) Events() <-chan domain.PlayerEvent { return f.events }

type testApp struct {
	app      *App
	settings *services.SettingsService
	history  *services.HistoryStore
	searcher *fakeSearcher
	player   *fakePlayer
}

func newTestApp(t *testing.T, apiKey string, seed ...domain.Video) *testApp {
	t.Helper()

	kv := memory.NewKeyValueStore()
	settings := services.NewSettingsService(kv)
	if apiKey != "" {
		require.NoError(t, settings.SetAPIKey(apiKey))
	}
	filter := services.NewKeywordFilter(settings)
	hist := services.NewHistoryStore(kv, domain.DefaultMaxHistory)
	for i := len(seed) - 1; i >= 0; i-- {
		require.NoError(t, hist.RecordView(seed[i]))
	}

	searcher := &fakeSearcher{pages: make(map[string]domain.SearchPage)}
	player := &fakePlayer{events: make(chan domain.PlayerEvent, 4)}
	search := services.NewSearchSession(searcher, filter, settings, 20)
	playback := services.NewPlaybackSession(player, searcher, filter, hist, 20)
	ctrl := services.NewController(settings, filter, hist, search, playback, 10)

	app, err := NewApp(&Ports{
		Controller: ctrl,
		Settings:   settings,
		Playback:   playback,
		Search:     search,
		Filter:     filter,
	}, 3)
	require.NoError(t, err)
	app.SetDimensions(200, 40)

	return &testApp{app: app, settings: settings, history: hist, searcher: searcher, player: player}
}

func videos(ids ...string) []domain.Video {
	out := make([]domain.Video, len(ids))
	for i, id := range ids {
		out[i] = domain.Video{ID: id, Title: "Video " + id}
	}
	return out
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send runs msg through Update. When msg is one whose command only calls
// the services, the command is run and its message is sent too.
func (ta *testApp) send(msg tea.Msg) {
	_, cmd := ta.app.Update(msg)
	if cmd == nil || !chains(msg) {
		return
	}
	if next := cmd(); next != nil {
		ta.send(next)
	}
}

// press sends a key whose command only calls the services.
func (ta *testApp) press(k string) {
	_, cmd := ta.app.Update(key(k))
	if cmd == nil {
		return
	}
	if next := cmd(); next != nil {
		ta.send(next)
	}
}

func chains(msg tea.Msg) bool {
	switch msg.(type) {
	case messages.SearchRequested, messages.ScrollRequested, messages.VideoSelected,
		messages.HistoryRemoveRequested, messages.APIKeySubmitted, messages.KeywordsSubmitted:
		return true
	}
	return false
}

func TestNewApp_InvalidPorts(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"nil ports", nil, ErrInvalidPorts},
		{"no controller", &Ports{}, ErrMissingController},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(tt.ports, 3)

			assert.Nil(t, app)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestApp_NotReadyBeforeWindowSize(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.app.ready = false

	assert.Equal(t, "Initialising...", ta.app.View())

	ta.app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.True(t, ta.app.Ready())
}

func TestApp_StartsOnConfigWithoutKey(t *testing.T) {
	ta := newTestApp(t, "")
	ta.app.switchTo(ta.app.ports.Controller.ActiveView())

	assert.Equal(t, domain.ViewConfig, ta.app.ports.Controller.ActiveView())
	assert.Contains(t, ta.app.View(), "not set")
}

func TestApp_StartsOnHistoryWithKey(t *testing.T) {
	ta := newTestApp(t, "key", videos("a", "b")...)
	ta.app.switchTo(ta.app.ports.Controller.ActiveView())

	assert.Equal(t, domain.ViewHistory, ta.app.ports.Controller.ActiveView())
	assert.Len(t, ta.app.historyView.Items(), 2)
	assert.Contains(t, ta.app.View(), "Video a")
}

func TestApp_EmptyHistoryPlaceholder(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.app.switchTo(domain.ViewHistory)

	assert.Contains(t, ta.app.View(), history.PlaceholderEmpty)
}

func TestApp_SearchWithoutKeyShowsConfig(t *testing.T) {
	ta := newTestApp(t, "")

	ta.send(messages.SearchRequested{Query: "cats"})

	assert.Zero(t, ta.searcher.calls)
	assert.Equal(t, domain.ViewConfig, ta.app.ports.Controller.ActiveView())
	assert.Equal(t, status.StateError, ta.app.statusbar.State())
}

func TestApp_SearchRendersResults(t *testing.T) {
	ta := newTestApp(t, "key")
	require.NoError(t, ta.settings.SetKeywords("prank"))
	ta.searcher.pages["cats|"] = domain.SearchPage{Items: []domain.Video{
		{ID: "a", Title: "Cute cats"},
		{ID: "b", Title: "Cat prank"},
		{ID: "c", Title: "Sleepy cats"},
	}}

	ta.send(messages.SearchRequested{Query: "cats"})

	assert.Equal(t, domain.ViewSearch, ta.app.ports.Controller.ActiveView())
	assert.Len(t, ta.app.searchView.Items(), 2)
	assert.Equal(t, 1, ta.app.statusbar.Filtered())
	assert.Contains(t, ta.app.View(), "1 video filtered by your keywords")
}

func TestApp_SearchKeyFocusesInput(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.app.switchTo(domain.ViewHistory)

	ta.app.Update(key("2"))

	assert.Equal(t, domain.ViewSearch, ta.app.ports.Controller.ActiveView())
	assert.True(t, ta.app.searchView.Capturing())

	// Typing "q" into the input does not quit.
	ta.app.Update(key("q"))

	assert.Zero(t, ta.player.destroyed)
	assert.True(t, ta.app.searchView.Capturing())
	assert.Equal(t, domain.ViewSearch, ta.app.ports.Controller.ActiveView())
}

func TestApp_ViewKeys(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.app.switchTo(domain.ViewHistory)

	ta.app.Update(key("c"))
	assert.Equal(t, domain.ViewConfig, ta.app.ports.Controller.ActiveView())

	ta.app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	ta.app.Update(key("h"))
	assert.Equal(t, domain.ViewHistory, ta.app.ports.Controller.ActiveView())
}

func TestApp_QuitKey(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.app.switchTo(domain.ViewHistory)

	_, cmd := ta.app.Update(key("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_SelectPlaysAndRefreshesHistory(t *testing.T) {
	ta := newTestApp(t, "key", videos("a")...)
	ta.app.switchTo(domain.ViewHistory)

	ta.send(messages.VideoSelected{Video: domain.Video{ID: "z", Title: "Video z"}})

	assert.Equal(t, []string{"z"}, ta.player.loaded)
	assert.Equal(t, domain.PlaybackPlaying, ta.app.playerbar.State())
	require.Len(t, ta.app.historyView.Items(), 2)
	assert.Equal(t, "z", ta.app.historyView.Items()[0].ID)
}

func TestApp_QuitClosesPlayback(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.app.switchTo(domain.ViewHistory)

	ta.app.Update(key("q"))

	assert.Equal(t, 1, ta.player.destroyed)
}

func TestApp_PlayerErrorSkipsWithNotice(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.searcher.pages["Video a|"] = domain.SearchPage{Items: videos("a", "b")}
	ta.send(messages.VideoSelected{Video: domain.Video{ID: "a", Title: "Video a"}})

	ev := domain.PlayerEvent{Kind: domain.PlayerError, VideoID: "a", Code: 150}
	ta.send(ta.app.handlePlayerEvent(ev)())

	assert.Equal(t, NoticeSkipped, ta.app.playerbar.Notice())
	assert.Equal(t, []string{"a", "b"}, ta.player.loaded)
	assert.Equal(t, "b", ta.app.playerbar.Video().ID)
}

func TestApp_AutoplayRestartNotice(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.searcher.pages["Video a|"] = domain.SearchPage{Items: videos("a", "b")}
	ta.searcher.pages["Video b|"] = domain.SearchPage{Items: videos("a", "b")}
	ta.send(messages.VideoSelected{Video: domain.Video{ID: "a", Title: "Video a"}})

	ta.send(ta.app.handlePlayerEvent(domain.PlayerEvent{Kind: domain.PlayerEnded, VideoID: "a"})())
	assert.Empty(t, ta.app.playerbar.Notice())

	ta.send(ta.app.handlePlayerEvent(domain.PlayerEvent{Kind: domain.PlayerEnded, VideoID: "b"})())

	assert.Equal(t, NoticeRestarted, ta.app.playerbar.Notice())
	assert.Equal(t, []string{"a", "b", "a"}, ta.player.loaded)
}

func TestApp_EventForOtherVideoIgnored(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.send(messages.VideoSelected{Video: domain.Video{ID: "a", Title: "Video a"}})

	ta.send(ta.app.handlePlayerEvent(domain.PlayerEvent{Kind: domain.PlayerEnded, VideoID: "old"})())

	assert.Zero(t, ta.searcher.calls)
	assert.Equal(t, []string{"a"}, ta.player.loaded)
}

func TestApp_SkipWhileIdle(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.app.switchTo(domain.ViewHistory)

	ta.app.Update(key("n"))

	assert.Equal(t, NoticeIdle, ta.app.playerbar.Notice())
}

func TestApp_ClosePlayer(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.send(messages.VideoSelected{Video: domain.Video{ID: "a"}})
	ta.app.switchTo(domain.ViewHistory)

	ta.press("x")

	assert.Equal(t, domain.PlaybackIdle, ta.app.playerbar.State())
}

func TestApp_RemoveHistoryEntry(t *testing.T) {
	ta := newTestApp(t, "key", videos("a", "b")...)
	ta.app.switchTo(domain.ViewHistory)

	ta.press("d")

	assert.Equal(t, 1, ta.history.Len())
	require.Len(t, ta.app.historyView.Items(), 1)
	assert.Equal(t, "b", ta.app.historyView.Items()[0].ID)
}

func TestApp_SaveAPIKey(t *testing.T) {
	ta := newTestApp(t, "")
	ta.app.switchTo(domain.ViewConfig)

	ta.send(messages.APIKeySubmitted{Key: "AIza-new"})

	assert.Equal(t, "AIza-new", ta.settings.APIKey())
	assert.Equal(t, config.MsgKeySaved, ta.app.configView.Message())
}

func TestApp_SaveKeywordsRefiltersResults(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.searcher.pages["cats|"] = domain.SearchPage{Items: []domain.Video{
		{ID: "a", Title: "Cute cats"},
		{ID: "b", Title: "Cat prank"},
	}}
	ta.send(messages.SearchRequested{Query: "cats"})
	require.Len(t, ta.app.searchView.Items(), 2)

	ta.send(messages.KeywordsSubmitted{Keywords: "prank"})
	assert.Equal(t, config.MsgKeywordsSaved, ta.app.configView.Message())

	ta.app.Update(messages.ConfigChanged{Change: <-ta.app.changes})

	require.Len(t, ta.app.searchView.Items(), 1)
	assert.Equal(t, "a", ta.app.searchView.Items()[0].ID)
}

func TestApp_ExternalHistoryChangeRerenders(t *testing.T) {
	ta := newTestApp(t, "key", videos("a")...)
	ta.app.switchTo(domain.ViewHistory)
	require.NoError(t, ta.history.RecordView(domain.Video{ID: "b", Title: "Video b"}))

	ta.settings.Publish(domain.ConfigChange{Key: domain.KeyDatabase, Source: domain.ChangeFromExternal})
	ta.app.Update(messages.ConfigChanged{Change: <-ta.app.changes})

	assert.Len(t, ta.app.historyView.Items(), 2)
}

func TestApp_ThemeToggle(t *testing.T) {
	ta := newTestApp(t, "key")
	ta.app.switchTo(domain.ViewHistory)

	ta.press("t")

	assert.Equal(t, domain.ThemeLight, ta.settings.Theme())
	assert.Equal(t, domain.ThemeLight, ta.app.styles.Theme().Name)
}

func TestApp_HistoryScrollLoadsMore(t *testing.T) {
	seed := make([]domain.Video, 15)
	for i := range seed {
		seed[i] = domain.Video{ID: fmt.Sprintf("v%02d", i), Title: "Video"}
	}
	ta := newTestApp(t, "key", seed...)
	ta.app.switchTo(domain.ViewHistory)
	require.Len(t, ta.app.historyView.Items(), 10)

	ta.send(messages.ScrollRequested{})

	assert.Len(t, ta.app.historyView.Items(), 15)
	assert.False(t, ta.app.ports.Controller.ScrollArmed())
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "API error: Bad key. Check your key and quota.",
		describeError(&domain.APIError{Code: 400, Message: "Bad key"}))
	assert.Equal(t, "Network error: transport failure: dial tcp.",
		describeError(fmt.Errorf("%w: dial tcp", domain.ErrTransport)))
	assert.Equal(t, "Too many requests, try again shortly.", describeError(domain.ErrRateLimited))
	assert.Equal(t, "boom", describeError(errors.New("boom")))
}
