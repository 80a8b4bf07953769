package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/components/player"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/views/config"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// Autoplay notices shown in the player bar.
const (
	NoticeSkipped   = "autoplay: skipped unplayable video"
	NoticeRestarted = "autoplay: watched every related video, starting over"
	NoticeStalled   = "autoplay: no related videos found"
	NoticeIdle      = "nothing is playing"
)

// chrome is the number of rows used by the tabs, player bar and status bar.
const chrome = 5

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	historyView *history.View
	searchView  *search.View
	configView  *config.View
	statusbar   *status.Bar
	playerbar   *player.Bar

	// changes relays settings changes from the settings service.
	changes chan domain.ConfigChange

	// scrolling is set while a scroll trigger is in flight.
	scrolling bool

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application. scrollThreshold is how many rows
// from the end of a list the next batch is requested.
func NewApp(ports *Ports, scrollThreshold int) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if scrollThreshold < 0 {
		scrollThreshold = domain.DefaultScrollThreshold
	}

	s := styles.ForTheme(ports.Settings.Theme())
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		historyView: history.NewView(s, km, scrollThreshold),
		searchView:  search.NewView(s, km, scrollThreshold),
		configView:  config.NewView(s, km),
		statusbar:   status.NewBar(s, km),
		playerbar:   player.NewBar(s),
		changes:     make(chan domain.ConfigChange, 16),
	}

	ports.Settings.Subscribe(func(c domain.ConfigChange) {
		select {
		case a.changes <- c:
		default:
			logger.Warn("tui: dropped config change for %q", c.Key)
		}
	})
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("clipseek"),
		a.switchTo(a.ports.Controller.ActiveView()),
		a.waitForPlayerEvent(),
		a.waitForConfigChange(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.SearchRequested:
		a.statusbar.SetState(status.StateLoading)
		a.statusbar.SetMessage("Searching...")
		return a, a.runSearch(msg.Query)

	case messages.SearchCompleted:
		return a, a.handleSearchCompleted(msg)

	case messages.ScrollRequested:
		return a, a.requestScroll()

	case messages.ScrollCompleted:
		return a, a.handleScrollCompleted(msg)

	case messages.VideoSelected:
		return a, a.play(msg.Video)

	case messages.PlaybackStarted:
		switch {
		case domain.IsNoOp(msg.Err):
		case msg.Err != nil:
			a.fail(msg.Err)
		default:
			a.playerbar.SetNotice("")
			a.statusbar.Clear()
		}
		a.syncPlayer()
		return a, a.refreshHistoryIfDirty()

	case messages.PlayerEventReceived:
		return a, tea.Batch(a.handlePlayerEvent(msg.Event), a.waitForPlayerEvent())

	case messages.AdvanceCompleted:
		a.handleAdvanceCompleted(msg)
		return a, a.refreshHistoryIfDirty()

	case messages.PlaybackClosed:
		if msg.Err != nil {
			a.fail(msg.Err)
		}
		a.playerbar.SetNotice("")
		a.syncPlayer()
		return a, nil

	case messages.HistoryRemoveRequested:
		return a, a.removeHistory(msg.ID)

	case messages.HistoryRemoved:
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, nil
		}
		a.historyView.Remove(msg.ID)
		a.statusbar.SetCounts(len(a.historyView.Items()), a.historyView.Filtered())
		return a, a.fillCmd()

	case messages.APIKeySubmitted:
		return a, a.saveAPIKey(msg.Key)

	case messages.KeywordsSubmitted:
		return a, a.saveKeywords(msg.Keywords)

	case messages.SettingsSaved:
		a.handleSettingsSaved(msg)
		return a, nil

	case messages.ThemeToggled:
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, nil
		}
		a.applyTheme(msg.Theme)
		return a, nil

	case messages.ConfigChanged:
		return a, tea.Batch(a.handleConfigChanged(msg.Change), a.waitForConfigChange())

	case messages.ErrorOccurred:
		a.fail(msg.Err)
		return a, nil

	case messages.Quit:
		return a, a.quit()
	}

	return a, a.forward(msg)
}

// handleKey routes global bindings unless an input is capturing keystrokes.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		return a.quit()
	}
	if a.capturing() {
		return a.forward(msg)
	}

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a.quit()
	case keymap.Matches(keyStr, a.keymap.History):
		return a.switchTo(domain.ViewHistory)
	case keymap.Matches(keyStr, a.keymap.Search):
		cmd := a.switchTo(domain.ViewSearch)
		if keyStr == "/" || a.searchView.Query() == "" {
			return tea.Batch(cmd, a.searchView.FocusInput())
		}
		return cmd
	case keymap.Matches(keyStr, a.keymap.Config):
		return a.switchTo(domain.ViewConfig)
	case keymap.Matches(keyStr, a.keymap.Theme):
		return a.toggleTheme()
	case keymap.Matches(keyStr, a.keymap.ClosePlayer):
		return a.closePlayer()
	case keymap.Matches(keyStr, a.keymap.Next):
		return a.skip()
	}
	return a.forward(msg)
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.ports.Controller.ActiveView() {
	case domain.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case domain.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case domain.ViewConfig:
		a.configView, cmd = a.configView.Update(msg)
	}
	return cmd
}

func (a *App) capturing() bool {
	switch a.ports.Controller.ActiveView() {
	case domain.ViewSearch:
		return a.searchView.Capturing()
	case domain.ViewConfig:
		return a.configView.Capturing()
	default:
		return a.historyView.Capturing()
	}
}

// switchTo activates view and renders what the transition returned.
func (a *App) switchTo(view domain.View) tea.Cmd {
	t, err := a.ports.Controller.SwitchTo(view)
	if err != nil {
		a.fail(err)
		return nil
	}
	a.statusbar.Clear()
	return a.showView(t)
}

// showView syncs the view models with the active view.
func (a *App) showView(t domain.ViewTransition) tea.Cmd {
	a.statusbar.SetView(t.To)
	switch t.To {
	case domain.ViewHistory:
		a.historyView.Reset(t)
		a.statusbar.SetCounts(len(a.historyView.Items()), a.historyView.Filtered())
		return a.fillCmd()
	case domain.ViewSearch:
		a.statusbar.SetCounts(len(a.searchView.Items()), a.searchView.Filtered())
		return nil
	case domain.ViewConfig:
		a.statusbar.SetCounts(0, 0)
		return a.configView.Load(a.ports.Settings.APIKey() != "", a.ports.Settings.Keywords())
	}
	return nil
}

// fillCmd requests another batch while the active list is too short to
// reach the scroll threshold by navigation.
func (a *App) fillCmd() tea.Cmd {
	var needs bool
	switch a.ports.Controller.ActiveView() {
	case domain.ViewHistory:
		needs = a.historyView.NeedsMore()
	case domain.ViewSearch:
		needs = a.searchView.NeedsMore()
	}
	if !needs || !a.ports.Controller.ScrollArmed() {
		return nil
	}
	return func() tea.Msg { return messages.ScrollRequested{} }
}

func (a *App) runSearch(query string) tea.Cmd {
	ctx := a.ctx
	ctrl := a.ports.Controller
	return func() tea.Msg {
		batch, err := ctrl.Search(ctx, query)
		return messages.SearchCompleted{Query: query, Batch: batch, Err: err}
	}
}

func (a *App) handleSearchCompleted(msg messages.SearchCompleted) tea.Cmd {
	switch {
	case errors.Is(msg.Err, domain.ErrAPIKeyMissing):
		cmd := a.showView(domain.ViewTransition{To: a.ports.Controller.ActiveView()})
		a.statusbar.Fail("Set your YouTube API key to search")
		return cmd
	case domain.IsNoOp(msg.Err):
		a.statusbar.Clear()
		return nil
	case msg.Err != nil:
		a.fail(msg.Err)
		return nil
	}

	a.statusbar.Clear()
	a.searchView.SetBatch(msg.Batch)
	if a.ports.Controller.ActiveView() == domain.ViewSearch {
		a.statusbar.SetView(domain.ViewSearch)
		a.statusbar.SetCounts(len(a.searchView.Items()), a.searchView.Filtered())
	}
	return a.fillCmd()
}

func (a *App) requestScroll() tea.Cmd {
	if a.scrolling || !a.ports.Controller.ScrollArmed() {
		return nil
	}
	a.scrolling = true
	ctx := a.ctx
	ctrl := a.ports.Controller
	return func() tea.Msg {
		res, err := ctrl.Scroll(ctx)
		return messages.ScrollCompleted{Result: res, Err: err}
	}
}

func (a *App) handleScrollCompleted(msg messages.ScrollCompleted) tea.Cmd {
	a.scrolling = false
	if msg.Err != nil {
		a.fail(msg.Err)
		return nil
	}
	res := msg.Result
	if res.Skipped || res.View != a.ports.Controller.ActiveView() {
		return nil
	}

	switch res.View {
	case domain.ViewHistory:
		a.historyView.Append(res)
		a.statusbar.SetCounts(len(a.historyView.Items()), a.historyView.Filtered())
	case domain.ViewSearch:
		a.searchView.Append(res)
		a.statusbar.SetCounts(len(a.searchView.Items()), a.searchView.Filtered())
	}
	return a.fillCmd()
}

func (a *App) play(v domain.Video) tea.Cmd {
	ctx := a.ctx
	ctrl := a.ports.Controller
	return func() tea.Msg {
		return messages.PlaybackStarted{Video: v, Err: ctrl.Select(ctx, v)}
	}
}

func (a *App) handlePlayerEvent(ev domain.PlayerEvent) tea.Cmd {
	ctx := a.ctx
	ctrl := a.ports.Controller
	return func() tea.Msg {
		res, handled, err := ctrl.HandlePlayerEvent(ctx, ev)
		return messages.AdvanceCompleted{Event: ev, Result: res, Handled: handled, Err: err}
	}
}

func (a *App) handleAdvanceCompleted(msg messages.AdvanceCompleted) {
	defer a.syncPlayer()
	if !msg.Handled {
		return
	}
	switch {
	case domain.IsNoOp(msg.Err):
		return
	case msg.Err != nil:
		a.playerbar.SetNotice("autoplay failed: " + describeError(msg.Err))
		return
	}

	var notices []string
	if msg.Event.Kind == domain.PlayerError {
		notices = append(notices, NoticeSkipped)
	}
	switch {
	case msg.Result.Stalled:
		notices = append(notices, NoticeStalled)
	case msg.Result.Restarted:
		notices = append(notices, NoticeRestarted)
	}
	a.playerbar.SetNotice(strings.Join(notices, "; "))
}

// skip treats the current video as finished.
func (a *App) skip() tea.Cmd {
	cur := a.ports.Playback.Current()
	if a.ports.Playback.State() != domain.PlaybackPlaying || !cur.Valid() {
		a.playerbar.SetNotice(NoticeIdle)
		return nil
	}
	return a.handlePlayerEvent(domain.PlayerEvent{Kind: domain.PlayerEnded, VideoID: cur.ID})
}

func (a *App) closePlayer() tea.Cmd {
	ctrl := a.ports.Controller
	return func() tea.Msg {
		return messages.PlaybackClosed{Err: ctrl.Close()}
	}
}

func (a *App) removeHistory(id string) tea.Cmd {
	ctrl := a.ports.Controller
	return func() tea.Msg {
		return messages.HistoryRemoved{ID: id, Err: ctrl.RemoveFromHistory(id)}
	}
}

func (a *App) saveAPIKey(key string) tea.Cmd {
	settings := a.ports.Settings
	return func() tea.Msg {
		return messages.SettingsSaved{Key: domain.KeyAPIKey, Err: settings.SetAPIKey(key)}
	}
}

func (a *App) saveKeywords(keywords string) tea.Cmd {
	settings := a.ports.Settings
	return func() tea.Msg {
		return messages.SettingsSaved{Key: domain.KeyFilterKeywords, Err: settings.SetKeywords(keywords)}
	}
}

func (a *App) handleSettingsSaved(msg messages.SettingsSaved) {
	switch {
	case msg.Key == domain.KeyAPIKey && errors.Is(msg.Err, domain.ErrInvalidInput):
		a.configView.SetMessage(config.MsgInvalidKey, true)
	case msg.Err != nil:
		a.configView.SetMessage(describeError(msg.Err), true)
	case msg.Key == domain.KeyAPIKey:
		a.configView.KeySaved()
	case msg.Key == domain.KeyFilterKeywords:
		a.configView.SetMessage(config.MsgKeywordsSaved, false)
	}
}

func (a *App) toggleTheme() tea.Cmd {
	settings := a.ports.Settings
	return func() tea.Msg {
		next, err := settings.ToggleTheme()
		return messages.ThemeToggled{Theme: next, Err: err}
	}
}

func (a *App) handleConfigChanged(c domain.ConfigChange) tea.Cmd {
	logger.Debug("tui: config change key=%q source=%s", c.Key, c.Source)

	if c.Unscoped() || c.Key == domain.KeyTheme {
		a.applyTheme(a.ports.Settings.Theme())
	}
	if c.AffectsFilter() {
		a.configView.SetKeywords(a.ports.Settings.Keywords())
		if a.ports.Filter != nil {
			kept, removed := a.ports.Filter.Apply(a.searchView.Items())
			if removed > 0 {
				a.searchView.Refilter(kept, removed)
			}
		}
	}
	if c.Unscoped() || c.Key == domain.KeyAPIKey {
		// Refresh the key status line on the config view.
		if a.ports.Controller.ActiveView() == domain.ViewConfig && !a.configView.Capturing() {
			return a.showView(domain.ViewTransition{To: domain.ViewConfig})
		}
	}
	if c.AffectsHistory() {
		return a.refreshHistoryIfDirty()
	}
	return nil
}

// refreshHistoryIfDirty re-renders the history view when it is showing
// entries that changed since it was rendered.
func (a *App) refreshHistoryIfDirty() tea.Cmd {
	if !a.ports.Controller.HistoryDirty() {
		return nil
	}
	if a.ports.Controller.ActiveView() != domain.ViewHistory {
		return nil
	}
	return a.switchTo(domain.ViewHistory)
}

func (a *App) applyTheme(t domain.Theme) {
	if a.styles.Theme().Name == t {
		return
	}
	s := styles.ForTheme(t)
	a.styles = s
	a.historyView.SetStyles(s)
	a.searchView.SetStyles(s)
	a.configView.SetStyles(s)
	a.statusbar.SetStyles(s)
	a.playerbar.SetStyles(s)
}

func (a *App) syncPlayer() {
	pb := a.ports.Playback
	a.playerbar.SetPlayback(pb.State(), pb.Current(), len(pb.Watched()))
}

func (a *App) waitForPlayerEvent() tea.Cmd {
	events := a.ports.Playback.Events()
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return messages.PlayerEventReceived{Event: ev}
	}
}

func (a *App) waitForConfigChange() tea.Cmd {
	changes := a.changes
	return func() tea.Msg {
		return messages.ConfigChanged{Change: <-changes}
	}
}

func (a *App) quit() tea.Cmd {
	if err := a.ports.Controller.Close(); err != nil {
		logger.Warn("tui: close playback: %v", err)
	}
	return tea.Quit
}

func (a *App) fail(err error) {
	a.err = err
	a.statusbar.Fail(describeError(err))
}

// describeError turns an error into the text shown to the user.
func describeError(err error) string {
	var apiErr *domain.APIError
	switch {
	case errors.As(err, &apiErr):
		return fmt.Sprintf("API error: %s. Check your key and quota.", apiErr.Message)
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests, try again shortly."
	case errors.Is(err, domain.ErrTransport):
		return fmt.Sprintf("Network error: %v.", err)
	case errors.Is(err, domain.ErrAPIKeyMissing):
		return "Set your YouTube API key to search"
	default:
		return err.Error()
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.ports.Controller.ActiveView() {
	case domain.ViewHistory:
		body = a.historyView.View()
	case domain.ViewSearch:
		body = a.searchView.View()
	case domain.ViewConfig:
		body = a.configView.View()
	}

	bodyHeight := a.height - chrome
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderTabs(),
		"",
		body,
		a.playerbar.View(),
		a.statusbar.View(),
	)
}

func (a *App) renderTabs() string {
	tabs := []struct {
		view  domain.View
		label string
	}{
		{domain.ViewHistory, "1 History"},
		{domain.ViewSearch, "2 Search"},
		{domain.ViewConfig, "3 Config"},
	}

	active := a.ports.Controller.ActiveView()
	rendered := make([]string, 0, len(tabs)+1)
	rendered = append(rendered, a.styles.Title.Render("clipseek "))
	for _, t := range tabs {
		if t.view == active {
			rendered = append(rendered, a.styles.ActiveTab.Render(t.label))
		} else {
			rendered = append(rendered, a.styles.Tab.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && a.ctx.Err() != nil {
		err = nil
	}
	if cerr := a.ports.Controller.Close(); cerr != nil {
		logger.Warn("tui: close playback: %v", cerr)
	}
	return err
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	bodyHeight := height - chrome
	a.historyView.SetDimensions(width, bodyHeight)
	a.searchView.SetDimensions(width, bodyHeight)
	a.configView.SetDimensions(width, bodyHeight)
	a.statusbar.SetWidth(width)
	a.playerbar.SetWidth(width)
}
