package services

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// Ensure Controller implements the interface.
var _ driving.Controller = (*Controller)(nil)

// Controller owns the state of one interactive session and routes user
// intents and player events to the services.
type Controller struct {
	settings driving.SettingsService
	search   driving.SearchService
	history  driving.HistoryService
	playback driving.PlaybackService
	router   *ViewRouter
	scroll   *ScrollDriver

	mu           sync.Mutex
	historyDirty bool
}

// NewController wires a router and scroll driver around the services.
// The session opens on the config view when no API key is stored and on
// the history view otherwise.
func NewController(
	settings driving.SettingsService,
	filter driving.FilterService,
	history driving.HistoryService,
	search driving.SearchService,
	playback driving.PlaybackService,
	historyBatchSize int,
) *Controller {
	initial := domain.ViewHistory
	if settings.APIKey() == "" {
		initial = domain.ViewConfig
	}

	router := NewViewRouter(initial)
	scroll := NewScrollDriver(router, search, history, filter, historyBatchSize)
	router.SetScrollDriver(scroll)
	if initial == domain.ViewHistory {
		scroll.Rearm(domain.ViewHistory)
	}

	c := &Controller{
		settings: settings,
		search:   search,
		history:  history,
		playback: playback,
		router:   router,
		scroll:   scroll,
	}
	settings.Subscribe(c.configChanged)
	return c
}

// Search starts a new query. Without an API key the config view is shown
// and no request is made.
func (c *Controller) Search(ctx context.Context, text string) (domain.SearchBatch, error) {
	if strings.TrimSpace(text) == "" {
		return domain.SearchBatch{}, domain.ErrEmptyQuery
	}
	if c.settings.APIKey() == "" {
		if _, err := c.router.SwitchTo(domain.ViewConfig); err != nil {
			return domain.SearchBatch{}, err
		}
		return domain.SearchBatch{}, domain.ErrAPIKeyMissing
	}

	if _, err := c.router.SwitchTo(domain.ViewSearch); err != nil {
		return domain.SearchBatch{}, err
	}
	batch, err := c.search.StartQuery(ctx, text)
	if err != nil {
		return batch, err
	}
	if c.router.Active() == domain.ViewSearch {
		c.scroll.Rearm(domain.ViewSearch)
	}
	return batch, nil
}

// Select plays v.
func (c *Controller) Select(ctx context.Context, v domain.Video) error {
	err := c.playback.Play(ctx, v)
	c.markHistoryDirty()
	return err
}

// HandlePlayerEvent reacts to player lifecycle events for the loaded video.
func (c *Controller) HandlePlayerEvent(
	ctx context.Context, ev domain.PlayerEvent,
) (domain.AdvanceResult, bool, error) {
	cur := c.playback.Current()
	if ev.VideoID != "" && ev.VideoID != cur.ID {
		logger.Debug("Ignoring %s event for %s, current is %s", ev.Kind, ev.VideoID, cur.ID)
		return domain.AdvanceResult{}, false, nil
	}

	var (
		res domain.AdvanceResult
		err error
	)
	switch ev.Kind {
	case domain.PlayerEnded:
		res, err = c.playback.OnEnded(ctx)
	case domain.PlayerError:
		res, err = c.playback.OnError(ctx, ev.Code)
	default:
		logger.Debug("Player %s for %s", ev.Kind, ev.VideoID)
		return domain.AdvanceResult{}, false, nil
	}
	if res.Video.Valid() {
		c.markHistoryDirty()
	}
	return res, true, err
}

// RemoveFromHistory deletes the entry with the given id and shifts the
// history scroll position so no unread entry is skipped.
func (c *Controller) RemoveFromHistory(id string) error {
	index := -1
	for i, v := range c.history.All() {
		if v.ID == id {
			index = i
			break
		}
	}
	if err := c.history.Remove(id); err != nil {
		return err
	}
	c.scroll.HistoryEntryRemoved(index)
	return nil
}

// SwitchTo changes the active view.
func (c *Controller) SwitchTo(view domain.View) (domain.ViewTransition, error) {
	t, err := c.router.SwitchTo(view)
	if err == nil && view == domain.ViewHistory {
		c.mu.Lock()
		c.historyDirty = false
		c.mu.Unlock()
	}
	return t, err
}

// Scroll extends the active data view.
func (c *Controller) Scroll(ctx context.Context) (domain.ScrollResult, error) {
	return c.scroll.Trigger(ctx)
}

// ActiveView returns the active view.
func (c *Controller) ActiveView() domain.View {
	return c.router.Active()
}

// ScrollArmed reports whether scrolling the active view can load more.
func (c *Controller) ScrollArmed() bool {
	return c.scroll.Armed()
}

// HistoryDirty reports whether the rendered history is stale and clears the flag.
func (c *Controller) HistoryDirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	dirty := c.historyDirty
	c.historyDirty = false
	return dirty
}

// Close ends playback.
func (c *Controller) Close() error {
	return c.playback.Close()
}

func (c *Controller) configChanged(change domain.ConfigChange) {
	if change.AffectsHistory() {
		c.markHistoryDirty()
	}
}

func (c *Controller) markHistoryDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.historyDirty = true
}
