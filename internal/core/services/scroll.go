package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// Ensure ScrollDriver implements the interface.
var _ driving.ScrollDriver = (*ScrollDriver)(nil)

// ScrollDriver loads the next batch of whichever data view is active when
// the interface reports that the end of the list is near. Each view has
// its own trigger; a trigger disarms itself once its view is exhausted.
type ScrollDriver struct {
	views     driving.ViewRouter
	search    driving.SearchService
	history   driving.HistoryService
	filter    driving.FilterService
	batchSize int

	mu     sync.Mutex
	armed  map[domain.View]bool
	cursor domain.HistoryCursor
}

// NewScrollDriver creates a scroll driver for the views tracked by views.
func NewScrollDriver(
	views driving.ViewRouter,
	search driving.SearchService,
	history driving.HistoryService,
	filter driving.FilterService,
	batchSize int,
) *ScrollDriver {
	if batchSize <= 0 {
		batchSize = domain.DefaultHistoryBatchSize
	}
	return &ScrollDriver{
		views:     views,
		search:    search,
		history:   history,
		filter:    filter,
		batchSize: batchSize,
		armed:     make(map[domain.View]bool),
	}
}

// Trigger extends the active view by one batch.
func (d *ScrollDriver) Trigger(ctx context.Context) (domain.ScrollResult, error) {
	view := d.views.Active()

	d.mu.Lock()
	armed := view.IsDataView() && d.armed[view]
	d.mu.Unlock()
	if !armed {
		return domain.ScrollResult{View: view, Skipped: true}, nil
	}

	if view == domain.ViewHistory {
		return d.historyStep(), nil
	}
	return d.searchStep(ctx)
}

// Rearm re-enables the trigger for view. The history trigger also rewinds
// its cursor; the search trigger is armed only if another page exists.
func (d *ScrollDriver) Rearm(view domain.View) {
	switch view {
	case domain.ViewHistory:
		d.mu.Lock()
		d.history.ClearCursor(&d.cursor)
		d.armed[domain.ViewHistory] = true
		d.mu.Unlock()
	case domain.ViewSearch:
		more := d.search.Cursor().HasMore()
		d.mu.Lock()
		d.armed[domain.ViewSearch] = more
		d.mu.Unlock()
	}
}

// Disarm stops every trigger.
func (d *ScrollDriver) Disarm() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for v := range d.armed {
		d.armed[v] = false
	}
}

// Armed reports whether the active view's trigger is armed.
func (d *ScrollDriver) Armed() bool {
	view := d.views.Active()
	d.mu.Lock()
	defer d.mu.Unlock()
	return view.IsDataView() && d.armed[view]
}

// HistoryCursor returns a snapshot of the history cursor.
func (d *ScrollDriver) HistoryCursor() domain.HistoryCursor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cursor
}

func (d *ScrollDriver) historyStep() domain.ScrollResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	items, exhausted := d.history.ReadBatch(d.cursor.Offset, d.batchSize)
	d.cursor.Advance(d.batchSize, exhausted)
	if exhausted {
		d.armed[domain.ViewHistory] = false
	}

	kept, filtered := d.filter.Apply(items)
	logger.Debug("History batch: %d shown, %d filtered, exhausted=%t", len(kept), filtered, exhausted)
	return domain.ScrollResult{
		View:          domain.ViewHistory,
		Items:         kept,
		FilteredCount: filtered,
		Exhausted:     exhausted,
	}
}

func (d *ScrollDriver) searchStep(ctx context.Context) (domain.ScrollResult, error) {
	batch, err := d.search.LoadMore(ctx)
	switch {
	case errors.Is(err, domain.ErrExhausted):
		d.setArmed(domain.ViewSearch, false)
		return domain.ScrollResult{View: domain.ViewSearch, Exhausted: true, Skipped: true}, nil
	case domain.IsNoOp(err):
		return domain.ScrollResult{View: domain.ViewSearch, Skipped: true}, nil
	case err != nil:
		return domain.ScrollResult{View: domain.ViewSearch}, err
	}

	if batch.Exhausted {
		d.setArmed(domain.ViewSearch, false)
	}
	return domain.ScrollResult{
		View:          domain.ViewSearch,
		Items:         batch.Items,
		FilteredCount: batch.FilteredCount,
		Exhausted:     batch.Exhausted,
	}, nil
}

// HistoryEntryRemoved keeps the history cursor aligned after the entry at
// index was removed from the store.
func (d *ScrollDriver) HistoryEntryRemoved(index int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor.Removed(index)
}

func (d *ScrollDriver) setArmed(view domain.View, armed bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.armed[view] = armed
}
