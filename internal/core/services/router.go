package services

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// Ensure ViewRouter implements the interface.
var _ driving.ViewRouter = (*ViewRouter)(nil)

// ViewRouter tracks the active view and resets per-view state on switches.
// The search session is never touched by a switch, so returning to the
// search view shows the accumulated results without refetching.
type ViewRouter struct {
	mu     sync.Mutex
	active domain.View
	scroll *ScrollDriver
}

// NewViewRouter creates a router starting at initial.
func NewViewRouter(initial domain.View) *ViewRouter {
	return &ViewRouter{active: initial}
}

// SetScrollDriver connects the scroll driver whose triggers the router
// arms and disarms.
func (r *ViewRouter) SetScrollDriver(d *ScrollDriver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scroll = d
}

// SwitchTo activates view.
func (r *ViewRouter) SwitchTo(view domain.View) (domain.ViewTransition, error) {
	switch view {
	case domain.ViewHistory, domain.ViewSearch, domain.ViewConfig:
	default:
		return domain.ViewTransition{}, fmt.Errorf("switch view: %w", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	from := r.active
	r.active = view
	scroll := r.scroll
	r.mu.Unlock()

	logger.Debug("View: %s -> %s", from, view)
	t := domain.ViewTransition{From: from, To: view}
	if scroll == nil {
		return t, nil
	}

	switch view {
	case domain.ViewConfig:
		scroll.Disarm()
	case domain.ViewSearch:
		scroll.Rearm(domain.ViewSearch)
	case domain.ViewHistory:
		scroll.Rearm(domain.ViewHistory)
		first := scroll.historyStep()
		t.History = first.Items
		t.FilteredCount = first.FilteredCount
		t.Exhausted = first.Exhausted
	}
	return t, nil
}

// Active returns the active view.
func (r *ViewRouter) Active() domain.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}
