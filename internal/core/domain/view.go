package domain

import "fmt"

// View identifies one of the mutually exclusive application views.
type View int

// Application views.
const (
	ViewHistory View = iota
	ViewSearch
	ViewConfig
)

// String returns the view name.
func (v View) String() string {
	switch v {
	case ViewHistory:
		return "history"
	case ViewSearch:
		return "search"
	case ViewConfig:
		return "config"
	default:
		return "unknown"
	}
}

// IsDataView reports whether the view renders a scrollable list.
func (v View) IsDataView() bool {
	return v == ViewHistory || v == ViewSearch
}

// ParseView converts a view name into a View.
func ParseView(s string) (View, error) {
	switch s {
	case "history":
		return ViewHistory, nil
	case "search":
		return ViewSearch, nil
	case "config":
		return ViewConfig, nil
	default:
		return ViewHistory, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, s)
	}
}

// ViewTransition is the outcome of a view switch.
type ViewTransition struct {
	From View
	To   View

	// History holds the first filtered history batch when switching to the
	// history view.
	History []Video

	// FilteredCount is the number of history entries hidden by the filter.
	FilteredCount int

	// Exhausted is true when the first history batch covers everything.
	Exhausted bool
}

// ScrollResult is the outcome of one infinite-scroll trigger.
type ScrollResult struct {
	// View is the view that was extended.
	View View

	// Items are the newly rendered videos, already filtered.
	Items []Video

	// FilteredCount is the number of videos hidden in this step.
	FilteredCount int

	// Exhausted is true when the view has nothing more to load.
	Exhausted bool

	// Skipped is true when the trigger did nothing.
	Skipped bool
}
