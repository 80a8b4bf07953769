// Package history provides the viewing history view for the TUI.
package history

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// Placeholders shown when nothing is rendered.
const (
	PlaceholderEmpty    = "Your history will appear here after you watch a video."
	PlaceholderFiltered = "Your history is empty or all videos were filtered by your keywords."
)

// View renders the viewing history, most recent first.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.VideoList
	threshold int
	filtered  int
	exhausted bool
}

// NewView creates a history view. threshold is how many rows from the end
// of the list a scroll request is emitted.
func NewView(s *styles.Styles, km *keymap.KeyMap, threshold int) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	l := list.NewVideoList(s, "History")
	l.SetPlaceholder(PlaceholderEmpty)

	return &View{
		styles:    s,
		keymap:    km,
		list:      l,
		threshold: threshold,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles keys for the history list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case keymap.Matches(keyMsg.String(), v.keymap.Play):
		if sel := v.list.SelectedVideo(); sel != nil {
			video := *sel
			return v, func() tea.Msg { return messages.VideoSelected{Video: video} }
		}
		return v, nil

	case keymap.Matches(keyMsg.String(), v.keymap.Remove):
		if sel := v.list.SelectedVideo(); sel != nil {
			id := sel.ID
			return v, func() tea.Msg { return messages.HistoryRemoveRequested{ID: id} }
		}
		return v, nil
	}

	v.list, _ = v.list.Update(msg)
	return v, v.scrollCmd()
}

// scrollCmd requests more entries once the selection nears the end.
func (v *View) scrollCmd() tea.Cmd {
	if v.exhausted || !v.list.NearEnd(v.threshold) {
		return nil
	}
	return func() tea.Msg { return messages.ScrollRequested{} }
}

// View renders the history list.
func (v *View) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, v.list.View())
}

// Reset shows the first batch after a switch to the history view.
func (v *View) Reset(t domain.ViewTransition) {
	v.filtered = t.FilteredCount
	v.exhausted = t.Exhausted
	v.list.SetItems(t.History)
	v.updatePlaceholder()
}

// Append adds a batch loaded by the scroll driver.
func (v *View) Append(r domain.ScrollResult) {
	v.filtered += r.FilteredCount
	v.exhausted = r.Exhausted
	v.list.Append(r.Items)
	v.updatePlaceholder()
}

// Remove drops an entry from the rendered list.
func (v *View) Remove(id string) {
	v.list.Remove(id)
	v.updatePlaceholder()
}

func (v *View) updatePlaceholder() {
	if v.filtered > 0 {
		v.list.SetPlaceholder(PlaceholderFiltered)
	} else {
		v.list.SetPlaceholder(PlaceholderEmpty)
	}
}

// NeedsMore reports whether the rendered list is short enough that the
// next batch should be loaded without waiting for navigation.
func (v *View) NeedsMore() bool {
	return !v.exhausted && (v.list.IsEmpty() || v.list.NearEnd(v.threshold))
}

// Items returns the rendered entries.
func (v *View) Items() []domain.Video {
	return v.list.Items()
}

// Filtered returns how many entries the keyword filter hid so far.
func (v *View) Filtered() int {
	return v.filtered
}

// Placeholder returns the text shown for an empty list.
func (v *View) Placeholder() string {
	return v.list.Placeholder()
}

// Capturing reports whether the view consumes text input.
func (v *View) Capturing() bool {
	return false
}

// SetStyles replaces the styles, for theme switches.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.list.SetStyles(s)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.list.SetDimensions(width, height)
}
