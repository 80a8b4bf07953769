// Package search provides the video search view for the TUI.
package search

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// Placeholders shown when a query rendered nothing.
const (
	PlaceholderIdle     = "Type a query and press enter."
	PlaceholderNoMatch  = "No videos matched your search."
	placeholderFiltered = "%d videos were filtered from the results. Try another search."
)

// View is the search input plus the accumulated result list.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	input      *input.Field
	list       *list.VideoList
	threshold  int
	query      string
	filtered   int
	exhausted  bool
	focusInput bool
}

// NewView creates a search view with the input focused.
func NewView(s *styles.Styles, km *keymap.KeyMap, threshold int) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	l := list.NewVideoList(s, "Results")
	l.SetPlaceholder(PlaceholderIdle)

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		list:       l,
		threshold:  threshold,
		exhausted:  true,
		focusInput: true,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	if v.focusInput {
		return v.handleInputKey(keyMsg)
	}

	if keymap.Matches(keyMsg.String(), v.keymap.Play) {
		if sel := v.list.SelectedVideo(); sel != nil {
			video := *sel
			return v, func() tea.Msg { return messages.VideoSelected{Video: video} }
		}
		return v, nil
	}

	v.list, _ = v.list.Update(msg)
	return v, v.scrollCmd()
}

func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // only submit and leave are special
	switch msg.Type {
	case tea.KeyEnter:
		query := strings.TrimSpace(v.input.Value())
		if query == "" {
			return v, nil
		}
		v.focusInput = false
		v.input.Blur()
		return v, func() tea.Msg { return messages.SearchRequested{Query: query} }
	case tea.KeyEsc:
		v.focusInput = false
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) scrollCmd() tea.Cmd {
	if v.exhausted || !v.list.NearEnd(v.threshold) {
		return nil
	}
	return func() tea.Msg { return messages.ScrollRequested{} }
}

// View renders the input above the results.
func (v *View) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, v.input.View(), "", v.list.View())
}

// FocusInput moves focus to the query input.
func (v *View) FocusInput() tea.Cmd {
	v.focusInput = true
	return v.input.Focus()
}

// Capturing reports whether the input is consuming keystrokes.
func (v *View) Capturing() bool {
	return v.focusInput
}

// SetBatch renders a new query's first page or an appended page.
func (v *View) SetBatch(b domain.SearchBatch) {
	if !b.Append {
		v.query = b.Query
		v.filtered = 0
		v.list.SetItems(b.Items)
	} else {
		v.list.Append(b.Items)
	}
	v.filtered += b.FilteredCount
	v.exhausted = b.Exhausted
	v.updatePlaceholder()
}

// Append adds a page loaded by the scroll driver.
func (v *View) Append(r domain.ScrollResult) {
	v.list.Append(r.Items)
	v.filtered += r.FilteredCount
	if r.Exhausted {
		v.exhausted = true
	}
	v.updatePlaceholder()
}

// Refilter replaces the rendered results after the keywords changed.
func (v *View) Refilter(kept []domain.Video, removed int) {
	selected := v.list.Selected()
	v.list.SetItems(kept)
	v.list.SetSelected(selected)
	v.filtered += removed
	v.updatePlaceholder()
}

func (v *View) updatePlaceholder() {
	switch {
	case v.query == "":
		v.list.SetPlaceholder(PlaceholderIdle)
	case v.filtered > 0:
		v.list.SetPlaceholder(fmt.Sprintf(placeholderFiltered, v.filtered))
	default:
		v.list.SetPlaceholder(PlaceholderNoMatch)
	}
}

// NeedsMore reports whether the rendered list is short enough that the
// next page should be loaded without waiting for navigation.
func (v *View) NeedsMore() bool {
	return !v.exhausted && (v.list.IsEmpty() || v.list.NearEnd(v.threshold))
}

// Query returns the query the results belong to.
func (v *View) Query() string {
	return v.query
}

// Items returns the rendered results.
func (v *View) Items() []domain.Video {
	return v.list.Items()
}

// Filtered returns how many results the keyword filter hid.
func (v *View) Filtered() int {
	return v.filtered
}

// Placeholder returns the text shown for an empty list.
func (v *View) Placeholder() string {
	return v.list.Placeholder()
}

// SetStyles replaces the styles, for theme switches.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.input.SetStyles(s)
	v.list.SetStyles(s)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.input.SetWidth(width)
	listHeight := height - 4
	if listHeight < 4 {
		listHeight = 4
	}
	v.list.SetDimensions(width, listHeight)
}
