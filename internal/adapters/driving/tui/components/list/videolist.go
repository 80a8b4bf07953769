// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// VideoList displays videos in a navigable list.
type VideoList struct {
	title       string
	placeholder string
	items       []domain.Video
	selected    int
	styles      *styles.Styles
	width       int
	height      int
}

// NewVideoList creates a new video list component.
func NewVideoList(s *styles.Styles, title string) *VideoList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &VideoList{
		title:       title,
		placeholder: "No videos",
		styles:      s,
		width:       80,
		height:      10,
	}
}

// Init initialises the list.
func (l *VideoList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *VideoList) Update(msg tea.Msg) (*VideoList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.selected = 0
		case "end", "G":
			if len(l.items) > 0 {
				l.selected = len(l.items) - 1
			}
		}
	}
	return l, nil
}

// View renders the list.
func (l *VideoList) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render(l.placeholder)
	}

	lines := make([]string, 0, len(l.items)*2+2)
	header := l.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", l.title, len(l.items)))
	lines = append(lines, header, "")

	// Each entry takes two lines.
	visible := (l.height - 2) / 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.items) {
		end = len(l.items)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i, l.items[i]))
	}

	return strings.Join(lines, "\n")
}

func (l *VideoList) renderItem(index int, v domain.Video) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	title := v.Title
	if title == "" {
		title = "(Untitled)"
	}
	title = truncate(title, l.width-4)

	var titleLine string
	if index == l.selected {
		titleLine = l.styles.Selected.Render(indicator + title)
	} else {
		titleLine = l.styles.Normal.Render(indicator + title)
	}

	meta := v.ID
	if v.ChannelTitle != "" {
		meta = v.ChannelTitle + " · " + v.ID
	}
	return titleLine + "\n" + l.styles.Muted.Render("    "+truncate(meta, l.width-6))
}

func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// SetItems replaces the list contents and resets the selection.
func (l *VideoList) SetItems(items []domain.Video) {
	l.items = append([]domain.Video(nil), items...)
	l.selected = 0
}

// Append adds items to the end of the list, keeping the selection.
func (l *VideoList) Append(items []domain.Video) {
	l.items = append(l.items, items...)
}

// Items returns the current items.
func (l *VideoList) Items() []domain.Video {
	return l.items
}

// Remove deletes the entry with the given ID.
func (l *VideoList) Remove(id string) {
	for i, v := range l.items {
		if v.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	if l.selected >= len(l.items) && l.selected > 0 {
		l.selected = len(l.items) - 1
	}
}

// Selected returns the index of the selected entry.
func (l *VideoList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *VideoList) SetSelected(index int) {
	if index >= 0 && index < len(l.items) {
		l.selected = index
	}
}

// SelectedVideo returns the selected video, or nil if the list is empty.
func (l *VideoList) SelectedVideo() *domain.Video {
	if len(l.items) == 0 || l.selected < 0 || l.selected >= len(l.items) {
		return nil
	}
	return &l.items[l.selected]
}

// MoveUp moves selection up.
func (l *VideoList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *VideoList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// NearEnd reports whether the selection is within threshold rows of the
// last entry. An empty list is never near its end.
func (l *VideoList) NearEnd(threshold int) bool {
	if len(l.items) == 0 {
		return false
	}
	if threshold < 0 {
		threshold = 0
	}
	return len(l.items)-1-l.selected <= threshold
}

// SetPlaceholder sets the text shown when the list is empty.
func (l *VideoList) SetPlaceholder(text string) {
	l.placeholder = text
}

// Placeholder returns the empty-list text.
func (l *VideoList) Placeholder() string {
	return l.placeholder
}

// SetStyles replaces the styles, for theme switches.
func (l *VideoList) SetStyles(s *styles.Styles) {
	if s != nil {
		l.styles = s
	}
}

// SetDimensions sets the component dimensions.
func (l *VideoList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of entries.
func (l *VideoList) Count() int {
	return len(l.items)
}

// IsEmpty returns whether the list is empty.
func (l *VideoList) IsEmpty() bool {
	return len(l.items) == 0
}
