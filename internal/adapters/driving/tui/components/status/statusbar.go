// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
	StateInfo    State = "info"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	view     domain.View
	state    State
	message  string
	count    int
	filtered int
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Render(left + strings.Repeat(" ", padding) + right)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		if s.message != "" {
			return s.styles.Muted.Render(s.message)
		}
		return s.styles.Muted.Render("Loading...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateInfo:
		return s.styles.Success.Render(s.message)
	case StateReady:
	}

	parts := make([]string, 0, 2)
	if s.count > 0 {
		parts = append(parts, s.styles.Normal.Render(fmt.Sprintf("%d videos", s.count)))
	}
	if s.filtered > 0 {
		parts = append(parts, s.styles.Warning.Render(FilteredNotice(s.filtered)))
	}
	if len(parts) == 0 {
		return s.styles.Muted.Render("Ready")
	}
	return strings.Join(parts, s.styles.Muted.Render(" · "))
}

// FilteredNotice describes how many videos the keyword filter hid.
func FilteredNotice(n int) string {
	if n == 1 {
		return "1 video filtered by your keywords"
	}
	return fmt.Sprintf("%d videos filtered by your keywords", n)
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.view {
	case domain.ViewHistory:
		bindings = s.keymap.HistoryHelp()
	case domain.ViewSearch:
		bindings = s.keymap.ListHelp()
	case domain.ViewConfig:
		bindings = s.keymap.ConfigHelp()
	}
	bindings = append(bindings, s.keymap.Quit)

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " | "))
}

// SetView selects the keybinding hints for view.
func (s *Bar) SetView(view domain.View) {
	s.view = view
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// Info shows a transient confirmation.
func (s *Bar) Info(message string) {
	s.state = StateInfo
	s.message = message
}

// Fail shows an error message.
func (s *Bar) Fail(message string) {
	s.state = StateError
	s.message = message
}

// SetCounts sets the number of shown and filtered videos.
func (s *Bar) SetCounts(count, filtered int) {
	s.count = count
	s.filtered = filtered
}

// Count returns the number of shown videos.
func (s *Bar) Count() int {
	return s.count
}

// Filtered returns the number of filtered videos.
func (s *Bar) Filtered() int {
	return s.filtered
}

// SetStyles replaces the styles, for theme switches.
func (s *Bar) SetStyles(st *styles.Styles) {
	if st != nil {
		s.styles = st
	}
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the state and message, keeping the counts.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
