// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back leaves a focused input.
	Back key.Binding

	// History, Search and Config switch views.
	History key.Binding
	Search  key.Binding
	Config  key.Binding

	// Theme toggles between the dark and light theme.
	Theme key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Play starts the selected video.
	Play key.Binding

	// Remove deletes the selected history entry.
	Remove key.Binding

	// ClosePlayer ends playback.
	ClosePlayer key.Binding

	// Next skips to a related video.
	Next key.Binding

	// NextField moves focus between config inputs.
	NextField key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		History: key.NewBinding(
			key.WithKeys("1", "h"),
			key.WithHelp("1/h", "history"),
		),
		Search: key.NewBinding(
			key.WithKeys("2", "/"),
			key.WithHelp("2//", "search"),
		),
		Config: key.NewBinding(
			key.WithKeys("3", "c"),
			key.WithHelp("3/c", "config"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		ClosePlayer: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
	}
}

// ShortHelp returns the bindings shown on every view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.History, k.Search, k.Config, k.Theme, k.Quit}
}

// ListHelp returns keybindings for the list views.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Play, k.Next, k.ClosePlayer}
}

// HistoryHelp returns keybindings for the history view.
func (k *KeyMap) HistoryHelp() []key.Binding {
	return []key.Binding{k.Play, k.Remove, k.Next, k.ClosePlayer}
}

// ConfigHelp returns keybindings for the config view.
func (k *KeyMap) ConfigHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Play, k.Back}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Play, k.Remove},
		{k.History, k.Search, k.Config, k.Theme},
		{k.Next, k.ClosePlayer, k.Back, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
