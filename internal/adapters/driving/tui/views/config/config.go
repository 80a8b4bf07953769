// Package config provides the settings view for the TUI.
package config

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/styles"
)

// Feedback messages.
const (
	MsgKeySaved      = "API key saved"
	MsgInvalidKey    = "Please enter a valid key"
	MsgKeywordsSaved = "Filter keywords saved"
)

const (
	fieldAPIKey = iota
	fieldKeywords
	fieldCount
)

// View edits the API key and the filter keywords.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	fields   [fieldCount]*input.Field
	focus    int
	editing  bool
	hasKey   bool
	message  string
	msgError bool
}

// NewView creates the config view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles: s,
		keymap: km,
	}
	v.fields[fieldAPIKey] = input.NewSecretField(s, "API key:  ", "YouTube Data API v3 key")
	v.fields[fieldKeywords] = input.NewField(s, "Keywords: ", "comma separated, e.g. prank, reaction")
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.fields[v.focus].Init()
}

// Load fills the form from the stored settings and focuses the first field.
func (v *View) Load(hasKey bool, keywords string) tea.Cmd {
	v.hasKey = hasKey
	v.fields[fieldAPIKey].Reset()
	v.fields[fieldKeywords].SetValue(keywords)
	v.message = ""
	return v.focusField(fieldAPIKey)
}

// Update handles keys for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
		return v, cmd
	}

	if !v.editing {
		if keymap.Matches(keyMsg.String(), v.keymap.Play) || keymap.Matches(keyMsg.String(), v.keymap.NextField) {
			return v, v.focusField(v.focus)
		}
		return v, nil
	}

	switch {
	case keyMsg.Type == tea.KeyEsc:
		v.editing = false
		v.fields[v.focus].Blur()
		return v, nil

	case keyMsg.Type == tea.KeyTab:
		return v, v.focusField((v.focus + 1) % fieldCount)

	case keyMsg.Type == tea.KeyShiftTab:
		return v, v.focusField((v.focus + fieldCount - 1) % fieldCount)

	case keyMsg.Type == tea.KeyEnter:
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) submit() tea.Cmd {
	switch v.focus {
	case fieldAPIKey:
		key := strings.TrimSpace(v.fields[fieldAPIKey].Value())
		if key == "" {
			v.SetMessage(MsgInvalidKey, true)
			return nil
		}
		return func() tea.Msg { return messages.APIKeySubmitted{Key: key} }
	default:
		keywords := v.fields[fieldKeywords].Value()
		return func() tea.Msg { return messages.KeywordsSubmitted{Keywords: keywords} }
	}
}

func (v *View) focusField(i int) tea.Cmd {
	for j, f := range v.fields {
		if j != i {
			f.Blur()
		}
	}
	v.focus = i
	v.editing = true
	return v.fields[i].Focus()
}

// KeySaved records a stored key and clears the field.
func (v *View) KeySaved() {
	v.hasKey = true
	v.fields[fieldAPIKey].Reset()
	v.SetMessage(MsgKeySaved, false)
}

// SetKeywords shows keywords stored elsewhere, unless the user is typing them.
func (v *View) SetKeywords(keywords string) {
	if v.editing && v.focus == fieldKeywords {
		return
	}
	v.fields[fieldKeywords].SetValue(keywords)
}

// SetMessage shows feedback below the form.
func (v *View) SetMessage(text string, isError bool) {
	v.message = text
	v.msgError = isError
}

// Message returns the feedback line.
func (v *View) Message() string {
	return v.message
}

// Capturing reports whether a field is consuming keystrokes.
func (v *View) Capturing() bool {
	return v.editing
}

// View renders the form.
func (v *View) View() string {
	keyState := v.styles.Warning.Render("not set, searching is disabled")
	if v.hasKey {
		keyState = v.styles.Success.Render("saved")
	}

	lines := []string{
		v.styles.Subtitle.Render("Settings"),
		"",
		v.fields[fieldAPIKey].View(),
		v.styles.Muted.Render("  status: ") + keyState,
		"",
		v.fields[fieldKeywords].View(),
		v.styles.Muted.Render("  videos whose title or description contain a keyword are hidden"),
	}
	if v.message != "" {
		style := v.styles.Success
		if v.msgError {
			style = v.styles.Error
		}
		lines = append(lines, "", style.Render(v.message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SetStyles replaces the styles, for theme switches.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	for _, f := range v.fields {
		f.SetStyles(s)
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, _ int) {
	for _, f := range v.fields {
		f.SetWidth(width)
	}
}
