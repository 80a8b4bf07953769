package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui/styles"
)

func TestNewSearchInput(t *testing.T) {
	f := NewSearchInput(styles.DefaultStyles())

	require.NotNil(t, f)
	assert.Empty(t, f.Value())
	assert.True(t, f.Focused())
	assert.False(t, f.Secret())
	assert.Contains(t, f.View(), "Search")
}

func TestNewField_Unfocused(t *testing.T) {
	f := NewField(nil, "Keywords: ", "prank, reaction")

	require.NotNil(t, f.styles)
	assert.False(t, f.Focused())
	assert.NotNil(t, f.Init())
}

func TestField_TypingUpdatesValue(t *testing.T) {
	f := NewSearchInput(nil)

	updated, _ := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c', 'a', 't'}})

	assert.Equal(t, f, updated)
	assert.Equal(t, "cat", f.Value())
}

func TestField_UnfocusedIgnoresTyping(t *testing.T) {
	f := NewField(nil, "Keywords: ", "")

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Empty(t, f.Value())
}

func TestNewSecretField_HidesValue(t *testing.T) {
	f := NewSecretField(nil, "API key: ", "")
	f.SetValue("AIzaSecret")

	assert.True(t, f.Secret())
	assert.Equal(t, "AIzaSecret", f.Value())
	assert.NotContains(t, f.View(), "AIzaSecret")
}

func TestField_FocusBlur(t *testing.T) {
	f := NewField(nil, "Keywords: ", "")

	f.Focus()
	assert.True(t, f.Focused())

	f.Blur()
	assert.False(t, f.Focused())
}

func TestField_SetWidth(t *testing.T) {
	f := NewSearchInput(nil)

	f.SetWidth(100)
	assert.Equal(t, 100, f.Width())

	f.SetWidth(5)
	assert.Equal(t, 20, f.textinput.Width)
}

func TestField_Reset(t *testing.T) {
	f := NewSearchInput(nil)
	f.SetValue("cats")

	f.Reset()

	assert.Empty(t, f.Value())
}
