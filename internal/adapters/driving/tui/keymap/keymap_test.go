package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_ViewBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.ElementsMatch(t, []string{"1", "h"}, km.History.Keys())
	assert.ElementsMatch(t, []string{"2", "/"}, km.Search.Keys())
	assert.ElementsMatch(t, []string{"3", "c"}, km.Config.Keys())
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_PlaybackBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Play.Keys(), "enter")
	assert.Contains(t, km.ClosePlayer.Keys(), "x")
	assert.Contains(t, km.Next.Keys(), "n")
	assert.Contains(t, km.Remove.Keys(), "d")
	assert.Contains(t, km.Theme.Keys(), "t")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	require.Len(t, bindings, 5)
	assert.Equal(t, km.Quit, bindings[4])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 3)
	for _, group := range bindings {
		assert.Len(t, group, 4)
	}
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("/", km.Search))
	assert.True(t, Matches("k", km.Up))

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("down", km.Up))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Back", km.Back},
		{"History", km.History},
		{"Search", km.Search},
		{"Config", km.Config},
		{"Theme", km.Theme},
		{"Up", km.Up},
		{"Down", km.Down},
		{"Play", km.Play},
		{"Remove", km.Remove},
		{"ClosePlayer", km.ClosePlayer},
		{"Next", km.Next},
		{"NextField", km.NextField},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
			assert.NotEmpty(t, help.Desc, "binding should have help description")
		})
	}
}
