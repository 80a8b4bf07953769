package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
	assert.NoError(t, store.Save())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{
		"history.max_items":       int64(30),
		"api.requests_per_second": 1.5,
		"api.burst":               float64(6),
		"player.command":          "vlc",
		"player.args":             []any{"--fullscreen", 3},
		"scroll.enabled":          true,
	})

	assert.Equal(t, 30, store.GetInt("history.max_items"))
	assert.InDelta(t, 1.5, store.GetFloat("api.requests_per_second"), 0.0001)
	assert.Equal(t, 6, store.GetInt("api.burst"))
	assert.Equal(t, "vlc", store.GetString("player.command"))
	assert.Equal(t, []string{"--fullscreen"}, store.GetStringSlice("player.args"))
	assert.True(t, store.GetBool("scroll.enabled"))
}

func TestConfigStore_WrongTypesReturnZero(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{
		"history.max_items": "many",
		"player.command":    42,
	})

	assert.Zero(t, store.GetInt("history.max_items"))
	assert.Empty(t, store.GetString("player.command"))
	assert.Nil(t, store.GetStringSlice("player.command"))
	assert.False(t, store.GetBool("missing"))
	assert.Zero(t, store.GetFloat("missing"))
}

func TestConfigStore_Set(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("search.page_size", 10))

	val, ok := store.Get("search.page_size")
	assert.True(t, ok)
	assert.Equal(t, 10, val)
}
