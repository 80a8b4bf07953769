package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

func withKeyInput(t *testing.T, input string) {
	t.Helper()
	original := keyInput
	keyInput = strings.NewReader(input)
	t.Cleanup(func() { keyInput = original })
}

func TestConfigShow_NoKey(t *testing.T) {
	setupTestServices(t, "")

	out, err := execute(t, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "API Key: (not set)")
	assert.Contains(t, out, "Keywords: (none)")
	assert.Contains(t, out, "History size: 20")
	assert.Contains(t, out, "Config file: /tmp/clipseek/config.toml")
}

func TestConfigShow_MasksKey(t *testing.T) {
	ts := setupTestServices(t, "AIzaSyTestKey123")
	require.NoError(t, ts.settings.SetKeywords("Prank, spoiler"))

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "API Key: AIza...y123")
	assert.NotContains(t, out, "AIzaSyTestKey123")
	assert.Contains(t, out, "Keywords: Prank, spoiler")
}

func TestConfigSetKey_Argument(t *testing.T) {
	ts := setupTestServices(t, "")

	out, err := execute(t, "config", "set-key", "AIzaSyNewKey456")

	require.NoError(t, err)
	assert.Contains(t, out, "API key saved.")
	assert.Equal(t, "AIzaSyNewKey456", ts.settings.APIKey())
}

func TestConfigSetKey_Prompt(t *testing.T) {
	ts := setupTestServices(t, "")
	withKeyInput(t, "  AIzaSyPrompted  \n")

	out, err := execute(t, "config", "set-key")

	require.NoError(t, err)
	assert.Contains(t, out, "YouTube API key: ")
	assert.Equal(t, "AIzaSyPrompted", ts.settings.APIKey())
}

func TestConfigSetKey_Blank(t *testing.T) {
	ts := setupTestServices(t, "AIzaSyTestKey123")
	withKeyInput(t, "\n")

	_, err := execute(t, "config", "set-key")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "please enter a valid key")
	assert.Equal(t, "AIzaSyTestKey123", ts.settings.APIKey())
}

func TestConfigSetKeywords(t *testing.T) {
	ts := setupTestServices(t, "")

	out, err := execute(t, "config", "set-keywords", "Prank, ,Spoiler")

	require.NoError(t, err)
	assert.Contains(t, out, "Filter keywords saved: prank, spoiler")
	assert.Equal(t, domain.KeywordSet{"prank", "spoiler"}, ts.settings.KeywordSet())
}

func TestConfigSetKeywords_Disable(t *testing.T) {
	ts := setupTestServices(t, "")
	require.NoError(t, ts.settings.SetKeywords("prank"))

	out, err := execute(t, "config", "set-keywords", "")

	require.NoError(t, err)
	assert.Contains(t, out, "Keyword filter disabled.")
	assert.True(t, ts.settings.KeywordSet().Empty())
}

func TestConfigTheme(t *testing.T) {
	ts := setupTestServices(t, "")

	out, err := execute(t, "config", "theme", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to light.")
	assert.Equal(t, domain.ThemeLight, ts.settings.Theme())

	out, err = execute(t, "config", "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: light")
}

func TestConfigTheme_Invalid(t *testing.T) {
	setupTestServices(t, "")

	_, err := execute(t, "config", "theme", "purple")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "AIza...y123", maskAPIKey("AIzaSyTestKey123"))
}

func TestConfigInit_WritesTunables(t *testing.T) {
	ts := setupTestServices(t, "")
	appConfig.History.MaxItems = 35

	out, err := execute(t, "config", "init")

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote /tmp/clipseek/config.toml")
	assert.Equal(t, 35, ts.config.GetInt("history.max_items"))
	assert.Equal(t, domain.DefaultPlayerCommand, ts.config.GetString("player.command"))
}

func TestConfigInit_NoConfigFile(t *testing.T) {
	setupTestServices(t, "")
	saveConfig = nil

	_, err := execute(t, "config", "init")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not available")
}
