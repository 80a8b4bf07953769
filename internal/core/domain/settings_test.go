package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme(t *testing.T) {
	assert.True(t, ThemeDark.IsValid())
	assert.True(t, ThemeLight.IsValid())
	assert.False(t, Theme("neon").IsValid())

	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, Theme("").Toggle())
}

func TestParseTheme(t *testing.T) {
	got, err := ParseTheme("light")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got)

	got, err = ParseTheme("sepia")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, ThemeDark, got)
}

func TestConfigChange(t *testing.T) {
	tests := []struct {
		name           string
		change         ConfigChange
		filter, histry bool
	}{
		{"keywords", ConfigChange{Key: KeyFilterKeywords}, true, true},
		{"history", ConfigChange{Key: KeyVideoHistory}, false, true},
		{"theme", ConfigChange{Key: KeyTheme}, false, false},
		{"unknown external", ConfigChange{Source: ChangeFromExternal}, true, true},
		{"database", ConfigChange{Key: KeyDatabase, Source: ChangeFromExternal}, true, true},
		{"config file", ConfigChange{Key: KeyConfigFile, Source: ChangeFromExternal}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.filter, tt.change.AffectsFilter())
			assert.Equal(t, tt.histry, tt.change.AffectsHistory())
			assert.Equal(t, tt.change.Key == "" || tt.change.Key == KeyDatabase, tt.change.Unscoped())
		})
	}
}

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	assert.Equal(t, 20, cfg.History.MaxItems)
	assert.Equal(t, 10, cfg.History.BatchSize)
	assert.Equal(t, 20, cfg.Search.PageSize)
	assert.Equal(t, 3, cfg.Scroll.Threshold)
	assert.Equal(t, "mpv", cfg.Player.Command)
	assert.Positive(t, cfg.API.RequestsPerSecond)
}
