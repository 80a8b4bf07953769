package domain

import "fmt"

// Keys of the persisted key-value settings.
//
//nolint:gosec // G101: These are storage key names, not actual credentials.
const (
	KeyAPIKey         = "youtube_api_key"
	KeyFilterKeywords = "filter_keywords"
	KeyVideoHistory   = "video_history"
	KeyTheme          = "theme"
)

// KeyConfigFile identifies changes to the TOML configuration file rather
// than to a stored setting.
const KeyConfigFile = "config_file"

// KeyDatabase identifies a change to the settings database made by another
// process. Any stored setting may have changed.
const KeyDatabase = "database"

// Theme selects the colour palette of the interface.
type Theme string

// Available themes.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// ParseTheme converts a stored value into a Theme.
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.IsValid() {
		return ThemeDark, fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, s)
	}
	return t, nil
}

// ChangeSource tells listeners where a configuration change came from.
type ChangeSource string

// Change sources.
const (
	ChangeFromSettings ChangeSource = "settings"
	ChangeFromExternal ChangeSource = "external"
)

// ConfigChange is published whenever a persisted setting changes.
type ConfigChange struct {
	// Key is the changed setting key. Empty when unknown.
	Key string

	// Source is where the change originated.
	Source ChangeSource
}

// Unscoped reports whether the change may have touched any stored setting.
func (c ConfigChange) Unscoped() bool {
	return c.Key == "" || c.Key == KeyDatabase
}

// AffectsFilter reports whether rendered lists must be re-filtered.
func (c ConfigChange) AffectsFilter() bool {
	return c.Unscoped() || c.Key == KeyFilterKeywords
}

// AffectsHistory reports whether the rendered history may be stale.
func (c ConfigChange) AffectsHistory() bool {
	return c.AffectsFilter() || c.Key == KeyVideoHistory
}
