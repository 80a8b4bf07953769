package driving

import "github.com/custodia-labs/clipseek/internal/core/domain"

// SettingsService manages the user's persisted settings.
type SettingsService interface {
	// APIKey returns the effective search API key. Empty when unset.
	APIKey() string

	// SetAPIKey stores a new API key. Blank keys are rejected.
	SetAPIKey(key string) error

	// Keywords returns the forbidden keywords in their stored form.
	Keywords() string

	// KeywordSet returns the parsed forbidden keywords, read fresh from storage.
	KeywordSet() domain.KeywordSet

	// SetKeywords stores the comma-separated keyword list. Empty disables filtering.
	SetKeywords(raw string) error

	// Theme returns the selected theme.
	Theme() domain.Theme

	// SetTheme stores the theme.
	SetTheme(theme domain.Theme) error

	// ToggleTheme switches between dark and light and returns the new theme.
	ToggleTheme() (domain.Theme, error)

	// Subscribe registers fn to receive every configuration change.
	Subscribe(fn func(domain.ConfigChange))

	// Publish notifies subscribers of a change made elsewhere.
	Publish(change domain.ConfigChange)
}
