package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driven"
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages the user settings held in the key-value store.
// Every setter publishes a domain.ConfigChange to subscribers.
type SettingsService struct {
	store driven.KeyValueStore

	mu             sync.RWMutex
	apiKeyOverride string
	listeners      []func(domain.ConfigChange)
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.KeyValueStore) *SettingsService {
	return &SettingsService{store: store}
}

// SetAPIKeyOverride makes key take precedence over the stored API key
// without persisting it. An empty key removes the override.
func (s *SettingsService) SetAPIKeyOverride(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKeyOverride = strings.TrimSpace(key)
}

// APIKey returns the effective API key.
func (s *SettingsService) APIKey() string {
	s.mu.RLock()
	override := s.apiKeyOverride
	s.mu.RUnlock()
	if override != "" {
		return override
	}
	return strings.TrimSpace(s.get(domain.KeyAPIKey))
}

// SetAPIKey stores a new API key.
func (s *SettingsService) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: API key must not be empty", domain.ErrInvalidInput)
	}
	return s.set(domain.KeyAPIKey, key)
}

// Keywords returns the forbidden keywords as stored.
func (s *SettingsService) Keywords() string {
	return s.get(domain.KeyFilterKeywords)
}

// KeywordSet returns the parsed forbidden keywords.
func (s *SettingsService) KeywordSet() domain.KeywordSet {
	return domain.ParseKeywords(s.Keywords())
}

// SetKeywords stores the comma-separated keyword list.
func (s *SettingsService) SetKeywords(raw string) error {
	return s.set(domain.KeyFilterKeywords, strings.TrimSpace(raw))
}

// Theme returns the selected theme, dark when unset or unreadable.
func (s *SettingsService) Theme() domain.Theme {
	raw := s.get(domain.KeyTheme)
	if raw == "" {
		return domain.ThemeDark
	}
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		logger.Warn("Ignoring stored theme: %v", err)
	}
	return theme
}

// SetTheme stores the theme.
func (s *SettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: unknown theme %q", domain.ErrInvalidInput, theme)
	}
	return s.set(domain.KeyTheme, theme.String())
}

// ToggleTheme switches between dark and light.
func (s *SettingsService) ToggleTheme() (domain.Theme, error) {
	next := s.Theme().Toggle()
	if err := s.SetTheme(next); err != nil {
		return s.Theme(), err
	}
	return next, nil
}

// Subscribe registers fn for configuration changes.
func (s *SettingsService) Subscribe(fn func(domain.ConfigChange)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Publish notifies every subscriber of change.
func (s *SettingsService) Publish(change domain.ConfigChange) {
	s.mu.RLock()
	listeners := make([]func(domain.ConfigChange), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	logger.Debug("Configuration changed: key=%q source=%s", change.Key, change.Source)
	for _, fn := range listeners {
		fn(change)
	}
}

func (s *SettingsService) get(key string) string {
	val, ok, err := s.store.Get(key)
	if err != nil {
		logger.Warn("Failed to read %s: %v", key, err)
		return ""
	}
	if !ok {
		return ""
	}
	return val
}

func (s *SettingsService) set(key, value string) error {
	if err := s.store.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	s.Publish(domain.ConfigChange{Key: key, Source: domain.ChangeFromSettings})
	return nil
}
