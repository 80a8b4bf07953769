package services

import (
	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driven"
)

// Config keys in the TOML configuration file.
const (
	keyHistoryMaxItems   = "history.max_items"
	keyHistoryBatchSize  = "history.batch_size"
	keySearchPageSize    = "search.page_size"
	keyScrollThreshold   = "scroll.threshold"
	keyPlayerCommand     = "player.command"
	keyPlayerArgs        = "player.args"
	keyAPIRequestsPerSec = "api.requests_per_second"
	keyAPIBurst          = "api.burst"
)

// LoadAppConfig reads the tunables from store, falling back to defaults
// for missing or non-positive values. A nil store yields the defaults.
func LoadAppConfig(store driven.ConfigStore) domain.AppConfig {
	cfg := domain.DefaultAppConfig()
	if store == nil {
		return cfg
	}

	cfg.History.MaxItems = positiveInt(store, keyHistoryMaxItems, cfg.History.MaxItems)
	cfg.History.BatchSize = positiveInt(store, keyHistoryBatchSize, cfg.History.BatchSize)
	cfg.Search.PageSize = positiveInt(store, keySearchPageSize, cfg.Search.PageSize)
	cfg.Scroll.Threshold = positiveInt(store, keyScrollThreshold, cfg.Scroll.Threshold)
	cfg.API.Burst = positiveInt(store, keyAPIBurst, cfg.API.Burst)

	if cmd := store.GetString(keyPlayerCommand); cmd != "" {
		cfg.Player.Command = cmd
	}
	if _, ok := store.Get(keyPlayerArgs); ok {
		cfg.Player.Args = store.GetStringSlice(keyPlayerArgs)
	}
	if rps := store.GetFloat(keyAPIRequestsPerSec); rps > 0 {
		cfg.API.RequestsPerSecond = rps
	}

	// The search API caps a page at 50 results.
	if cfg.Search.PageSize > 50 {
		cfg.Search.PageSize = 50
	}

	return cfg
}

// SaveAppConfig writes cfg back to store and persists it.
func SaveAppConfig(store driven.ConfigStore, cfg domain.AppConfig) error {
	values := []struct {
		key string
		val any
	}{
		{keyHistoryMaxItems, cfg.History.MaxItems},
		{keyHistoryBatchSize, cfg.History.BatchSize},
		{keySearchPageSize, cfg.Search.PageSize},
		{keyScrollThreshold, cfg.Scroll.Threshold},
		{keyPlayerCommand, cfg.Player.Command},
		{keyPlayerArgs, cfg.Player.Args},
		{keyAPIRequestsPerSec, cfg.API.RequestsPerSecond},
		{keyAPIBurst, cfg.API.Burst},
	}
	for _, v := range values {
		if err := store.Set(v.key, v.val); err != nil {
			return err
		}
	}
	return store.Save()
}

func positiveInt(store driven.ConfigStore, key string, fallback int) int {
	if n := store.GetInt(key); n > 0 {
		return n
	}
	return fallback
}
