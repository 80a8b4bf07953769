// Command clipseek searches YouTube, keeps a local viewing history and
// autoplays related videos in an external player.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/clipseek/internal/adapters/driven/config/file"
	"github.com/custodia-labs/clipseek/internal/adapters/driven/player"
	"github.com/custodia-labs/clipseek/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/clipseek/internal/adapters/driven/youtube"
	"github.com/custodia-labs/clipseek/internal/adapters/driving/cli"
	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driven"
	"github.com/custodia-labs/clipseek/internal/core/services"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBuilder(build)

	// Cobra has already printed the error.
	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// build opens the stores and wires the services.
func build(ctx context.Context, opts cli.Options) (*cli.Services, func() error, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	cfg := services.LoadAppConfig(configStore)

	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}

	settings := services.NewSettingsService(store)
	settings.SetAPIKeyOverride(opts.APIKey)
	filter := services.NewKeywordFilter(settings)
	history := services.NewHistoryStore(store, cfg.History.MaxItems)

	searcher := youtube.NewSearcher(settings.APIKey, youtube.NewRateLimiter(cfg.API))
	search := services.NewSearchSession(searcher, filter, settings, cfg.Search.PageSize)
	playback := services.NewPlaybackSession(player.NewProcessPlayer(cfg.Player), searcher, filter, history, cfg.Search.PageSize)
	ctrl := services.NewController(settings, filter, history, search, playback, cfg.History.BatchSize)

	fileWatcher := file.NewWatcher(filepath.Dir(configStore.Path()), filepath.Dir(store.Path()), sqlite.DatabaseFile)
	store.OnWrite(fileWatcher.MarkLocalWrite)
	var watcher driven.ChangeWatcher = fileWatcher
	if err := watcher.Start(ctx); err != nil {
		logger.Warn("Not watching for external changes: %v", err)
	} else {
		go forwardChanges(watcher.Changes(), configStore, settings)
	}

	release := func() error {
		if err := playback.Close(); err != nil {
			logger.Warn("Closing playback: %v", err)
		}
		if err := watcher.Close(); err != nil {
			logger.Warn("Closing watcher: %v", err)
		}
		return store.Close()
	}

	return &cli.Services{
		Settings:   settings,
		History:    history,
		Search:     search,
		Playback:   playback,
		Filter:     filter,
		Controller: ctrl,
		Config:     cfg,
		ConfigPath: configStore.Path(),
		SaveConfig: func(c domain.AppConfig) error {
			return services.SaveAppConfig(configStore, c)
		},
	}, release, nil
}

// forwardChanges reloads the config file when it changes on disk and
// republishes every change to settings subscribers.
func forwardChanges(changes <-chan domain.ConfigChange, configStore driven.ConfigStore, settings *services.SettingsService) {
	for change := range changes {
		if change.Key == domain.KeyConfigFile {
			if err := configStore.Load(); err != nil {
				logger.Error(err, "Reloading %s", configStore.Path())
			}
		}
		settings.Publish(change)
	}
}
