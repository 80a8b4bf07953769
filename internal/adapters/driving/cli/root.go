// Package cli provides the clipseek command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// EnvPrefix prefixes the environment variables that override flags,
// e.g. CLIPSEEK_CONFIG_DIR or CLIPSEEK_API_KEY.
const EnvPrefix = "CLIPSEEK"

// Options are the global settings resolved from flags and environment.
type Options struct {
	ConfigDir string
	DataDir   string
	Verbose   bool
	// APIKey overrides the stored key for this process only.
	APIKey string
}

// Services are the core services the commands drive.
type Services struct {
	Settings   driving.SettingsService
	History    driving.HistoryService
	Search     driving.SearchService
	Playback   driving.PlaybackService
	Filter     driving.FilterService
	Controller driving.Controller
	Config     domain.AppConfig
	// ConfigPath is the configuration file, for display.
	ConfigPath string
	// SaveConfig writes the tunables to the configuration file.
	SaveConfig func(domain.AppConfig) error
}

// Builder constructs the services once the global options are known. The
// returned function releases what the builder opened.
type Builder func(ctx context.Context, opts Options) (*Services, func() error, error)

var (
	version = "dev"

	env     = viper.New()
	builder Builder
	closer  func() error

	settingsService driving.SettingsService
	historyService  driving.HistoryService
	searchService   driving.SearchService
	playbackService driving.PlaybackService
	filterService   driving.FilterService
	controller      driving.Controller
	appConfig       = domain.DefaultAppConfig()
	configPath      string
	saveConfig      func(domain.AppConfig) error
)

var rootCmd = &cobra.Command{
	Use:   "clipseek",
	Short: "Search and watch YouTube videos from the terminal",
	Long: `clipseek searches YouTube, hides videos matching your forbidden keywords,
keeps a short viewing history and autoplays related videos without repeats.

Run without arguments to open the interactive interface.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return teardown()
	},
	RunE: runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config-dir", "", "configuration directory (default ~/.clipseek)")
	flags.String("data-dir", "", "data directory (default ~/.clipseek/data)")
	flags.BoolP("verbose", "v", false, "enable verbose logging")

	env.SetEnvPrefix(EnvPrefix)
	env.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	env.AutomaticEnv()
	for _, name := range []string{"config-dir", "data-dir", "verbose"} {
		if err := env.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

// resolveOptions merges flags and CLIPSEEK_* environment variables.
func resolveOptions() Options {
	return Options{
		ConfigDir: env.GetString("config-dir"),
		DataDir:   env.GetString("data-dir"),
		Verbose:   env.GetBool("verbose"),
		APIKey:    env.GetString("api-key"),
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	opts := resolveOptions()
	logger.SetVerbose(opts.Verbose)

	if builder == nil || settingsService != nil {
		return nil
	}
	svc, release, err := builder(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(svc)
	closer = release
	return nil
}

func teardown() error {
	if closer == nil {
		return nil
	}
	err := closer()
	closer = nil
	return err
}

// SetBuilder registers the function that constructs the services.
func SetBuilder(b Builder) {
	builder = b
}

// SetServices injects the services directly. Nil fields stay unset.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	settingsService = s.Settings
	historyService = s.History
	searchService = s.Search
	playbackService = s.Playback
	filterService = s.Filter
	controller = s.Controller
	appConfig = s.Config
	configPath = s.ConfigPath
	saveConfig = s.SaveConfig
}

// SetVersion sets the version printed by the version command.
func SetVersion(ver string) {
	version = ver
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if terr := teardown(); terr != nil && err == nil {
		err = terr
	}
	return err
}

// friendlyError rewrites errors that have an obvious fix.
func friendlyError(err error) error {
	var apiErr *domain.APIError
	switch {
	case errors.Is(err, domain.ErrAPIKeyMissing):
		return errors.New("no YouTube API key configured; run 'clipseek config set-key' or set CLIPSEEK_API_KEY")
	case errors.Is(err, domain.ErrRateLimited):
		return errors.New("too many requests, try again shortly")
	case errors.As(err, &apiErr):
		return fmt.Errorf("API error: %s. Check your key and quota", apiErr.Message)
	}
	return err
}
