package domain

// Defaults for the tunables in the TOML configuration file.
const (
	DefaultScrollThreshold   = 3
	DefaultPlayerCommand     = "mpv"
	DefaultRequestsPerSecond = 2.0
	DefaultRequestBurst      = 4
)

// AppConfig holds the tunables read from the configuration file.
type AppConfig struct {
	History HistoryConfig
	Search  SearchConfig
	Scroll  ScrollConfig
	Player  PlayerConfig
	API     APIConfig
}

// HistoryConfig bounds the viewing history.
type HistoryConfig struct {
	// MaxItems is the history capacity.
	MaxItems int

	// BatchSize is the number of entries rendered per scroll step.
	BatchSize int
}

// SearchConfig configures search requests.
type SearchConfig struct {
	PageSize int
}

// ScrollConfig configures the infinite-scroll trigger.
type ScrollConfig struct {
	// Threshold is how many rows from the end of a list the trigger fires.
	Threshold int
}

// PlayerConfig configures the external media player.
type PlayerConfig struct {
	Command string
	Args    []string
}

// APIConfig configures request pacing against the search API.
type APIConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		History: HistoryConfig{
			MaxItems:  DefaultMaxHistory,
			BatchSize: DefaultHistoryBatchSize,
		},
		Search: SearchConfig{PageSize: DefaultPageSize},
		Scroll: ScrollConfig{Threshold: DefaultScrollThreshold},
		Player: PlayerConfig{
			Command: DefaultPlayerCommand,
			Args:    []string{"--force-window=immediate"},
		},
		API: APIConfig{
			RequestsPerSecond: DefaultRequestsPerSecond,
			Burst:             DefaultRequestBurst,
		},
	}
}
