package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the API key, keywords and theme",
	Long: `View and change your YouTube API key, forbidden keywords and theme.

Tunables such as the history size, page size and player command live in
config.toml in the config directory.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Store the YouTube Data API key",
	Long: `Stores the YouTube Data API key used for searching.
Without an argument the key is read from the terminal without echo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigSetKey,
}

var configSetKeywordsCmd = &cobra.Command{
	Use:   "set-keywords [keywords]",
	Short: "Store the comma-separated forbidden keywords",
	Long: `Videos whose title or description contains any of the keywords,
ignoring case, are hidden from results, history and autoplay.

Pass an empty string to disable filtering:
  clipseek config set-keywords ""`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigSetKeywords,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current tunables to config.toml",
	Long: `Writes the history, search, scroll, player and API settings in effect
to config.toml so they can be edited. Values already in the file are kept.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configThemeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the interface theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(domain.ThemeDark), string(domain.ThemeLight)},
	RunE:      runConfigTheme,
}

// keyInput is where set-key reads a key typed at the prompt.
var keyInput io.Reader = os.Stdin

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSetKeywordsCmd)
	configCmd.AddCommand(configThemeCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[YouTube]")
	if key := settingsService.APIKey(); key != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(key))
	} else {
		cmd.Println("  API Key: (not set)")
	}
	cmd.Println()

	cmd.Println("[Filter]")
	if kw := settingsService.Keywords(); kw != "" {
		cmd.Printf("  Keywords: %s\n", kw)
	} else {
		cmd.Println("  Keywords: (none)")
	}
	cmd.Println()

	cmd.Println("[Interface]")
	cmd.Printf("  Theme: %s\n", settingsService.Theme())
	cmd.Printf("  Scroll threshold: %d\n", appConfig.Scroll.Threshold)
	cmd.Println()

	cmd.Println("[Limits]")
	cmd.Printf("  History size: %d\n", appConfig.History.MaxItems)
	cmd.Printf("  History batch: %d\n", appConfig.History.BatchSize)
	cmd.Printf("  Search page size: %d\n", appConfig.Search.PageSize)
	cmd.Printf("  Requests per second: %g (burst %d)\n", appConfig.API.RequestsPerSecond, appConfig.API.Burst)
	cmd.Println()

	cmd.Println("[Player]")
	cmd.Printf("  Command: %s\n", strings.TrimSpace(appConfig.Player.Command+" "+strings.Join(appConfig.Player.Args, " ")))

	if configPath != "" {
		cmd.Println()
		cmd.Printf("Config file: %s\n", configPath)
	}
	return nil
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		cmd.Print("YouTube API key: ")
		key = readSecret(keyInput)
		cmd.Println()
	}

	if err := settingsService.SetAPIKey(key); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errors.New("please enter a valid key")
		}
		return fmt.Errorf("failed to save API key: %w", err)
	}
	cmd.Println("API key saved.")
	return nil
}

func runConfigSetKeywords(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetKeywords(args[0]); err != nil {
		return fmt.Errorf("failed to save keywords: %w", err)
	}

	set := settingsService.KeywordSet()
	if set.Empty() {
		cmd.Println("Keyword filter disabled.")
		return nil
	}
	cmd.Printf("Filter keywords saved: %s\n", set)
	return nil
}

func runConfigTheme(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if len(args) == 0 {
		cmd.Printf("Theme: %s\n", settingsService.Theme())
		return nil
	}

	theme, err := domain.ParseTheme(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	cmd.Printf("Theme set to %s.\n", theme)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if saveConfig == nil {
		return errors.New("config file not available")
	}
	if err := saveConfig(appConfig); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if configPath != "" {
		cmd.Printf("Wrote %s\n", configPath)
		return nil
	}
	cmd.Println("Config written.")
	return nil
}

// readSecret reads a line without echo when r is a terminal.
func readSecret(r io.Reader) string {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	input, _ := bufio.NewReader(r).ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
