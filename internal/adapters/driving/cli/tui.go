package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clipseek/internal/adapters/driving/tui"
	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driving"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// tuiLogFile receives verbose logs while the terminal UI owns the screen.
const tuiLogFile = "clipseek-tui.log"

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Controls:
  1/h      - History
  2, /     - Search
  3/c      - Config
  ↑/k, ↓/j - Navigate
  Enter    - Search / Play
  n        - Skip to a related video
  x        - Stop playback
  d        - Remove from history
  t        - Toggle theme
  Esc      - Leave an input
  q        - Quit`,
	RunE: runTUI,
}

var tuiView string

func init() {
	tuiCmd.Flags().StringVar(&tuiView, "view", "", "open on this view: history, search or config")
	rootCmd.AddCommand(tuiCmd)
}

// openView switches ctrl to the named view. An empty name keeps the view
// the controller chose.
func openView(ctrl driving.Controller, name string) error {
	if name == "" {
		return nil
	}
	view, err := domain.ParseView(name)
	if err != nil {
		return err
	}
	_, err = ctrl.SwitchTo(view)
	return err
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	if controller == nil {
		return errors.New("controller not configured")
	}
	if err := openView(controller, tuiView); err != nil {
		return err
	}

	if logger.IsVerbose() {
		path := filepath.Join(os.TempDir(), tuiLogFile)
		f, ferr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if ferr == nil {
			logger.SetOutput(f)
			defer func() {
				logger.SetOutput(os.Stderr)
				f.Close() //nolint:errcheck
			}()
			fmt.Fprintf(cmd.ErrOrStderr(), "Verbose logs: %s\n", path)
		}
	}

	app, err := tui.NewApp(&tui.Ports{
		Controller: controller,
		Settings:   settingsService,
		Playback:   playbackService,
		Search:     searchService,
		Filter:     filterService,
	}, appConfig.Scroll.Threshold)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
