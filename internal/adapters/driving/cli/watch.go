package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [query]",
	Short: "Play the top result and keep autoplaying related videos",
	Long: `Plays the first result for the query in the configured player. When a
video ends, a related video that has not been played yet is started. Once
every related video has been played the cycle starts over.

Unplayable videos are skipped. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if controller == nil || playbackService == nil || searchService == nil {
		return errors.New("playback not configured")
	}
	ctx := cmd.Context()

	batch, err := searchService.FetchPage(ctx, args[0], "")
	if err != nil {
		return fmt.Errorf("search failed: %w", friendlyError(err))
	}
	if len(batch.Items) == 0 {
		cmd.Println("No videos matched your search.")
		return nil
	}

	first := batch.Items[0]
	if err := controller.Select(ctx, first); err != nil {
		return fmt.Errorf("failed to play %s: %w", first.ID, err)
	}
	defer func() {
		if err := controller.Close(); err != nil {
			logger.Warn("close player: %v", err)
		}
	}()
	cmd.Printf("Now playing: %s\n", first.Title)

	events := playbackService.Events()
	if events == nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			done, err := handleWatchEvent(cmd, ev)
			if err != nil || done {
				return err
			}
		}
	}
}

// handleWatchEvent advances playback after ev and reports whether watching is over.
func handleWatchEvent(cmd *cobra.Command, ev domain.PlayerEvent) (bool, error) {
	res, handled, err := controller.HandlePlayerEvent(cmd.Context(), ev)
	if !handled {
		return false, nil
	}
	if ev.Kind == domain.PlayerError {
		cmd.Printf("Skipped unplayable video (code %d).\n", ev.Code)
	}

	switch {
	case domain.IsNoOp(err):
		return false, nil
	case err != nil:
		return true, fmt.Errorf("autoplay failed: %w", friendlyError(err))
	case res.Stalled:
		cmd.Println("No related videos left to play.")
		return true, nil
	}

	if res.Restarted {
		cmd.Println("Watched every related video, starting over.")
	}
	cmd.Printf("Now playing: %s\n", res.Video.Title)
	return false, nil
}
