package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

var (
	historyOffset int
	historyLimit  int
	historyJSON   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently watched videos",
	Long: `Lists the viewing history, most recent first.
Entries matching your forbidden keywords are hidden.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove [video-id]",
	Short: "Remove one video from the history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRemove,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the whole history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "number of entries to skip")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", domain.DefaultMaxHistory, "maximum number of entries")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output entries as JSON")

	historyCmd.AddCommand(historyRemoveCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if historyOffset < 0 || historyLimit <= 0 {
		return fmt.Errorf("%w: offset must be >= 0 and limit > 0", domain.ErrInvalidInput)
	}

	items, _ := historyService.ReadBatch(historyOffset, historyLimit)
	filtered := 0
	if filterService != nil {
		items, filtered = filterService.Apply(items)
	}

	if historyJSON {
		data, err := json.MarshalIndent(toVideoJSON(items), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(items) == 0 {
		if filtered > 0 {
			cmd.Println("Your history is empty or all videos were filtered by your keywords.")
		} else {
			cmd.Println("Your history will appear here after you watch a video.")
		}
		return nil
	}

	cmd.Println("History:")
	cmd.Println()
	printVideos(cmd, items)
	cmd.Printf("Total: %d videos", historyService.Len())
	if filtered > 0 {
		cmd.Printf(" (%d hidden by your keywords)", filtered)
	}
	cmd.Println()
	return nil
}

func runHistoryRemove(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if err := historyService.Remove(args[0]); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	cmd.Printf("Removed %s from history.\n", args[0])
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if err := historyService.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}
