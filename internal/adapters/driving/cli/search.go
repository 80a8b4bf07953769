package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

var (
	searchPageToken string
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search YouTube videos",
	Long: `Fetches one page of embeddable, safe-search results for the query.
Videos matching your forbidden keywords are removed and counted.

Pass the printed page token with --page-token to fetch the next page.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchPageToken, "page-token", "", "continuation token of the page to fetch")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	batch, err := searchService.FetchPage(cmd.Context(), args[0], searchPageToken)
	if err != nil {
		return fmt.Errorf("search failed: %w", friendlyError(err))
	}

	if searchJSON {
		return outputSearchJSON(cmd, batch)
	}
	outputSearchTable(cmd, batch)
	return nil
}

// videoJSON is a video with its player links, as printed by --json.
type videoJSON struct {
	domain.Video
	WatchURL string `json:"watchUrl"`
	EmbedURL string `json:"embedUrl"`
}

func toVideoJSON(videos []domain.Video) []videoJSON {
	out := make([]videoJSON, len(videos))
	for i, v := range videos {
		out[i] = videoJSON{Video: v, WatchURL: v.WatchURL(), EmbedURL: v.EmbedURL()}
	}
	return out
}

type searchOutput struct {
	Query         string      `json:"query"`
	Items         []videoJSON `json:"items"`
	FilteredCount int         `json:"filteredCount"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}

func outputSearchJSON(cmd *cobra.Command, batch domain.SearchBatch) error {
	out := searchOutput{
		Query:         batch.Query,
		Items:         toVideoJSON(batch.Items),
		FilteredCount: batch.FilteredCount,
		NextPageToken: batch.NextContinuationToken,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, batch domain.SearchBatch) {
	switch {
	case len(batch.Items) == 0 && batch.FilteredCount > 0:
		cmd.Printf("%d videos were filtered from the results. Try another search.\n", batch.FilteredCount)
		return
	case len(batch.Items) == 0:
		cmd.Println("No videos matched your search.")
		return
	}

	cmd.Println("Results:")
	cmd.Println()
	printVideos(cmd, batch.Items)

	if batch.FilteredCount > 0 {
		cmd.Printf("%d filtered by your keywords.\n", batch.FilteredCount)
	}
	if batch.NextContinuationToken != "" {
		cmd.Printf("Next page: --page-token %s\n", batch.NextContinuationToken)
	}
}

// printVideos lists videos with their channel and watch URL.
func printVideos(cmd *cobra.Command, videos []domain.Video) {
	for i, v := range videos {
		cmd.Printf("  [%d] %s\n", i+1, v.Title)
		if v.ChannelTitle != "" {
			cmd.Printf("      Channel: %s\n", v.ChannelTitle)
		}
		cmd.Printf("      %s\n", v.WatchURL())
		cmd.Println()
	}
}
