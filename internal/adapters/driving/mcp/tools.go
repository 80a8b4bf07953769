package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

// defaultHistoryLimit is used when list_history is called without a limit.
const defaultHistoryLimit = 10

// SearchVideosInput is the input schema for the search_videos tool.
type SearchVideosInput struct {
	Query     string `json:"query" jsonschema:"the search query"`
	PageToken string `json:"page_token,omitempty" jsonschema:"continuation token returned by a previous call"`
}

// SearchVideosOutput is the output schema for the search_videos tool.
type SearchVideosOutput struct {
	Videos        []VideoOutput `json:"videos"`
	FilteredCount int           `json:"filtered_count"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}

// ListHistoryInput is the input schema for the list_history tool.
type ListHistoryInput struct {
	Offset int `json:"offset,omitempty" jsonschema:"number of entries to skip"`
	Limit  int `json:"limit,omitempty" jsonschema:"maximum number of entries to return (default 10)"`
}

// ListHistoryOutput is the output schema for the list_history tool.
type ListHistoryOutput struct {
	Videos        []VideoOutput `json:"videos"`
	FilteredCount int           `json:"filtered_count"`
	Exhausted     bool          `json:"exhausted"`
}

// VideoOutput represents a single video.
type VideoOutput struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ChannelTitle string `json:"channel_title,omitempty"`
	URL          string `json:"url"`
	EmbedURL     string `json:"embed_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
}

func toVideoOutputs(videos []domain.Video) []VideoOutput {
	out := make([]VideoOutput, len(videos))
	for i, v := range videos {
		out[i] = VideoOutput{
			ID:           v.ID,
			Title:        v.Title,
			Description:  v.Description,
			ChannelTitle: v.ChannelTitle,
			URL:          v.WatchURL(),
			EmbedURL:     v.EmbedURL(),
			ThumbnailURL: v.ThumbnailURL,
			PublishedAt:  v.PublishedAt,
		}
	}
	return out
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_videos",
		Description: "Search YouTube for embeddable videos, hiding those that match the user's forbidden keywords",
	}, s.handleSearchVideos)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_history",
		Description: "List recently watched videos, most recent first",
	}, s.handleListHistory)
}

func (s *Server) handleSearchVideos(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchVideosInput,
) (*mcp.CallToolResult, SearchVideosOutput, error) {
	batch, err := s.ports.Search.FetchPage(ctx, input.Query, input.PageToken)
	if err != nil {
		return nil, SearchVideosOutput{}, err
	}

	return nil, SearchVideosOutput{
		Videos:        toVideoOutputs(batch.Items),
		FilteredCount: batch.FilteredCount,
		NextPageToken: batch.NextContinuationToken,
	}, nil
}

func (s *Server) handleListHistory(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListHistoryInput,
) (*mcp.CallToolResult, ListHistoryOutput, error) {
	if s.ports.History == nil {
		return nil, ListHistoryOutput{}, ErrHistoryUnavailable
	}

	offset := max(input.Offset, 0)
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	items, exhausted := s.ports.History.ReadBatch(offset, limit)
	kept, filtered := s.filter(items)
	return nil, ListHistoryOutput{
		Videos:        toVideoOutputs(kept),
		FilteredCount: filtered,
		Exhausted:     exhausted,
	}, nil
}

func (s *Server) filter(videos []domain.Video) ([]domain.Video, int) {
	if s.ports.Filter == nil {
		return domain.ValidVideos(videos), 0
	}
	return s.ports.Filter.Apply(videos)
}
