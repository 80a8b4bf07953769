package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for clipseek resources.
	uriScheme = "clipseek://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recently watched videos, most recent first, with forbidden ones hidden",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Forbidden keywords, theme and whether an API key is configured",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "videos/{videoId}",
		Name:        "video",
		Description: "A video from the viewing history",
		MIMEType:    "application/json",
	}, s.handleVideoResource)
}

func (s *Server) handleHistoryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResult(req.Params.URI, []VideoOutput{})
	}
	kept, _ := s.filter(s.ports.History.All())
	return jsonResult(req.Params.URI, toVideoOutputs(kept))
}

func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	type settingsInfo struct {
		Keywords  []string `json:"keywords"`
		Theme     string   `json:"theme"`
		HasAPIKey bool     `json:"has_api_key"`
	}

	keywords := s.ports.Settings.KeywordSet()
	info := settingsInfo{
		Keywords:  make([]string, 0, len(keywords)),
		Theme:     s.ports.Settings.Theme().String(),
		HasAPIKey: s.ports.Settings.APIKey() != "",
	}
	info.Keywords = append(info.Keywords, keywords...)
	return jsonResult(req.Params.URI, info)
}

func (s *Server) handleVideoResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract videoId from URI: clipseek://videos/{videoId}
	id := extractVideoID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	kept, _ := s.filter(s.ports.History.All())
	for i := range kept {
		if kept[i].ID == id {
			return jsonResult(req.Params.URI, toVideoOutputs(kept[i:i+1])[0])
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractVideoID extracts the video ID from a URI like clipseek://videos/{videoId}.
func extractVideoID(uri string) string {
	const prefix = uriScheme + "videos/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
