// Package resources implements MCP resource handlers over the study store.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (thinklock://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// FoldersURI addresses the folder overview resource.
const FoldersURI = "thinklock://thinkfolders"

// Handler manages ThinkLock resource endpoints.
type Handler struct {
	store *store.Store
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// folderOverview is one folder with its open action item count.
type folderOverview struct {
	store.ThinkFolder
	OpenActionItems int `json:"open_actionitems"`
}

// FoldersResource returns the MCP resource definition for the folder overview.
func (h *Handler) FoldersResource() mcp.Resource {
	return mcp.NewResource(
		FoldersURI,
		"Think folders",
		mcp.WithResourceDescription("Every think folder with its count of open action items"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleFolders returns the folder overview as JSON.
func (h *Handler) HandleFolders(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	folders, err := h.store.ListThinkFolders()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	overview := make([]folderOverview, 0, len(folders))
	for _, f := range folders {
		items, err := h.store.ListActionItemsByThinkFolder(f.ID)
		if err != nil {
			return errorResource(req.Params.URI, err.Error()), nil
		}
		open := 0
		for _, it := range items {
			if !it.Completed {
				open++
			}
		}
		overview = append(overview, folderOverview{ThinkFolder: f, OpenActionItems: open})
	}

	data, err := json.MarshalIndent(overview, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling folders: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
