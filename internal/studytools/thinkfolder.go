package studytools

import (
	"context"
	"fmt"

	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// ThinkFolderListTool handles the thinkfolder_list MCP tool.
type ThinkFolderListTool struct {
	store *store.Store
}

// NewThinkFolderListTool creates a ThinkFolderListTool.
func NewThinkFolderListTool(s *store.Store) *ThinkFolderListTool {
	return &ThinkFolderListTool{store: s}
}

// Definition returns the MCP tool definition for thinkfolder_list.
func (t *ThinkFolderListTool) Definition() mcp.Tool {
	return mcp.NewTool("thinkfolder_list",
		mcp.WithDescription("List every think folder (subject area) with its color and icon."),
	)
}

// Handle processes the thinkfolder_list tool call.
func (t *ThinkFolderListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folders, err := t.store.ListThinkFolders()
	if err != nil {
		return storeErrorResult(err), nil
	}
	if len(folders) == 0 {
		return mcp.NewToolResultText("No think folders yet. Create one with thinkfolder_create."), nil
	}
	return jsonResult(folders), nil
}

// ─── ThinkFolderCreateTool ──────────────────────────────────────────────────

// ThinkFolderCreateTool handles the thinkfolder_create MCP tool.
type ThinkFolderCreateTool struct {
	store *store.Store
}

// NewThinkFolderCreateTool creates a ThinkFolderCreateTool.
func NewThinkFolderCreateTool(s *store.Store) *ThinkFolderCreateTool {
	return &ThinkFolderCreateTool{store: s}
}

// Definition returns the MCP tool definition for thinkfolder_create.
func (t *ThinkFolderCreateTool) Definition() mcp.Tool {
	return mcp.NewTool("thinkfolder_create",
		mcp.WithDescription("Create a think folder for a subject area. Sessions, action items and flashcards live inside a folder."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Folder name (e.g. 'Linear Algebra')"),
		),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Hex color used on the dashboard (e.g. '#0000FF')"),
		),
		mcp.WithString("description",
			mcp.Description("Optional description"),
		),
		mcp.WithString("icon",
			mcp.Description("Optional icon name; defaults to 'folder'"),
		),
	)
}

// Handle processes the thinkfolder_create tool call.
func (t *ThinkFolderCreateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	color := req.GetString("color", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}
	if color == "" {
		return mcp.NewToolResultError("'color' is required"), nil
	}

	p := store.CreateThinkFolderParams{Name: name, Color: color}
	if v, ok := req.GetArguments()["description"]; ok && v != nil {
		desc := cast.ToString(v)
		p.Description = &desc
	}
	id, err := t.store.CreateThinkFolder(p)
	if err != nil {
		return storeErrorResult(err), nil
	}

	// Create does not take an icon, so it is applied as a follow-up update.
	if icon := req.GetString("icon", ""); icon != "" {
		if err := t.store.UpdateThinkFolder(id, store.ThinkFolderPatch{Icon: &icon}); err != nil {
			return storeErrorResult(err), nil
		}
	}

	return mcp.NewToolResultText(fmt.Sprintf("Think folder %q created\nID: %d", name, id)), nil
}
