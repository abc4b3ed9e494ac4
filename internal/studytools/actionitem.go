package studytools

import (
	"context"
	"fmt"
	"strings"

	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// ActionItemCreateTool handles the actionitem_create MCP tool.
type ActionItemCreateTool struct {
	store *store.Store
}

// NewActionItemCreateTool creates an ActionItemCreateTool.
func NewActionItemCreateTool(s *store.Store) *ActionItemCreateTool {
	return &ActionItemCreateTool{store: s}
}

// Definition returns the MCP tool definition for actionitem_create.
func (t *ActionItemCreateTool) Definition() mcp.Tool {
	return mcp.NewTool("actionitem_create",
		mcp.WithDescription(
			"Add a todo to a think folder, optionally tied to one session. "+
				"Creation is recorded in the session's study events.",
		),
		mcp.WithNumber("thinkfolder_id",
			mcp.Required(),
			mcp.Description("Owning think folder ID"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Short todo title"),
		),
		mcp.WithString("description",
			mcp.Description("Longer description"),
		),
		mcp.WithNumber("thinksession_id",
			mcp.Description("Session the todo belongs to (omit for a folder-level todo)"),
		),
	)
}

// Handle processes the actionitem_create tool call.
func (t *ActionItemCreateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folderID, err := idArg(req, "thinkfolder_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sessionID, err := optionalIDArg(req, "thinksession_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title := req.GetString("title", "")
	if title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}

	id, err := t.store.CreateActionItem(store.CreateActionItemParams{
		ThinkSessionID: sessionID,
		ThinkFolderID:  folderID,
		Title:          title,
		Description:    req.GetString("description", ""),
	})
	if err != nil {
		return storeErrorResult(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Action item %q created\nID: %d", title, id)), nil
}

// ─── ActionItemToggleTool ───────────────────────────────────────────────────

// ActionItemToggleTool handles the actionitem_toggle MCP tool.
type ActionItemToggleTool struct {
	store *store.Store
}

// NewActionItemToggleTool creates an ActionItemToggleTool.
func NewActionItemToggleTool(s *store.Store) *ActionItemToggleTool {
	return &ActionItemToggleTool{store: s}
}

// Definition returns the MCP tool definition for actionitem_toggle.
func (t *ActionItemToggleTool) Definition() mcp.Tool {
	return mcp.NewTool("actionitem_toggle",
		mcp.WithDescription("Flip an action item between done and not done. Each flip is recorded as a study event."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Action item ID"),
		),
	)
}

// Handle processes the actionitem_toggle tool call.
func (t *ActionItemToggleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := idArg(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	completed, err := t.store.ToggleActionItem(id)
	if err != nil {
		return storeErrorResult(err), nil
	}
	state := "not done"
	if completed {
		state = "done"
	}
	return mcp.NewToolResultText(fmt.Sprintf("Action item %d marked %s", id, state)), nil
}

// ─── ActionItemListTool ─────────────────────────────────────────────────────

// ActionItemListTool handles the actionitem_list MCP tool.
type ActionItemListTool struct {
	store *store.Store
}

// NewActionItemListTool creates an ActionItemListTool.
func NewActionItemListTool(s *store.Store) *ActionItemListTool {
	return &ActionItemListTool{store: s}
}

// Definition returns the MCP tool definition for actionitem_list.
func (t *ActionItemListTool) Definition() mcp.Tool {
	return mcp.NewTool("actionitem_list",
		mcp.WithDescription(
			"List action items. Pass thinksession_id for one session, thinkfolder_id for a whole folder, "+
				"or neither for everything.",
		),
		mcp.WithNumber("thinkfolder_id", mcp.Description("Filter by think folder")),
		mcp.WithNumber("thinksession_id", mcp.Description("Filter by think session (takes precedence)")),
	)
}

// Handle processes the actionitem_list tool call.
func (t *ActionItemListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := optionalIDArg(req, "thinksession_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	folderID, err := optionalIDArg(req, "thinkfolder_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var items []store.ActionItem
	switch {
	case sessionID != nil:
		items, err = t.store.ListActionItemsByThinkSession(*sessionID)
	case folderID != nil:
		items, err = t.store.ListActionItemsByThinkFolder(*folderID)
	default:
		items, err = t.store.ListActionItems()
	}
	if err != nil {
		return storeErrorResult(err), nil
	}
	if len(items) == 0 {
		return mcp.NewToolResultText("No action items."), nil
	}

	var b strings.Builder
	done := 0
	for _, it := range items {
		box := "[ ]"
		if it.Completed {
			box = "[x]"
			done++
		}
		fmt.Fprintf(&b, "%s #%d %s", box, it.ID, it.Title)
		if it.Description != "" {
			fmt.Fprintf(&b, ": %s", it.Description)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%d of %d done", done, len(items))
	return mcp.NewToolResultText(b.String()), nil
}
