package studytools

import (
	"context"
	"fmt"

	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// NotesReadTool handles the notes_read MCP tool.
type NotesReadTool struct {
	store *store.Store
}

// NewNotesReadTool creates a NotesReadTool.
func NewNotesReadTool(s *store.Store) *NotesReadTool {
	return &NotesReadTool{store: s}
}

// Definition returns the MCP tool definition for notes_read.
func (t *NotesReadTool) Definition() mcp.Tool {
	return mcp.NewTool("notes_read",
		mcp.WithDescription("Read the notes written during a think session."),
		mcp.WithNumber("thinksession_id",
			mcp.Required(),
			mcp.Description("Think session ID"),
		),
	)
}

// Handle processes the notes_read tool call.
func (t *NotesReadTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := idArg(req, "thinksession_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := t.store.GetNotes(sessionID)
	if err != nil {
		return storeErrorResult(err), nil
	}
	if content == "" {
		return mcp.NewToolResultText("(notes are empty)"), nil
	}
	return mcp.NewToolResultText(content), nil
}

// ─── NotesWriteTool ─────────────────────────────────────────────────────────

// NotesWriteTool handles the notes_write MCP tool.
type NotesWriteTool struct {
	store *store.Store
}

// NewNotesWriteTool creates a NotesWriteTool.
func NewNotesWriteTool(s *store.Store) *NotesWriteTool {
	return &NotesWriteTool{store: s}
}

// Definition returns the MCP tool definition for notes_write.
func (t *NotesWriteTool) Definition() mcp.Tool {
	return mcp.NewTool("notes_write",
		mcp.WithDescription("Replace the notes of a think session, creating them on first write."),
		mcp.WithNumber("thinksession_id",
			mcp.Required(),
			mcp.Description("Think session ID"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Full notes content; replaces what is stored"),
		),
	)
}

// Handle processes the notes_write tool call.
func (t *NotesWriteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := idArg(req, "thinksession_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, ok := req.GetArguments()["content"]; !ok {
		return mcp.NewToolResultError("'content' is required"), nil
	}
	content := req.GetString("content", "")

	if _, err := t.store.CreateNotes(sessionID); err != nil {
		return storeErrorResult(err), nil
	}
	if err := t.store.UpdateNotes(sessionID, content); err != nil {
		return storeErrorResult(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Notes for think session %d saved (%d bytes)", sessionID, len(content))), nil
}
