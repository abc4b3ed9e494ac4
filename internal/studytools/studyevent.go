package studytools

import (
	"context"
	"fmt"
	"strings"

	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// StudyEventListTool handles the studyevent_list MCP tool.
type StudyEventListTool struct {
	store *store.Store
}

// NewStudyEventListTool creates a StudyEventListTool.
func NewStudyEventListTool(s *store.Store) *StudyEventListTool {
	return &StudyEventListTool{store: s}
}

// Definition returns the MCP tool definition for studyevent_list.
func (t *StudyEventListTool) Definition() mcp.Tool {
	return mcp.NewTool("studyevent_list",
		mcp.WithDescription("Show the activity feed of a think session, oldest first."),
		mcp.WithNumber("thinksession_id",
			mcp.Required(),
			mcp.Description("Think session ID"),
		),
	)
}

// Handle processes the studyevent_list tool call.
func (t *StudyEventListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := idArg(req, "thinksession_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	events, err := t.store.ListStudyEvents(sessionID)
	if err != nil {
		return storeErrorResult(err), nil
	}
	if len(events) == 0 {
		return mcp.NewToolResultText("No study events yet."), nil
	}

	var b strings.Builder
	for _, e := range events {
		fmt.Fprintf(&b, "%s  %-22s", e.Timestamp, e.EventType)
		if e.ReferenceID != nil {
			fmt.Fprintf(&b, " ref=%d", *e.ReferenceID)
		}
		if e.Details != "" {
			fmt.Fprintf(&b, "  %s", e.Details)
		}
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}
