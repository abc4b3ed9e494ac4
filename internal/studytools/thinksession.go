package studytools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eeshamoona/thinklock/internal/render"
	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// ThinkSessionCreateTool handles the thinksession_create MCP tool.
type ThinkSessionCreateTool struct {
	store *store.Store
}

// NewThinkSessionCreateTool creates a ThinkSessionCreateTool.
func NewThinkSessionCreateTool(s *store.Store) *ThinkSessionCreateTool {
	return &ThinkSessionCreateTool{store: s}
}

// Definition returns the MCP tool definition for thinksession_create.
func (t *ThinkSessionCreateTool) Definition() mcp.Tool {
	return mcp.NewTool("thinksession_create",
		mcp.WithDescription("Schedule a study session inside a think folder."),
		mcp.WithNumber("thinkfolder_id",
			mcp.Required(),
			mcp.Description("Owning think folder ID"),
		),
		mcp.WithString("title", mcp.Required(), mcp.Description("Session title")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date as YYYY-MM-DD")),
		mcp.WithString("start_time", mcp.Required(), mcp.Description("Start time as HH:MM")),
		mcp.WithString("end_time", mcp.Required(), mcp.Description("End time as HH:MM")),
		mcp.WithString("location", mcp.Description("Where the session takes place")),
	)
}

// Handle processes the thinksession_create tool call.
func (t *ThinkSessionCreateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folderID, err := idArg(req, "thinkfolder_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	date := req.GetString("date", "")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return mcp.NewToolResultError("'date' must be YYYY-MM-DD"), nil
	}
	start := req.GetString("start_time", "")
	end := req.GetString("end_time", "")
	start, err = store.NormalizeClock(start)
	if err != nil || start == "" {
		return mcp.NewToolResultError("'start_time' must be HH:MM"), nil
	}
	end, err = store.NormalizeClock(end)
	if err != nil || end == "" {
		return mcp.NewToolResultError("'end_time' must be HH:MM"), nil
	}

	id, err := t.store.CreateThinkSession(store.CreateThinkSessionParams{
		ThinkFolderID: folderID,
		Title:         req.GetString("title", ""),
		Location:      req.GetString("location", ""),
		Date:          date,
		StartTime:     start,
		EndTime:       end,
	})
	if err != nil {
		return storeErrorResult(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Think session scheduled on %s %s-%s\nID: %d", date, start, end, id)), nil
}

// ─── ThinkSessionScheduleTool ───────────────────────────────────────────────

// ThinkSessionScheduleTool handles the thinksession_schedule MCP tool.
type ThinkSessionScheduleTool struct {
	store *store.Store
}

// NewThinkSessionScheduleTool creates a ThinkSessionScheduleTool.
func NewThinkSessionScheduleTool(s *store.Store) *ThinkSessionScheduleTool {
	return &ThinkSessionScheduleTool{store: s}
}

// Definition returns the MCP tool definition for thinksession_schedule.
func (t *ThinkSessionScheduleTool) Definition() mcp.Tool {
	return mcp.NewTool("thinksession_schedule",
		mcp.WithDescription("Show the sessions scheduled on a date, earliest first."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date as YYYY-MM-DD"),
		),
	)
}

// Handle processes the thinksession_schedule tool call.
func (t *ThinkSessionScheduleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := req.GetString("date", "")
	if date == "" {
		return mcp.NewToolResultError("'date' is required"), nil
	}

	sessions, err := t.store.ListThinkSessionsByDate(date)
	if err != nil {
		return storeErrorResult(err), nil
	}
	if len(sessions) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("Nothing scheduled on %s.", date)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Schedule for %s (%d sessions)\n\n", date, len(sessions))
	for _, s := range sessions {
		fmt.Fprintf(&b, "- [%d] %s-%s %s", s.ID, s.StartTime, s.EndTime, s.Title)
		if s.Location != "" {
			fmt.Fprintf(&b, " @ %s", s.Location)
		}
		fmt.Fprintf(&b, " (folder %d, %s)\n", s.ThinkFolderID, s.Icon)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// ─── HeatmapTool ────────────────────────────────────────────────────────────

// HeatmapTool handles the heatmap MCP tool.
type HeatmapTool struct {
	store *store.Store
}

// NewHeatmapTool creates a HeatmapTool.
func NewHeatmapTool(s *store.Store) *HeatmapTool {
	return &HeatmapTool{store: s}
}

// Definition returns the MCP tool definition for heatmap.
func (t *HeatmapTool) Definition() mcp.Tool {
	return mcp.NewTool("heatmap",
		mcp.WithDescription("Hours studied per date for a think folder in one year, as a grid plus raw data."),
		mcp.WithNumber("thinkfolder_id",
			mcp.Required(),
			mcp.Description("Think folder ID"),
		),
		mcp.WithNumber("year",
			mcp.Description("Calendar year (default: current year)"),
		),
	)
}

// Handle processes the heatmap tool call.
func (t *HeatmapTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folderID, err := idArg(req, "thinkfolder_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	year := time.Now().Year()
	if v, ok := req.GetArguments()["year"]; ok && v != nil {
		year, err = cast.ToIntE(v)
		if err != nil {
			return mcp.NewToolResultError("'year' must be an integer"), nil
		}
	}

	cells, err := t.store.Heatmap(folderID, year)
	if err != nil {
		return storeErrorResult(err), nil
	}

	var b strings.Builder
	b.WriteString(render.HeatmapString(cells, year, render.Options{
		Title: fmt.Sprintf("Think folder %d, %d", folderID, year),
		Plain: true,
	}))
	data, err := encodeJSON(map[string]any{
		"heatmapData": cells,
		"max_hours":   store.MaxHours(cells),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b.WriteString("\n")
	b.WriteString(data)
	return mcp.NewToolResultText(b.String()), nil
}
