// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it opens the store and injects it into
// the tools, prompts and resources that depend on it. No business logic
// lives here, only wiring.
package server

import (
	"context"
	"fmt"
	"log"

	"github.com/eeshamoona/thinklock/internal/prompts"
	"github.com/eeshamoona/thinklock/internal/resources"
	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/eeshamoona/thinklock/internal/studytools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// tool is the shape shared by every studytools handler.
type tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// New creates and configures the MCP server with all tools, prompts,
// and resources registered against a store opened from cfg.
//
// The returned cleanup function closes the store's database connection
// and must be called on shutdown (typically via defer). It is always
// non-nil and safe to call even when New fails.
func New(cfg store.Config) (*server.MCPServer, func(), error) {
	st, err := store.New(cfg)
	if err != nil {
		return nil, noop, fmt.Errorf("opening store: %w", err)
	}
	cleanup := func() {
		if err := st.Close(); err != nil {
			log.Printf("WARNING: store close: %v", err)
		}
	}
	return NewWithStore(st), cleanup, nil
}

// NewWithStore builds the MCP server around an already open store.
func NewWithStore(st *store.Store) *server.MCPServer {
	s := server.NewMCPServer(
		"thinklock",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	for _, t := range tools(st) {
		s.AddTool(t.Definition(), t.Handle)
	}

	// --- Register prompts ---

	planDay := prompts.NewPlanDayPrompt()
	s.AddPrompt(planDay.Definition(), planDay.Handle)

	reviewSession := prompts.NewReviewSessionPrompt()
	s.AddPrompt(reviewSession.Definition(), reviewSession.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(st)
	s.AddResource(resourceHandler.FoldersResource(), resourceHandler.HandleFolders)

	return s
}

// tools lists every study tool in registration order.
func tools(st *store.Store) []tool {
	return []tool{
		// --- Folders & sessions ---
		studytools.NewThinkFolderListTool(st),
		studytools.NewThinkFolderCreateTool(st),
		studytools.NewThinkSessionCreateTool(st),
		studytools.NewThinkSessionScheduleTool(st),
		studytools.NewHeatmapTool(st),

		// --- Action items ---
		studytools.NewActionItemCreateTool(st),
		studytools.NewActionItemToggleTool(st),
		studytools.NewActionItemListTool(st),

		// --- Review material ---
		studytools.NewFlashcardCreateTool(st),
		studytools.NewFlashcardListTool(st),
		studytools.NewFlashcardStatusTool(st),
		studytools.NewNotesReadTool(st),
		studytools.NewNotesWriteTool(st),

		// --- Activity ---
		studytools.NewStudyEventListTool(st),
	}
}

// noop is the cleanup returned when the store never opened.
func noop() {}

// serverInstructions tells the AI how to use ThinkLock.
func serverInstructions() string {
	return `You have access to ThinkLock, a personal study planner.

## Model

- A think folder is a subject area (e.g. "Linear Algebra").
- A think session is a scheduled study block inside a folder, with a date and a start/end time.
- Action items are todos. They always belong to a folder and optionally to one session.
- Each session has one notes document, a deck of flashcards, and an activity feed of study events.

## How to help

- Before creating anything, call thinkfolder_list to find the right folder id.
- Use thinksession_schedule to see what is planned on a date.
- When the user finishes a task, call actionitem_toggle. Creation and toggles are logged automatically; do not log them again.
- While quizzing flashcards, record each result with flashcard_status.
- notes_write replaces the whole document. Call notes_read first and send back the merged text.
- Use heatmap to show how consistently the user has studied a subject this year.`
}
