package studytools

import (
	"context"

	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// FlashcardCreateTool handles the flashcard_create MCP tool.
type FlashcardCreateTool struct {
	store *store.Store
}

// NewFlashcardCreateTool creates a FlashcardCreateTool.
func NewFlashcardCreateTool(s *store.Store) *FlashcardCreateTool {
	return &FlashcardCreateTool{store: s}
}

// Definition returns the MCP tool definition for flashcard_create.
func (t *FlashcardCreateTool) Definition() mcp.Tool {
	return mcp.NewTool("flashcard_create",
		mcp.WithDescription("Add a front/back review card to a think session."),
		mcp.WithNumber("thinksession_id",
			mcp.Required(),
			mcp.Description("Think session ID"),
		),
		mcp.WithString("front",
			mcp.Required(),
			mcp.Description("Prompt side"),
		),
		mcp.WithString("back",
			mcp.Required(),
			mcp.Description("Answer side"),
		),
	)
}

// Handle processes the flashcard_create tool call.
func (t *FlashcardCreateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := idArg(req, "thinksession_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	front := req.GetString("front", "")
	back := req.GetString("back", "")
	if front == "" || back == "" {
		return mcp.NewToolResultError("'front' and 'back' are required"), nil
	}

	id, err := t.store.CreateFlashcard(sessionID, store.FlashcardContent{Front: front, Back: back})
	if err != nil {
		return storeErrorResult(err), nil
	}
	return mcp.NewToolResultText(store.FlashcardMessage("created", id)), nil
}

// ─── FlashcardListTool ──────────────────────────────────────────────────────

// FlashcardListTool handles the flashcard_list MCP tool.
type FlashcardListTool struct {
	store *store.Store
}

// NewFlashcardListTool creates a FlashcardListTool.
func NewFlashcardListTool(s *store.Store) *FlashcardListTool {
	return &FlashcardListTool{store: s}
}

// Definition returns the MCP tool definition for flashcard_list.
func (t *FlashcardListTool) Definition() mcp.Tool {
	return mcp.NewTool("flashcard_list",
		mcp.WithDescription("List the flashcards of a think session with their review status."),
		mcp.WithNumber("thinksession_id",
			mcp.Required(),
			mcp.Description("Think session ID"),
		),
		mcp.WithString("status",
			mcp.Description("Only return cards with this status"),
			mcp.Enum(string(store.StatusNew), string(store.StatusReview), string(store.StatusLearned)),
		),
	)
}

// Handle processes the flashcard_list tool call.
func (t *FlashcardListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := idArg(req, "thinksession_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	status := store.FlashcardStatus(req.GetString("status", ""))
	if status != "" && !status.Valid() {
		return mcp.NewToolResultError("'status' must be new, review or learned"), nil
	}

	cards, err := t.store.ListFlashcards(sessionID)
	if err != nil {
		return storeErrorResult(err), nil
	}
	if status != "" {
		filtered := cards[:0]
		for _, c := range cards {
			if c.Status == status {
				filtered = append(filtered, c)
			}
		}
		cards = filtered
	}
	return jsonResult(cards), nil
}

// ─── FlashcardStatusTool ────────────────────────────────────────────────────

// FlashcardStatusTool handles the flashcard_status MCP tool.
type FlashcardStatusTool struct {
	store *store.Store
}

// NewFlashcardStatusTool creates a FlashcardStatusTool.
func NewFlashcardStatusTool(s *store.Store) *FlashcardStatusTool {
	return &FlashcardStatusTool{store: s}
}

// Definition returns the MCP tool definition for flashcard_status.
func (t *FlashcardStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("flashcard_status",
		mcp.WithDescription("Move a flashcard to new, review or learned after quizzing it."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Flashcard ID"),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("New review status"),
			mcp.Enum(string(store.StatusNew), string(store.StatusReview), string(store.StatusLearned)),
		),
	)
}

// Handle processes the flashcard_status tool call.
func (t *FlashcardStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := idArg(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	status := store.FlashcardStatus(req.GetString("status", ""))
	if !status.Valid() {
		return mcp.NewToolResultError("'status' must be new, review or learned"), nil
	}

	if err := t.store.SetFlashcardStatus(id, status); err != nil {
		return storeErrorResult(err), nil
	}
	return mcp.NewToolResultText(store.FlashcardMessage("marked "+string(status), id)), nil
}
