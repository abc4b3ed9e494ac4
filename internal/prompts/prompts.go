// Package prompts implements MCP prompt handlers for study workflows.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to run a sequence of studytools calls. Unlike tools,
// prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// PlanDayPrompt handles the plan-day MCP prompt.
type PlanDayPrompt struct {
	now func() time.Time
}

// NewPlanDayPrompt creates a PlanDayPrompt.
func NewPlanDayPrompt() *PlanDayPrompt {
	return &PlanDayPrompt{now: time.Now}
}

// Definition returns the MCP prompt definition for registration.
func (p *PlanDayPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("plan-day",
		mcp.WithPromptDescription(
			"Walk through the study sessions and open action items for a day.",
		),
		mcp.WithArgument("date",
			mcp.ArgumentDescription("Day to plan as YYYY-MM-DD. Default: today"),
		),
	)
}

// Handle processes the plan-day prompt request.
func (p *PlanDayPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	date := p.now().Format("2006-01-02")
	if d, ok := req.Params.Arguments["date"]; ok && d != "" {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, fmt.Errorf("date %q is not YYYY-MM-DD", d)
		}
		date = d
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Study plan for %s", date),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Help me plan my studying for %s.\n\n"+
						"Please:\n"+
						"1. Run `thinksession_schedule` with date='%s' and show the sessions in time order\n"+
						"2. For each session, run `actionitem_list` with its thinksession_id and list what is still open\n"+
						"3. Point out gaps or overlaps in the schedule\n"+
						"4. Offer to schedule a new session with `thinksession_create` if I have free time",
					date, date,
				)),
			},
		},
	}, nil
}

// ─── ReviewSessionPrompt ────────────────────────────────────────────────────

// ReviewSessionPrompt handles the review-session MCP prompt.
type ReviewSessionPrompt struct{}

// NewReviewSessionPrompt creates a ReviewSessionPrompt.
func NewReviewSessionPrompt() *ReviewSessionPrompt {
	return &ReviewSessionPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReviewSessionPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("review-session",
		mcp.WithPromptDescription(
			"Quiz me on a session's flashcards and recap its notes and activity.",
		),
		mcp.WithArgument("thinksession_id",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Think session to review"),
		),
	)
}

// Handle processes the review-session prompt request.
func (p *ReviewSessionPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	id := req.Params.Arguments["thinksession_id"]
	if id == "" {
		return nil, fmt.Errorf("thinksession_id is required")
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Review think session %s", id),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Let's review think session %s.\n\n"+
						"Please:\n"+
						"1. Run `notes_read` and give me a short recap of my notes\n"+
						"2. Run `studyevent_list` and summarize what I got done\n"+
						"3. Run `flashcard_list` with status='new', then 'review', and quiz me one card at a time. "+
						"Show the front, wait for my answer, then reveal the back. "+
						"Record how I did with `flashcard_status` (review if I missed it, learned if I got it)\n"+
						"4. Suggest new flashcards from my notes and add the ones I accept with `flashcard_create`",
					id,
				)),
			},
		},
	}, nil
}
