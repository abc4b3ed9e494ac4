package studytools

import (
	"context"
	"strings"
	"testing"

	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// newTestStore creates a store in a temp directory for testing.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(store.Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// makeReq creates a CallToolRequest with the given arguments.
func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a tool result.
func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

type handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func call(t *testing.T, h handler, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	result, err := h(context.Background(), makeReq(args))
	if err != nil {
		t.Fatalf("unexpected Go error: %v", err)
	}
	return result
}

func mustOK(t *testing.T, h handler, args map[string]interface{}) string {
	t.Helper()
	result := call(t, h, args)
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(result))
	}
	return resultText(result)
}

func mustFail(t *testing.T, h handler, args map[string]interface{}, want string) {
	t.Helper()
	result := call(t, h, args)
	if !result.IsError {
		t.Fatalf("expected tool error, got: %s", resultText(result))
	}
	if !strings.Contains(resultText(result), want) {
		t.Errorf("error %q should contain %q", resultText(result), want)
	}
}

// seed creates folder 1 and session 1 (2023-10-10 10:00-11:00).
func seed(t *testing.T, s *store.Store) {
	t.Helper()
	if _, err := s.CreateThinkFolder(store.CreateThinkFolderParams{Name: "Math", Color: "#0000FF"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateThinkSession(store.CreateThinkSessionParams{
		ThinkFolderID: 1, Title: "Algebra", Location: "Lib",
		Date: "2023-10-10", StartTime: "10:00", EndTime: "11:00",
	}); err != nil {
		t.Fatal(err)
	}
}

// ─── Definitions ────────────────────────────────────────────────────────────

func TestDefinitions(t *testing.T) {
	s := newTestStore(t)
	tests := []struct {
		def  mcp.Tool
		name string
	}{
		{NewThinkFolderListTool(s).Definition(), "thinkfolder_list"},
		{NewThinkFolderCreateTool(s).Definition(), "thinkfolder_create"},
		{NewThinkSessionCreateTool(s).Definition(), "thinksession_create"},
		{NewThinkSessionScheduleTool(s).Definition(), "thinksession_schedule"},
		{NewActionItemCreateTool(s).Definition(), "actionitem_create"},
		{NewActionItemToggleTool(s).Definition(), "actionitem_toggle"},
		{NewActionItemListTool(s).Definition(), "actionitem_list"},
		{NewFlashcardCreateTool(s).Definition(), "flashcard_create"},
		{NewFlashcardListTool(s).Definition(), "flashcard_list"},
		{NewFlashcardStatusTool(s).Definition(), "flashcard_status"},
		{NewNotesReadTool(s).Definition(), "notes_read"},
		{NewNotesWriteTool(s).Definition(), "notes_write"},
		{NewStudyEventListTool(s).Definition(), "studyevent_list"},
		{NewHeatmapTool(s).Definition(), "heatmap"},
	}
	for _, tt := range tests {
		if tt.def.Name != tt.name {
			t.Errorf("tool name = %q, want %q", tt.def.Name, tt.name)
		}
		if tt.def.Description == "" {
			t.Errorf("%s has no description", tt.name)
		}
	}
}

// ─── Argument helpers ───────────────────────────────────────────────────────

func TestIDArg(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		want    int64
		wantErr string
	}{
		{"json number", map[string]interface{}{"id": float64(7)}, 7, ""},
		{"numeric string", map[string]interface{}{"id": "12"}, 12, ""},
		{"missing", map[string]interface{}{}, 0, "'id' is required"},
		{"null", map[string]interface{}{"id": nil}, 0, "'id' is required"},
		{"not a number", map[string]interface{}{"id": "abc"}, 0, "must be an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idArg(makeReq(tt.args), "id")
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("idArg = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStoreErrorResult_CarriesStatus(t *testing.T) {
	r := storeErrorResult(store.NewNotFound("ThinkSession", int64(9)))
	if !r.IsError {
		t.Fatal("expected error result")
	}
	if got := resultText(r); got != "ThinkSession with id 9 not found (status 404)" {
		t.Errorf("text = %q", got)
	}
}

// ─── Think folders ──────────────────────────────────────────────────────────

func TestThinkFolderTools(t *testing.T) {
	s := newTestStore(t)
	list := NewThinkFolderListTool(s).Handle
	create := NewThinkFolderCreateTool(s).Handle

	if text := mustOK(t, list, nil); !strings.Contains(text, "No think folders") {
		t.Errorf("empty list text = %q", text)
	}

	mustFail(t, create, map[string]interface{}{"color": "#fff"}, "'name' is required")
	mustFail(t, create, map[string]interface{}{"name": "Math"}, "'color' is required")

	text := mustOK(t, create, map[string]interface{}{"name": "Math", "color": "#0000FF", "icon": "calculator"})
	if !strings.Contains(text, "ID: 1") {
		t.Errorf("create text = %q", text)
	}

	f, err := s.GetThinkFolder(1)
	if err != nil {
		t.Fatal(err)
	}
	if f.Icon != "calculator" {
		t.Errorf("icon = %q, want calculator", f.Icon)
	}
	if f.Description != nil {
		t.Errorf("omitted description = %q, want nil", *f.Description)
	}

	mustOK(t, create, map[string]interface{}{"name": "Art", "color": "#FF0000", "description": ""})
	f, err = s.GetThinkFolder(2)
	if err != nil {
		t.Fatal(err)
	}
	if f.Description == nil || *f.Description != "" {
		t.Errorf("empty description = %v, want empty string", f.Description)
	}
	if text := mustOK(t, list, nil); !strings.Contains(text, `"name": "Math"`) {
		t.Errorf("list text = %q", text)
	}
}

// ─── Think sessions ─────────────────────────────────────────────────────────

func TestThinkSessionCreate_Validation(t *testing.T) {
	s := newTestStore(t)
	create := NewThinkSessionCreateTool(s).Handle
	base := func() map[string]interface{} {
		return map[string]interface{}{
			"thinkfolder_id": float64(1), "title": "Algebra",
			"date": "2023-10-10", "start_time": "10:00", "end_time": "11:00",
		}
	}

	args := base()
	args["date"] = "10/10/2023"
	mustFail(t, create, args, "'date' must be YYYY-MM-DD")

	args = base()
	args["end_time"] = "11am"
	mustFail(t, create, args, "'end_time' must be HH:MM")

	mustFail(t, create, base(), "ThinkFolder with id 1 not found")

	if _, err := s.CreateThinkFolder(store.CreateThinkFolderParams{Name: "Math", Color: "#0000FF"}); err != nil {
		t.Fatal(err)
	}
	args = base()
	args["start_time"] = "9:00"
	if text := mustOK(t, create, args); !strings.Contains(text, "09:00-11:00") {
		t.Errorf("start time should be zero-padded: %s", text)
	}
}

func TestThinkSessionSchedule(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateThinkFolder(store.CreateThinkFolderParams{Name: "Math", Color: "#0000FF"}); err != nil {
		t.Fatal(err)
	}
	create := NewThinkSessionCreateTool(s).Handle
	schedule := NewThinkSessionScheduleTool(s).Handle

	mustOK(t, create, map[string]interface{}{
		"thinkfolder_id": float64(1), "title": "Late", "location": "Home",
		"date": "2023-10-10", "start_time": "15:00", "end_time": "16:00",
	})
	mustOK(t, create, map[string]interface{}{
		"thinkfolder_id": "1", "title": "Early",
		"date": "2023-10-10", "start_time": "08:00", "end_time": "09:00",
	})

	text := mustOK(t, schedule, map[string]interface{}{"date": "2023-10-10"})
	early := strings.Index(text, "Early")
	late := strings.Index(text, "Late @ Home")
	if early < 0 || late < 0 || early > late {
		t.Errorf("schedule not ordered by start time:\n%s", text)
	}
	if text := mustOK(t, schedule, map[string]interface{}{"date": "2023-10-11"}); !strings.Contains(text, "Nothing scheduled") {
		t.Errorf("empty schedule text = %q", text)
	}
}

func TestHeatmapTool(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	if _, err := s.CreateThinkSession(store.CreateThinkSessionParams{
		ThinkFolderID: 1, Date: "2023-10-10", StartTime: "11:00", EndTime: "13:00",
	}); err != nil {
		t.Fatal(err)
	}

	text := mustOK(t, NewHeatmapTool(s).Handle, map[string]interface{}{"thinkfolder_id": float64(1), "year": float64(2023)})
	for _, want := range []string{`"date": "2023-10-10"`, `"total_hours": 3`, `"max_hours": 3`, "1 study days"} {
		if !strings.Contains(text, want) {
			t.Errorf("heatmap output missing %q:\n%s", want, text)
		}
	}

	mustFail(t, NewHeatmapTool(s).Handle, map[string]interface{}{"thinkfolder_id": float64(1), "year": "next"}, "'year' must be an integer")
}

// ─── Action items ───────────────────────────────────────────────────────────

func TestActionItemTools(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	create := NewActionItemCreateTool(s).Handle
	toggle := NewActionItemToggleTool(s).Handle
	list := NewActionItemListTool(s).Handle

	mustFail(t, create, map[string]interface{}{"thinkfolder_id": float64(1)}, "'title' is required")
	mustFail(t, create, map[string]interface{}{"thinkfolder_id": float64(1), "thinksession_id": float64(5), "title": "x"}, "ThinkSession with id 5 not found")

	text := mustOK(t, create, map[string]interface{}{
		"thinkfolder_id": float64(1), "thinksession_id": float64(1),
		"title": "Read ch.1", "description": "desc",
	})
	if !strings.Contains(text, "ID: 1") {
		t.Errorf("create text = %q", text)
	}
	mustOK(t, create, map[string]interface{}{"thinkfolder_id": float64(1), "title": "Folder-wide"})

	if text := mustOK(t, toggle, map[string]interface{}{"id": float64(1)}); text != "Action item 1 marked done" {
		t.Errorf("toggle text = %q", text)
	}
	mustFail(t, toggle, map[string]interface{}{"id": float64(99)}, "ActionItem with id 99 not found")

	text = mustOK(t, list, map[string]interface{}{"thinksession_id": float64(1)})
	if !strings.Contains(text, "[x] #1 Read ch.1: desc") || strings.Contains(text, "Folder-wide") {
		t.Errorf("session list = %q", text)
	}
	text = mustOK(t, list, map[string]interface{}{"thinkfolder_id": float64(1)})
	if !strings.Contains(text, "1 of 2 done") {
		t.Errorf("folder list = %q", text)
	}
	mustFail(t, list, map[string]interface{}{"thinkfolder_id": float64(3)}, "ThinkFolder with id 3 not found")
}

// ─── Flashcards ─────────────────────────────────────────────────────────────

func TestFlashcardTools(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	create := NewFlashcardCreateTool(s).Handle
	list := NewFlashcardListTool(s).Handle

	mustFail(t, create, map[string]interface{}{"thinksession_id": float64(1), "front": "Q"}, "'front' and 'back' are required")
	mustFail(t, create, map[string]interface{}{"thinksession_id": float64(2), "front": "Q", "back": "A"}, "ThinkSession with id 2 not found")

	if text := mustOK(t, create, map[string]interface{}{"thinksession_id": float64(1), "front": "2+2", "back": "4"}); text != "Flashcard with id 1 created successfully" {
		t.Errorf("create text = %q", text)
	}
	mustOK(t, create, map[string]interface{}{"thinksession_id": float64(1), "front": "3+3", "back": "6"})
	if err := s.SetFlashcardStatus(2, store.StatusLearned); err != nil {
		t.Fatal(err)
	}

	text := mustOK(t, list, map[string]interface{}{"thinksession_id": float64(1), "status": "learned"})
	if !strings.Contains(text, `"front": "3+3"`) || strings.Contains(text, `"front": "2+2"`) {
		t.Errorf("filtered list = %s", text)
	}
	mustFail(t, list, map[string]interface{}{"thinksession_id": float64(1), "status": "mastered"}, "'status' must be")
}

func TestFlashcardStatusTool(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	status := NewFlashcardStatusTool(s).Handle
	id, err := s.CreateFlashcard(1, store.FlashcardContent{Front: "2+2", Back: "4"})
	if err != nil {
		t.Fatal(err)
	}

	mustFail(t, status, map[string]interface{}{"status": "learned"}, "'id' is required")
	mustFail(t, status, map[string]interface{}{"id": float64(id), "status": "mastered"}, "'status' must be")
	mustFail(t, status, map[string]interface{}{"id": float64(99), "status": "review"}, "Flashcard with id 99 not found")

	if text := mustOK(t, status, map[string]interface{}{"id": float64(id), "status": "review"}); text != "Flashcard with id 1 marked review successfully" {
		t.Errorf("status text = %q", text)
	}
	cards, err := s.ListFlashcards(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 1 || cards[0].Status != store.StatusReview {
		t.Errorf("cards = %+v, want one card in review", cards)
	}
}

// ─── Notes ──────────────────────────────────────────────────────────────────

func TestNotesTools(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	read := NewNotesReadTool(s).Handle
	write := NewNotesWriteTool(s).Handle

	mustFail(t, read, map[string]interface{}{"thinksession_id": float64(1)}, "Notes for ThinkSession with id 1 not found")
	mustFail(t, write, map[string]interface{}{"thinksession_id": float64(1)}, "'content' is required")
	mustFail(t, write, map[string]interface{}{"thinksession_id": float64(8), "content": "x"}, "ThinkSession with id 8 not found")

	mustOK(t, write, map[string]interface{}{"thinksession_id": float64(1), "content": "first"})
	mustOK(t, write, map[string]interface{}{"thinksession_id": float64(1), "content": "second"})

	if text := mustOK(t, read, map[string]interface{}{"thinksession_id": float64(1)}); text != "second" {
		t.Errorf("notes = %q, want second", text)
	}

	created, err := s.CreateNotes(1)
	if err != nil {
		t.Fatal(err)
	}
	if !created.Existed || created.ID != 1 {
		t.Errorf("CreateNotes after write = %+v, want existing id 1", created)
	}
}

// ─── Study events ───────────────────────────────────────────────────────────

func TestStudyEventListTool(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	list := NewStudyEventListTool(s).Handle

	if text := mustOK(t, list, map[string]interface{}{"thinksession_id": float64(1)}); text != "No study events yet." {
		t.Errorf("empty feed = %q", text)
	}

	sid := int64(1)
	if _, err := s.CreateActionItem(store.CreateActionItemParams{ThinkSessionID: &sid, ThinkFolderID: 1, Title: "Read", Description: "ch.1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ToggleActionItem(1); err != nil {
		t.Fatal(err)
	}

	text := mustOK(t, list, map[string]interface{}{"thinksession_id": float64(1)})
	created := strings.Index(text, store.EventActionItemCreated)
	completed := strings.Index(text, store.EventActionItemCompleted)
	if created < 0 || completed < 0 || created > completed {
		t.Errorf("feed order wrong:\n%s", text)
	}
	mustFail(t, list, map[string]interface{}{"thinksession_id": float64(4)}, "ThinkSession with id 4 not found")
}
