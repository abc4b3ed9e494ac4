package store_test

import (
	"strings"
	"testing"

	"github.com/eeshamoona/thinklock/internal/store"
)

func TestNotes_CreateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	fid := mustFolder(t, s, "Math")
	sid := mustSession(t, s, fid, "2023-10-10", "10:00", "11:00")

	first, err := s.CreateNotes(sid)
	if err != nil {
		t.Fatalf("first CreateNotes: %v", err)
	}
	if first.Existed {
		t.Error("first create should not report existing")
	}
	second, err := s.CreateNotes(sid)
	if err != nil {
		t.Fatalf("second CreateNotes: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("ids differ: %d vs %d", first.ID, second.ID)
	}
	if !second.Existed || !strings.Contains(second.Message, "already exist") {
		t.Errorf("second = %+v", second)
	}

	var n int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM notes WHERE thinksession_id = ?`, sid).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("notes rows = %d, want 1", n)
	}
}

func TestNotes_GetAndUpdate(t *testing.T) {
	s := newTestStore(t)
	fid := mustFolder(t, s, "Math")
	sid := mustSession(t, s, fid, "2023-10-10", "10:00", "11:00")

	_, err := s.GetNotes(sid)
	if se := wantKind(t, err, store.KindNotFound); !strings.Contains(se.Message, "Notes") {
		t.Errorf("message = %q", se.Message)
	}

	if _, err := s.CreateNotes(sid); err != nil {
		t.Fatal(err)
	}
	content, err := s.GetNotes(sid)
	if err != nil {
		t.Fatal(err)
	}
	if content != "" {
		t.Errorf("initial content = %q, want empty", content)
	}

	if err := s.UpdateNotes(sid, "# Chapter 1\n- groups"); err != nil {
		t.Fatalf("UpdateNotes: %v", err)
	}
	content, err = s.GetNotes(sid)
	if err != nil {
		t.Fatal(err)
	}
	if content != "# Chapter 1\n- groups" {
		t.Errorf("content = %q", content)
	}
}

func TestNotes_MissingSession(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetNotes(8)
	wantKind(t, err, store.KindNotFound)
	_, err = s.CreateNotes(8)
	wantKind(t, err, store.KindNotFound)
}

func TestNotes_UpdateWithoutRowIsFailure(t *testing.T) {
	s := newTestStore(t)
	fid := mustFolder(t, s, "Math")
	sid := mustSession(t, s, fid, "2023-10-10", "10:00", "11:00")

	err := s.UpdateNotes(sid, "text")
	wantKind(t, err, store.KindFailure)
}
