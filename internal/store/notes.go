package store

import (
	"database/sql"
	"fmt"
)

// NotesCreated reports the outcome of CreateNotes.
type NotesCreated struct {
	ID      int64  `json:"id"`
	Existed bool   `json:"existed"`
	Message string `json:"message"`
}

// GetNotes returns the notes content of a session.
func (s *Store) GetNotes(sessionID int64) (string, error) {
	if err := requireRow(s.db, tableThinkSession, "ThinkSession", sessionID); err != nil {
		return "", err
	}

	var content string
	err := s.db.QueryRow(`SELECT content FROM notes WHERE thinksession_id = ?`, sessionID).Scan(&content)
	if err == sql.ErrNoRows {
		return "", &Error{
			Kind:    KindNotFound,
			Message: fmt.Sprintf("Notes for ThinkSession with id %d not found", sessionID),
		}
	}
	if err != nil {
		return "", failure("get notes", err)
	}
	return content, nil
}

// CreateNotes creates the empty notes row for a session. A session has at
// most one notes row; creating it again returns the existing id.
func (s *Store) CreateNotes(sessionID int64) (*NotesCreated, error) {
	if err := requireRow(s.db, tableThinkSession, "ThinkSession", sessionID); err != nil {
		return nil, err
	}

	var existingID int64
	err := s.db.QueryRow(`SELECT id FROM notes WHERE thinksession_id = ?`, sessionID).Scan(&existingID)
	if err == nil {
		return &NotesCreated{
			ID:      existingID,
			Existed: true,
			Message: fmt.Sprintf("Notes for ThinkSession with id %d already exist", sessionID),
		}, nil
	}
	if err != sql.ErrNoRows {
		return nil, failure("create notes", err)
	}

	res, err := s.execHook(s.db,
		`INSERT INTO notes (thinksession_id, content) VALUES (?, '')`, sessionID,
	)
	if err != nil {
		return nil, failure("create notes", err)
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		return nil, failuref("create notes: failed to create notes")
	}
	return &NotesCreated{
		ID:      id,
		Message: fmt.Sprintf("Notes created with id %d", id),
	}, nil
}

// UpdateNotes replaces the notes content of a session. It fails, rather
// than reporting not-found, when the session has no notes row.
func (s *Store) UpdateNotes(sessionID int64, content string) error {
	res, err := s.execHook(s.db,
		`UPDATE notes SET content = ? WHERE thinksession_id = ?`, content, sessionID,
	)
	if err != nil {
		return failure("update notes", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return failure("update notes: rows affected", err)
	}
	if n == 0 {
		return failuref("update notes: failed to update notes for ThinkSession with id %d", sessionID)
	}
	return nil
}
