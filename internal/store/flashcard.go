package store

import (
	"database/sql"
	"fmt"
)

const tableFlashcard = "flashcard"

// FlashcardStatus is the review state of a card.
type FlashcardStatus string

const (
	StatusNew     FlashcardStatus = "new"
	StatusReview  FlashcardStatus = "review"
	StatusLearned FlashcardStatus = "learned"
)

// Valid reports whether st is one of the known statuses.
func (st FlashcardStatus) Valid() bool {
	switch st {
	case StatusNew, StatusReview, StatusLearned:
		return true
	}
	return false
}

// Flashcard is a front/back review card attached to a session.
type Flashcard struct {
	ID             int64           `json:"id"`
	Front          string          `json:"front"`
	Back           string          `json:"back"`
	Status         FlashcardStatus `json:"status"`
	ThinkSessionID int64           `json:"thinksession_id"`
	ThinkFolderID  int64           `json:"thinkfolder_id"`
}

// FlashcardContent is the caller-editable part of a flashcard.
type FlashcardContent struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// ListFlashcards returns the flashcards of an existing session.
func (s *Store) ListFlashcards(sessionID int64) ([]Flashcard, error) {
	if err := requireRow(s.db, tableThinkSession, "ThinkSession", sessionID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT id, front, back, status, thinksession_id, thinkfolder_id
		 FROM flashcard WHERE thinksession_id = ? ORDER BY id ASC`, sessionID,
	)
	if err != nil {
		return nil, failure("list flashcards", err)
	}
	defer func() { _ = rows.Close() }()

	cards := []Flashcard{}
	for rows.Next() {
		var c Flashcard
		if err := rows.Scan(&c.ID, &c.Front, &c.Back, &c.Status, &c.ThinkSessionID, &c.ThinkFolderID); err != nil {
			return nil, failure("list flashcards: scan", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, failure("list flashcards", err)
	}
	return cards, nil
}

// CreateFlashcard adds a new-status card to a session. The folder id is
// taken from the session, not from the caller.
func (s *Store) CreateFlashcard(sessionID int64, c FlashcardContent) (int64, error) {
	var folderID int64
	err := s.db.QueryRow(`SELECT thinkfolder_id FROM thinksession WHERE id = ?`, sessionID).Scan(&folderID)
	if err == sql.ErrNoRows {
		return 0, NewNotFound("ThinkSession", sessionID)
	}
	if err != nil {
		return 0, failure("create flashcard: read session", err)
	}
	if err := requireRow(s.db, tableThinkFolder, "ThinkFolder", folderID); err != nil {
		return 0, err
	}

	res, err := s.execHook(s.db,
		`INSERT INTO flashcard (front, back, status, thinksession_id, thinkfolder_id)
		 VALUES (?, ?, ?, ?, ?)`,
		c.Front, c.Back, string(StatusNew), sessionID, folderID,
	)
	if err != nil {
		return 0, failure("create flashcard", err)
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		return 0, failuref("create flashcard: failed to create flashcard")
	}
	return id, nil
}

// UpdateFlashcard replaces the front and back of a card.
func (s *Store) UpdateFlashcard(id int64, c FlashcardContent) error {
	if err := requireRow(s.db, tableFlashcard, "Flashcard", id); err != nil {
		return err
	}
	return s.execOne("update flashcard",
		`UPDATE flashcard SET front = ?, back = ? WHERE id = ?`, c.Front, c.Back, id)
}

// SetFlashcardStatus moves a card between new, review and learned.
func (s *Store) SetFlashcardStatus(id int64, status FlashcardStatus) error {
	if !status.Valid() {
		return failuref("set flashcard status: invalid status %q", status)
	}
	if err := requireRow(s.db, tableFlashcard, "Flashcard", id); err != nil {
		return err
	}
	return s.execOne("set flashcard status",
		`UPDATE flashcard SET status = ? WHERE id = ?`, string(status), id)
}

// DeleteFlashcard removes a card.
func (s *Store) DeleteFlashcard(id int64) error {
	if err := requireRow(s.db, tableFlashcard, "Flashcard", id); err != nil {
		return err
	}
	return s.execOne("delete flashcard", `DELETE FROM flashcard WHERE id = ?`, id)
}

// execOne runs a statement that must affect at least one row.
func (s *Store) execOne(op, query string, args ...any) error {
	res, err := s.execHook(s.db, query, args...)
	if err != nil {
		return failure(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return failure(op+": rows affected", err)
	}
	if n == 0 {
		return failuref("%s: no rows changed", op)
	}
	return nil
}

// FlashcardMessage formats the success message returned for card writes.
func FlashcardMessage(verb string, id int64) string {
	return fmt.Sprintf("Flashcard with id %d %s successfully", id, verb)
}
