package store

import (
	"database/sql"
)

const tableActionItem = "actionitem"

// ActionItem is a todo scoped to a folder and optionally to one session.
type ActionItem struct {
	ID             int64  `json:"id"`
	ThinkSessionID *int64 `json:"thinksession_id"`
	ThinkFolderID  int64  `json:"thinkfolder_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Completed      bool   `json:"completed"`
	CreatedAt      string `json:"created_at"`
}

// CreateActionItemParams holds the input for creating an action item.
type CreateActionItemParams struct {
	ThinkSessionID *int64 `json:"thinksession_id,omitempty"`
	ThinkFolderID  int64  `json:"thinkfolder_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
}

// ActionItemPatch holds partial update fields for an action item.
// Completion is changed only through ToggleActionItem. ClearThinkSession
// detaches the item from its session and wins over ThinkSessionID.
type ActionItemPatch struct {
	ThinkSessionID    *int64  `json:"thinksession_id,omitempty"`
	ClearThinkSession bool    `json:"clear_thinksession,omitempty"`
	ThinkFolderID     *int64  `json:"thinkfolder_id,omitempty"`
	Title             *string `json:"title,omitempty"`
	Description       *string `json:"description,omitempty"`
}

const actionItemColumns = `id, thinksession_id, thinkfolder_id, title, description, completed, created_at`

func scanActionItem(row interface{ Scan(...any) error }) (ActionItem, error) {
	var a ActionItem
	err := row.Scan(&a.ID, &a.ThinkSessionID, &a.ThinkFolderID, &a.Title, &a.Description, &a.Completed, &a.CreatedAt)
	return a, err
}

func (s *Store) queryActionItems(op, query string, args ...any) ([]ActionItem, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, failure(op, err)
	}
	defer func() { _ = rows.Close() }()

	items := []ActionItem{}
	for rows.Next() {
		a, err := scanActionItem(rows)
		if err != nil {
			return nil, failure(op+": scan", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, failure(op, err)
	}
	return items, nil
}

// ListActionItems returns every action item.
func (s *Store) ListActionItems() ([]ActionItem, error) {
	return s.queryActionItems("list action items",
		`SELECT `+actionItemColumns+` FROM actionitem ORDER BY id ASC`)
}

// GetActionItem retrieves an action item by ID.
func (s *Store) GetActionItem(id int64) (*ActionItem, error) {
	a, err := scanActionItem(s.db.QueryRow(
		`SELECT `+actionItemColumns+` FROM actionitem WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, NewNotFound("ActionItem", id)
	}
	if err != nil {
		return nil, failure("get action item", err)
	}
	return &a, nil
}

// ListActionItemsByThinkFolder returns the action items of an existing folder.
func (s *Store) ListActionItemsByThinkFolder(folderID int64) ([]ActionItem, error) {
	if err := requireRow(s.db, tableThinkFolder, "ThinkFolder", folderID); err != nil {
		return nil, err
	}
	return s.queryActionItems("list action items by folder",
		`SELECT `+actionItemColumns+` FROM actionitem WHERE thinkfolder_id = ? ORDER BY id ASC`, folderID)
}

// ListActionItemsByThinkSession returns the action items of an existing session.
func (s *Store) ListActionItemsByThinkSession(sessionID int64) ([]ActionItem, error) {
	if err := requireRow(s.db, tableThinkSession, "ThinkSession", sessionID); err != nil {
		return nil, err
	}
	return s.queryActionItems("list action items by session",
		`SELECT `+actionItemColumns+` FROM actionitem WHERE thinksession_id = ? ORDER BY id ASC`, sessionID)
}

// CreateActionItem inserts an action item and its actionitem_created event
// in one transaction. If either insert fails neither row is kept.
func (s *Store) CreateActionItem(p CreateActionItemParams) (int64, error) {
	if err := requireRow(s.db, tableThinkFolder, "ThinkFolder", p.ThinkFolderID); err != nil {
		return 0, err
	}
	if p.ThinkSessionID != nil {
		if err := requireRow(s.db, tableThinkSession, "ThinkSession", *p.ThinkSessionID); err != nil {
			return 0, err
		}
	}

	tx, err := s.beginTxHook()
	if err != nil {
		return 0, failure("create action item: begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := s.execHook(tx,
		`INSERT INTO actionitem (thinksession_id, thinkfolder_id, title, description)
		 VALUES (?, ?, ?, ?)`,
		p.ThinkSessionID, p.ThinkFolderID, p.Title, p.Description,
	)
	if err != nil {
		return 0, failure("create action item", err)
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		return 0, failuref("create action item: failed to create action item")
	}

	if _, err := s.insertStudyEvent(tx, p.ThinkSessionID, AppendStudyEventParams{
		EventType:   EventActionItemCreated,
		Details:     p.Title,
		ReferenceID: &id,
	}); err != nil {
		return 0, err
	}

	if err := s.commitHook(tx); err != nil {
		return 0, failure("create action item: commit", err)
	}
	return id, nil
}

// UpdateActionItem applies the supplied fields to an action item.
func (s *Store) UpdateActionItem(id int64, p ActionItemPatch) error {
	var pt patch
	if p.ClearThinkSession {
		pt.set(colThinkSessionID, nil)
	} else {
		setIf(&pt, colThinkSessionID, p.ThinkSessionID)
	}
	setIf(&pt, colThinkFolderID, p.ThinkFolderID)
	setIf(&pt, colTitle, p.Title)
	setIf(&pt, colDescription, p.Description)
	return s.applyPatch(tableActionItem, "update action item", id, &pt)
}

// ToggleActionItem flips an item's completed flag and records an
// actionitem_completed or actionitem_unfinished event in the same
// transaction. It returns the new completed value.
//
// The flip is a single UPDATE ... RETURNING, so two concurrent toggles see
// different post-states and log one event each.
func (s *Store) ToggleActionItem(id int64) (bool, error) {
	tx, err := s.beginTxHook()
	if err != nil {
		return false, failure("toggle action item: begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var (
		completed   bool
		sessionID   *int64
		description string
	)
	err = tx.QueryRow(
		`UPDATE actionitem SET completed = 1 - completed WHERE id = ?
		 RETURNING completed, thinksession_id, description`, id,
	).Scan(&completed, &sessionID, &description)
	if err == sql.ErrNoRows {
		return false, NewNotFound("ActionItem", id)
	}
	if err != nil {
		return false, failure("toggle action item", err)
	}

	eventType := EventActionItemUnfinished
	if completed {
		eventType = EventActionItemCompleted
	}
	ref := id
	if _, err := s.insertStudyEvent(tx, sessionID, AppendStudyEventParams{
		EventType:   eventType,
		Details:     description,
		ReferenceID: &ref,
	}); err != nil {
		return false, err
	}

	if err := s.commitHook(tx); err != nil {
		return false, failure("toggle action item: commit", err)
	}
	return completed, nil
}
