package store

import "strings"

// Study event types written by the action item repository.
const (
	EventActionItemCreated    = "actionitem_created"
	EventActionItemCompleted  = "actionitem_completed"
	EventActionItemUnfinished = "actionitem_unfinished"
)

// StudyEvent is an append-only activity record within a think session.
type StudyEvent struct {
	ID             int64  `json:"id"`
	ThinkSessionID *int64 `json:"thinksession_id"`
	EventType      string `json:"event_type"`
	Timestamp      string `json:"timestamp"`
	Details        string `json:"details"`
	ReferenceID    *int64 `json:"reference_id"`
}

// AppendStudyEventParams holds the caller-supplied part of a study event.
type AppendStudyEventParams struct {
	EventType   string `json:"event_type"`
	Details     string `json:"details"`
	ReferenceID *int64 `json:"reference_id,omitempty"`
}

// ListStudyEvents returns a session's events oldest first.
func (s *Store) ListStudyEvents(sessionID int64) ([]StudyEvent, error) {
	if err := requireRow(s.db, tableThinkSession, "ThinkSession", sessionID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT id, thinksession_id, event_type, timestamp, details, reference_id
		 FROM studyevents
		 WHERE thinksession_id = ?
		 ORDER BY timestamp ASC, id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, failure("list study events", err)
	}
	defer func() { _ = rows.Close() }()

	events := []StudyEvent{}
	for rows.Next() {
		var e StudyEvent
		if err := rows.Scan(&e.ID, &e.ThinkSessionID, &e.EventType, &e.Timestamp, &e.Details, &e.ReferenceID); err != nil {
			return nil, failure("list study events: scan", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, failure("list study events", err)
	}
	return events, nil
}

// AppendStudyEvent records an event for a session, stamped with the store clock.
func (s *Store) AppendStudyEvent(sessionID int64, p AppendStudyEventParams) (*StudyEvent, error) {
	if strings.TrimSpace(p.EventType) == "" {
		return nil, failuref("append study event: event_type is required")
	}
	if err := requireRow(s.db, tableThinkSession, "ThinkSession", sessionID); err != nil {
		return nil, err
	}

	sid := sessionID
	return s.insertStudyEvent(s.db, &sid, p)
}

// insertStudyEvent writes one event row on db, which may be a transaction.
func (s *Store) insertStudyEvent(db execer, sessionID *int64, p AppendStudyEventParams) (*StudyEvent, error) {
	ts := s.now()
	res, err := s.execHook(db,
		`INSERT INTO studyevents (thinksession_id, event_type, timestamp, details, reference_id)
		 VALUES (?, ?, ?, ?, ?)`,
		sessionID, p.EventType, ts, p.Details, p.ReferenceID,
	)
	if err != nil {
		return nil, failure("append study event", err)
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		return nil, failuref("append study event: failed to create study event")
	}
	return &StudyEvent{
		ID:             id,
		ThinkSessionID: sessionID,
		EventType:      p.EventType,
		Timestamp:      ts,
		Details:        p.Details,
		ReferenceID:    p.ReferenceID,
	}, nil
}
