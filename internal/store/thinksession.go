package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const tableThinkSession = "thinksession"

// ThinkSession is a scheduled study block inside a think folder.
type ThinkSession struct {
	ID            int64  `json:"id"`
	ThinkFolderID int64  `json:"thinkfolder_id"`
	Title         string `json:"title"`
	Location      string `json:"location"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Layout        Layout `json:"layout"`
}

// EnrichedThinkSession carries the owning folder's color and icon.
type EnrichedThinkSession struct {
	ThinkSession
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CreateThinkSessionParams holds the input for creating a think session.
type CreateThinkSessionParams struct {
	ThinkFolderID int64  `json:"thinkfolder_id"`
	Title         string `json:"title"`
	Location      string `json:"location"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

// ThinkSessionPatch holds partial update fields for a think session.
type ThinkSessionPatch struct {
	ThinkFolderID *int64  `json:"thinkfolder_id,omitempty"`
	Title         *string `json:"title,omitempty"`
	Location      *string `json:"location,omitempty"`
	Date          *string `json:"date,omitempty"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	Layout        *Layout `json:"layout,omitempty"`
}

const thinkSessionColumns = `s.id, s.thinkfolder_id, s.title, s.location, s.date, s.start_time, s.end_time, s.layout`

func scanThinkSession(row interface{ Scan(...any) error }) (ThinkSession, error) {
	var ts ThinkSession
	err := row.Scan(&ts.ID, &ts.ThinkFolderID, &ts.Title, &ts.Location,
		&ts.Date, &ts.StartTime, &ts.EndTime, &ts.Layout)
	return ts, err
}

// ListThinkSessions returns every think session in the store's natural order.
func (s *Store) ListThinkSessions() ([]ThinkSession, error) {
	rows, err := s.db.Query(`SELECT ` + thinkSessionColumns + ` FROM thinksession s`)
	if err != nil {
		return nil, failure("list think sessions", err)
	}
	defer func() { _ = rows.Close() }()

	sessions := []ThinkSession{}
	for rows.Next() {
		ts, err := scanThinkSession(rows)
		if err != nil {
			return nil, failure("list think sessions: scan", err)
		}
		sessions = append(sessions, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, failure("list think sessions", err)
	}
	return sessions, nil
}

// GetThinkSession retrieves a think session by ID.
func (s *Store) GetThinkSession(id int64) (*ThinkSession, error) {
	ts, err := scanThinkSession(s.db.QueryRow(
		`SELECT `+thinkSessionColumns+` FROM thinksession s WHERE s.id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, NewNotFound("ThinkSession", id)
	}
	if err != nil {
		return nil, failure("get think session", err)
	}
	return &ts, nil
}

// ListThinkSessionsByThinkFolder returns a folder's sessions ordered by start time.
func (s *Store) ListThinkSessionsByThinkFolder(folderID int64) ([]EnrichedThinkSession, error) {
	return s.listEnriched("list think sessions by folder", `s.thinkfolder_id = ?`, folderID)
}

// ListThinkSessionsByDate returns all sessions on date ordered by start time.
func (s *Store) ListThinkSessionsByDate(date string) ([]EnrichedThinkSession, error) {
	return s.listEnriched("list think sessions by date", `s.date = ?`, date)
}

// listEnriched joins each session with its folder's color and icon. A session
// whose folder has gone missing is still returned, with empty color and icon.
func (s *Store) listEnriched(op, where string, arg any) ([]EnrichedThinkSession, error) {
	rows, err := s.db.Query(
		`SELECT `+thinkSessionColumns+`, COALESCE(f.color, ''), COALESCE(f.icon, '')
		 FROM thinksession s
		 LEFT JOIN thinkfolder f ON f.id = s.thinkfolder_id
		 WHERE `+where+`
		 ORDER BY s.start_time ASC, s.id ASC`, arg,
	)
	if err != nil {
		return nil, failure(op, err)
	}
	defer func() { _ = rows.Close() }()

	sessions := []EnrichedThinkSession{}
	for rows.Next() {
		var es EnrichedThinkSession
		ts := &es.ThinkSession
		if err := rows.Scan(&ts.ID, &ts.ThinkFolderID, &ts.Title, &ts.Location,
			&ts.Date, &ts.StartTime, &ts.EndTime, &ts.Layout, &es.Color, &es.Icon); err != nil {
			return nil, failure(op+": scan", err)
		}
		sessions = append(sessions, es)
	}
	if err := rows.Err(); err != nil {
		return nil, failure(op, err)
	}
	return sessions, nil
}

// NormalizeClock rewrites a wall-clock time as zero-padded HH:MM, which is
// the only form the heatmap's strftime arithmetic understands. "9:00"
// becomes "09:00"; an empty value stays empty.
func NormalizeClock(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	t, err := time.Parse("15:04", v)
	if err != nil {
		return "", fmt.Errorf("%q is not a time of day as HH:MM", v)
	}
	return t.Format("15:04"), nil
}

// normalizeClocks rewrites each non-nil time in place.
func normalizeClocks(op string, times ...*string) error {
	for _, t := range times {
		if t == nil {
			continue
		}
		n, err := NormalizeClock(*t)
		if err != nil {
			return failuref("%s: %v", op, err)
		}
		*t = n
	}
	return nil
}

// clonePtr copies *v so normalising it leaves the caller's value alone.
func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// CreateThinkSession inserts a session with the default widget layout.
func (s *Store) CreateThinkSession(p CreateThinkSessionParams) (int64, error) {
	if err := normalizeClocks("create think session", &p.StartTime, &p.EndTime); err != nil {
		return 0, err
	}
	if err := requireRow(s.db, tableThinkFolder, "ThinkFolder", p.ThinkFolderID); err != nil {
		return 0, err
	}

	res, err := s.execHook(s.db,
		`INSERT INTO thinksession (thinkfolder_id, title, location, date, start_time, end_time, layout)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ThinkFolderID, p.Title, p.Location, p.Date, p.StartTime, p.EndTime, DefaultLayout(),
	)
	if err != nil {
		return 0, failure("create think session", err)
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		return 0, failuref("create think session: failed to create think session")
	}
	return id, nil
}

// UpdateThinkSession applies the supplied fields to a think session.
func (s *Store) UpdateThinkSession(id int64, p ThinkSessionPatch) error {
	p.StartTime, p.EndTime = clonePtr(p.StartTime), clonePtr(p.EndTime)
	if err := normalizeClocks("update think session", p.StartTime, p.EndTime); err != nil {
		return err
	}
	var pt patch
	setIf(&pt, colThinkFolderID, p.ThinkFolderID)
	setIf(&pt, colTitle, p.Title)
	setIf(&pt, colLocation, p.Location)
	setIf(&pt, colDate, p.Date)
	setIf(&pt, colStartTime, p.StartTime)
	setIf(&pt, colEndTime, p.EndTime)
	setIf(&pt, colLayout, p.Layout)
	return s.applyPatch(tableThinkSession, "update think session", id, &pt)
}
