package store

import "strings"

// column names a writable column. Only the constants below are ever used to
// build statements, so patch SQL never contains caller-supplied identifiers.
type column string

const (
	colThinkFolderID  column = "thinkfolder_id"
	colThinkSessionID column = "thinksession_id"
	colName           column = "name"
	colDescription    column = "description"
	colColor          column = "color"
	colIcon           column = "icon"
	colTitle          column = "title"
	colLocation       column = "location"
	colDate           column = "date"
	colStartTime      column = "start_time"
	colEndTime        column = "end_time"
	colLayout         column = "layout"
)

// patch is a sparse set of column assignments.
type patch struct {
	cols []column
	args []any
}

func (p *patch) set(c column, v any) {
	p.cols = append(p.cols, c)
	p.args = append(p.args, v)
}

func (p *patch) empty() bool { return len(p.cols) == 0 }

// setIf adds c = *v when v is non-nil.
func setIf[T any](p *patch, c column, v *T) {
	if v != nil {
		p.set(c, *v)
	}
}

// update renders "UPDATE table SET a = ?, b = ? WHERE id = ?" and its args.
func (p *patch) update(table string, id int64) (string, []any) {
	assignments := make([]string, len(p.cols))
	for i, c := range p.cols {
		assignments[i] = string(c) + " = ?"
	}
	query := "UPDATE " + table + " SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	args := append(append([]any{}, p.args...), id)
	return query, args
}

// applyPatch executes p against table. An empty patch is a no-op; a missing
// id affects zero rows and is still reported as success.
func (s *Store) applyPatch(table, op string, id int64, p *patch) error {
	if p.empty() {
		return nil
	}
	query, args := p.update(table, id)
	if _, err := s.execHook(s.db, query, args...); err != nil {
		return failure(op, err)
	}
	return nil
}
