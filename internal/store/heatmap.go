package store

import "fmt"

// HeatmapCell is the total studied time on one calendar date.
type HeatmapCell struct {
	Date       string  `json:"date"`
	TotalHours float64 `json:"total_hours"`
}

// Heatmap sums session duration in hours per date for one folder and year.
// Dates without sessions are absent rather than zero-filled.
func (s *Store) Heatmap(folderID int64, year int) ([]HeatmapCell, error) {
	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-12-31", year)

	// Times are HH:MM on the same day; anchoring both to a fixed date lets
	// strftime('%s') turn them into comparable seconds.
	rows, err := s.db.Query(
		`SELECT date,
		        SUM(strftime('%s', '2000-01-01 ' || end_time) - strftime('%s', '2000-01-01 ' || start_time)) / 3600.0
		 FROM thinksession
		 WHERE thinkfolder_id = ? AND date BETWEEN ? AND ?
		 GROUP BY date
		 ORDER BY date ASC`,
		folderID, from, to,
	)
	if err != nil {
		return nil, failure("heatmap", err)
	}
	defer func() { _ = rows.Close() }()

	cells := []HeatmapCell{}
	for rows.Next() {
		var c HeatmapCell
		var hours *float64
		if err := rows.Scan(&c.Date, &hours); err != nil {
			return nil, failure("heatmap: scan", err)
		}
		if hours != nil {
			c.TotalHours = *hours
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, failure("heatmap", err)
	}
	return cells, nil
}

// MaxHours is the largest TotalHours in cells, or 0 when cells is empty.
func MaxHours(cells []HeatmapCell) float64 {
	var m float64
	for _, c := range cells {
		if c.TotalHours > m {
			m = c.TotalHours
		}
	}
	return m
}
