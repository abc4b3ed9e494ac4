package store

import (
	"database/sql"
	"strings"
)

const tableThinkFolder = "thinkfolder"

// ThinkFolder is a top-level subject area.
type ThinkFolder struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
}

// CreateThinkFolderParams holds the input for creating a think folder.
// The icon is not accepted here; it keeps the column default until updated.
// A nil Description is stored as NULL; an empty one is stored as "".
type CreateThinkFolderParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color"`
}

// ThinkFolderPatch holds partial update fields for a think folder.
type ThinkFolderPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

const thinkFolderColumns = `id, name, description, color, icon`

func scanThinkFolder(row interface{ Scan(...any) error }) (ThinkFolder, error) {
	var f ThinkFolder
	err := row.Scan(&f.ID, &f.Name, &f.Description, &f.Color, &f.Icon)
	return f, err
}

// ListThinkFolders returns every think folder in the store's natural order.
func (s *Store) ListThinkFolders() ([]ThinkFolder, error) {
	rows, err := s.db.Query(`SELECT ` + thinkFolderColumns + ` FROM thinkfolder`)
	if err != nil {
		return nil, failure("list think folders", err)
	}
	defer func() { _ = rows.Close() }()

	folders := []ThinkFolder{}
	for rows.Next() {
		f, err := scanThinkFolder(rows)
		if err != nil {
			return nil, failure("list think folders: scan", err)
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, failure("list think folders", err)
	}
	return folders, nil
}

// GetThinkFolder retrieves a think folder by ID.
func (s *Store) GetThinkFolder(id int64) (*ThinkFolder, error) {
	f, err := scanThinkFolder(s.db.QueryRow(
		`SELECT `+thinkFolderColumns+` FROM thinkfolder WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, NewNotFound("ThinkFolder", id)
	}
	if err != nil {
		return nil, failure("get think folder", err)
	}
	return &f, nil
}

// CreateThinkFolder inserts a think folder and returns its id.
func (s *Store) CreateThinkFolder(p CreateThinkFolderParams) (int64, error) {
	if strings.TrimSpace(p.Name) == "" {
		return 0, failuref("create think folder: name is required")
	}
	if strings.TrimSpace(p.Color) == "" {
		return 0, failuref("create think folder: color is required")
	}

	res, err := s.execHook(s.db,
		`INSERT INTO thinkfolder (name, description, color) VALUES (?, ?, ?)`,
		p.Name, p.Description, p.Color,
	)
	if err != nil {
		return 0, failure("create think folder", err)
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		return 0, failuref("create think folder: failed to create think folder")
	}
	return id, nil
}

// UpdateThinkFolder applies the supplied fields to a think folder.
func (s *Store) UpdateThinkFolder(id int64, p ThinkFolderPatch) error {
	var pt patch
	setIf(&pt, colName, p.Name)
	setIf(&pt, colDescription, p.Description)
	setIf(&pt, colColor, p.Color)
	setIf(&pt, colIcon, p.Icon)
	return s.applyPatch(tableThinkFolder, "update think folder", id, &pt)
}
