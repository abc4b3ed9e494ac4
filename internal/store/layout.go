package store

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// AddWidgetID is the grid key of the placeholder cell every new session gets.
const AddWidgetID = "add-widget"

// LayoutItem is one draggable panel position. It only shapes the seed
// layout; stored layouts keep whatever keys the dashboard sent.
type LayoutItem struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
	I      string `json:"i"`
	Moved  bool   `json:"moved"`
	Static bool   `json:"static"`
}

// Layout is the widget grid of a think session: a JSON array kept verbatim.
type Layout json.RawMessage

var emptyLayout = Layout("[]")

// DefaultLayout is a single add-widget cell at (0,0) sized 3x1.
func DefaultLayout() Layout {
	b, _ := json.Marshal([]LayoutItem{{X: 0, Y: 0, W: 3, H: 1, I: AddWidgetID}})
	return Layout(b)
}

// Items decodes the layout into position records. Keys outside LayoutItem
// are ignored.
func (l Layout) Items() ([]LayoutItem, error) {
	var items []LayoutItem
	if len(l) == 0 {
		return items, nil
	}
	err := json.Unmarshal(l, &items)
	return items, err
}

// MarshalJSON writes the stored array as is.
func (l Layout) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return emptyLayout, nil
	}
	return l, nil
}

// UnmarshalJSON applies the same rules as ParseLayout.
func (l *Layout) UnmarshalJSON(b []byte) error {
	parsed, err := ParseLayout(b)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Value encodes the layout for the layout column.
func (l Layout) Value() (driver.Value, error) {
	if len(l) == 0 {
		return string(emptyLayout), nil
	}
	return string(l), nil
}

// Scan reads the layout column. Text that is not JSON reads back as an
// empty grid so one bad row cannot break session listings.
func (l *Layout) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("layout: unsupported column type %T", src)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		*l = append(Layout(nil), emptyLayout...)
		return nil
	}
	*l = append(Layout(nil), raw...)
	return nil
}

// ParseLayout accepts either a JSON array or a JSON string that itself holds
// the array, which is how the dashboard grid posts it. Elements are not
// checked against any schema.
func ParseLayout(raw json.RawMessage) (Layout, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
		raw = bytes.TrimSpace([]byte(encoded))
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return append(Layout(nil), emptyLayout...), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("layout: not valid JSON")
	}
	if raw[0] != '[' {
		return nil, errors.New("layout: must be a JSON array")
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return Layout(compact.Bytes()), nil
}
