// Package ingest loads uploaded billing spreadsheets into an ordered,
// row-oriented in-memory table.
package ingest

import (
	"strings"
	"time"
)

// RawRow maps a trimmed header to the cell value for one spreadsheet row.
// Values are string, float64 or time.Time; absent cells have no entry.
type RawRow map[string]any

// Table is the in-memory form of one uploaded file. Headers preserve the
// original column order, which matters for fallback header matching.
type Table struct {
	Headers []string
	Rows    []RawRow
}

// Get returns the cell under header, reporting whether the column exists.
func (r RawRow) Get(header string) (any, bool) {
	v, ok := r[header]
	return v, ok
}

// IsEmptyCell reports whether a cell value counts as missing: absent,
// nil, or text that is blank after trimming.
func IsEmptyCell(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case time.Time:
		return t.IsZero()
	}
	return false
}

// CellString renders a cell value the way it would appear in the sheet.
func CellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return trimFloat(t)
	case time.Time:
		return t.Format("2006-01-02")
	}
	return ""
}
