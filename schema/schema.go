// Package schema has the table model, result types and shared constants for all parts of bikeshare.
package schema

import "time"

// Dataset is one discovered CSV export: the file path and the humanized
// display name shown in menus and reports.
type Dataset struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// TripTable holds the rows of one loaded dataset under the column layout
// declared by the file's header. Columns keep header order, rows keep file
// order. A table is never mutated after construction; filtering builds an
// independent copy so derived tables cannot alias each other's rows.
type TripTable struct {
	columns []string
	index   map[string]int
	rows    [][]string

	// Parsed Start Time / End Time values, attached by normalization.
	// Both are either empty or exactly len(rows) long.
	startTimes []time.Time
	endTimes   []time.Time
}

// NewTripTable builds a table from a header row and its data rows.
func NewTripTable(columns []string, rows [][]string) *TripTable {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}
	return &TripTable{columns: columns, index: index, rows: rows}
}

// Columns returns the header columns in file order.
func (t *TripTable) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the header carries the named column.
func (t *TripTable) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of data rows.
func (t *TripTable) Len() int {
	return len(t.rows)
}

// Row returns the cells of row i in header order. Callers must not modify
// the returned slice.
func (t *TripTable) Row(i int) []string {
	return t.rows[i]
}

// Cell returns the value at row i under the named column, and whether the
// column exists at all.
func (t *TripTable) Cell(i int, column string) (string, bool) {
	pos, ok := t.index[column]
	if !ok {
		return "", false
	}
	return t.rows[i][pos], true
}

// WithTimes returns a copy of the table carrying parsed start and end
// timestamps. Both slices must be len(rows) long.
func (t *TripTable) WithTimes(start, end []time.Time) *TripTable {
	out := *t
	out.startTimes = start
	out.endTimes = end
	return &out
}

// Normalized reports whether start and end timestamps have been parsed.
func (t *TripTable) Normalized() bool {
	return len(t.startTimes) == len(t.rows) && len(t.endTimes) == len(t.rows)
}

// StartTime returns the parsed start timestamp of row i.
func (t *TripTable) StartTime(i int) time.Time {
	return t.startTimes[i]
}

// EndTime returns the parsed end timestamp of row i.
func (t *TripTable) EndTime(i int) time.Time {
	return t.endTimes[i]
}

// Select builds a new table holding copies of the rows at the given indexes,
// in the given order, under the same column layout. Parsed timestamps carry
// over when present.
func (t *TripTable) Select(keep []int) *TripTable {
	rows := make([][]string, 0, len(keep))
	var starts, ends []time.Time
	if t.Normalized() {
		starts = make([]time.Time, 0, len(keep))
		ends = make([]time.Time, 0, len(keep))
	}
	for _, i := range keep {
		row := make([]string, len(t.rows[i]))
		copy(row, t.rows[i])
		rows = append(rows, row)
		if t.Normalized() {
			starts = append(starts, t.startTimes[i])
			ends = append(ends, t.endTimes[i])
		}
	}
	out := NewTripTable(t.columns, rows)
	out.startTimes = starts
	out.endTimes = ends
	return out
}
