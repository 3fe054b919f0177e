// Package dataload reads bike-share CSV exports into trip tables.
package dataload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jmgilman/pdsnd-github/schema"
)

// timestampLayouts lists the accepted Start Time / End Time layouts, tried in
// order. The exports write the first one.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Load reads one CSV export into a trip table. The first record becomes the
// column layout and data rows keep file order. A row whose field count
// differs from the header is a malformed file, not a recoverable cell.
func Load(path string) (*schema.TripTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header of %s: %w", path, err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read row of %s: %w", path, err)
		}
		rows = append(rows, record)
	}

	return schema.NewTripTable(header, rows), nil
}

// RequireColumns checks the table header for every required column and names
// the first one missing.
func RequireColumns(table *schema.TripTable) error {
	for _, column := range schema.RequiredColumns {
		if !table.HasColumn(column) {
			return fmt.Errorf("dataset lacks the %q column: %w", column, schema.ErrMissingColumn)
		}
	}
	return nil
}

// Normalize parses the Start Time and End Time cells of every row and
// returns a copy of the table carrying the parsed values. One unparsable
// cell rejects the whole table so aggregation never sees half-parsed data.
func Normalize(table *schema.TripTable) (*schema.TripTable, error) {
	starts := make([]time.Time, table.Len())
	ends := make([]time.Time, table.Len())
	for i := range table.Len() {
		start, err := parseTimestamp(table, i, schema.ColStartTime)
		if err != nil {
			return nil, err
		}
		end, err := parseTimestamp(table, i, schema.ColEndTime)
		if err != nil {
			return nil, err
		}
		starts[i] = start
		ends[i] = end
	}
	return table.WithTimes(starts, ends), nil
}

func parseTimestamp(table *schema.TripTable, row int, column string) (time.Time, error) {
	value, ok := table.Cell(row, column)
	if !ok {
		return time.Time{}, fmt.Errorf("dataset lacks the %q column: %w", column, schema.ErrMissingColumn)
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("row %d column %q holds %q: %w", row+1, column, value, schema.ErrBadTimestamp)
}
