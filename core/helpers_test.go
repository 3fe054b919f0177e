package core

import (
	"testing"
	"time"

	"github.com/jmgilman/pdsnd-github/schema"
	"github.com/stretchr/testify/require"
)

// tripColumns is the six-column layout aggregation tests use unless a test
// needs the optional demographics columns.
var tripColumns = []string{
	schema.ColStartTime,
	schema.ColEndTime,
	schema.ColTripDuration,
	schema.ColStartStation,
	schema.ColEndStation,
	schema.ColUserType,
}

// tripRow builds one row in tripColumns order. The duration column stays
// zero on purpose: aggregations must never read it.
func tripRow(start, end, startStation, endStation, userType string) []string {
	return []string{start, end, "0", startStation, endStation, userType}
}

// normalizedTable builds a trip table from raw cells and parses the two
// timestamp columns the way the loader would.
func normalizedTable(t *testing.T, columns []string, rows [][]string) *schema.TripTable {
	t.Helper()
	table := schema.NewTripTable(columns, rows)
	starts := make([]time.Time, len(rows))
	ends := make([]time.Time, len(rows))
	for i := range rows {
		start, ok := table.Cell(i, schema.ColStartTime)
		require.True(t, ok)
		end, ok := table.Cell(i, schema.ColEndTime)
		require.True(t, ok)
		starts[i] = parseTestTime(t, start)
		ends[i] = parseTestTime(t, end)
	}
	return table.WithTimes(starts, ends)
}

func parseTestTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return parsed
}
