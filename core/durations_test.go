package core

import (
	"testing"
	"time"

	"github.com/jmgilman/pdsnd-github/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripDurationsSingleTrip(t *testing.T) {
	rows := [][]string{
		tripRow("2017-06-01 08:00:00", "2017-06-01 09:00:00", "A", "B", "Subscriber"),
	}
	table := normalizedTable(t, tripColumns, rows)

	result, err := TripDurations(table)

	require.NoError(t, err)
	assert.Equal(t, time.Hour, result.Total)
	assert.Equal(t, time.Hour, result.Mean)
	assert.Equal(t, 1, result.Trips)
}

func TestTripDurationsMean(t *testing.T) {
	// One hour plus three hours: total 4h, mean 2h.
	rows := [][]string{
		tripRow("2017-06-01 08:00:00", "2017-06-01 09:00:00", "A", "B", "Subscriber"),
		tripRow("2017-06-01 10:00:00", "2017-06-01 13:00:00", "B", "A", "Customer"),
	}
	table := normalizedTable(t, tripColumns, rows)

	result, err := TripDurations(table)

	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, result.Total)
	assert.Equal(t, 2*time.Hour, result.Mean)
	assert.Equal(t, 2, result.Trips)
}

func TestTripDurationsIgnoresDurationColumn(t *testing.T) {
	// The duration cell lies; the timestamps win.
	rows := [][]string{
		{"2017-06-01 08:00:00", "2017-06-01 08:30:00", "99999", "A", "B", "Subscriber"},
	}
	table := normalizedTable(t, tripColumns, rows)

	result, err := TripDurations(table)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, result.Total)
}

func TestTripDurationsEmptyTable(t *testing.T) {
	table := normalizedTable(t, tripColumns, nil)

	_, err := TripDurations(table)

	assert.ErrorIs(t, err, schema.ErrEmptyDataset)
}

func TestTripDurationsNotNormalized(t *testing.T) {
	rows := [][]string{
		tripRow("2017-06-01 08:00:00", "2017-06-01 09:00:00", "A", "B", "Subscriber"),
	}
	table := schema.NewTripTable(tripColumns, rows)

	_, err := TripDurations(table)

	assert.ErrorIs(t, err, errNotNormalized)
}
