package core

import (
	"testing"
	"time"

	"github.com/jmgilman/pdsnd-github/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopularTimes(t *testing.T) {
	// Two June trips on Thursday 08:xx, one July trip on Saturday 17:xx.
	rows := [][]string{
		tripRow("2017-06-01 08:05:00", "2017-06-01 08:20:00", "A", "B", "Subscriber"),
		tripRow("2017-06-08 08:45:00", "2017-06-08 09:00:00", "B", "A", "Customer"),
		tripRow("2017-07-01 17:30:00", "2017-07-01 17:45:00", "A", "C", "Subscriber"),
	}
	table := normalizedTable(t, tripColumns, rows)

	result, err := PopularTimes(table)

	require.NoError(t, err)
	assert.Equal(t, time.June, result.Month)
	assert.Equal(t, 3, result.Weekday) // Thursday, Monday-first
	assert.Equal(t, 8, result.Hour)
}

func TestPopularTimesUsesStartTimesOnly(t *testing.T) {
	// End times land in July / on other hours; only starts decide the modes.
	rows := [][]string{
		tripRow("2017-06-30 23:00:00", "2017-07-01 01:00:00", "A", "B", "Subscriber"),
		tripRow("2017-06-30 23:30:00", "2017-07-01 00:15:00", "B", "A", "Customer"),
	}
	table := normalizedTable(t, tripColumns, rows)

	result, err := PopularTimes(table)

	require.NoError(t, err)
	assert.Equal(t, time.June, result.Month)
	assert.Equal(t, 23, result.Hour)
}

func TestPopularTimesEmptyTable(t *testing.T) {
	table := normalizedTable(t, tripColumns, nil)

	_, err := PopularTimes(table)

	assert.ErrorIs(t, err, schema.ErrEmptyDataset)
}

func TestPopularTimesMissingColumn(t *testing.T) {
	table := schema.NewTripTable([]string{schema.ColEndTime}, [][]string{{"2017-06-01 08:00:00"}})

	_, err := PopularTimes(table)

	assert.ErrorIs(t, err, schema.ErrMissingColumn)
	assert.Contains(t, err.Error(), schema.ColStartTime)
}

func TestPopularTimesNotNormalized(t *testing.T) {
	rows := [][]string{
		tripRow("2017-06-01 08:00:00", "2017-06-01 08:15:00", "A", "B", "Subscriber"),
	}
	table := schema.NewTripTable(tripColumns, rows)

	_, err := PopularTimes(table)

	assert.ErrorIs(t, err, errNotNormalized)
}

func TestPopularTimesEmptyBeforeMissingColumn(t *testing.T) {
	// An empty table reports emptiness even when columns are missing too.
	table := schema.NewTripTable([]string{schema.ColEndTime}, nil)

	_, err := PopularTimes(table)

	assert.ErrorIs(t, err, schema.ErrEmptyDataset)
}
