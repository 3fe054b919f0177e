package core

import (
	"time"

	"github.com/jmgilman/pdsnd-github/schema"
)

// TripDurations sums the elapsed time of every trip and derives the mean.
// Durations come from the parsed end and start times rather than the raw
// duration column, so the two stats always agree with the timestamps.
func TripDurations(table *schema.TripTable) (schema.TripDurationsResult, error) {
	if table.Len() == 0 {
		return schema.TripDurationsResult{}, schema.ErrEmptyDataset
	}
	if !table.Normalized() {
		return schema.TripDurationsResult{}, errNotNormalized
	}

	var total time.Duration
	for i := range table.Len() {
		total += table.EndTime(i).Sub(table.StartTime(i))
	}

	return schema.TripDurationsResult{
		Total: total,
		Mean:  total / time.Duration(table.Len()),
		Trips: table.Len(),
	}, nil
}
