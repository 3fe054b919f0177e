package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/jmgilman/pdsnd-github/schema"
)

// errNotNormalized flags aggregation over a table whose timestamps were
// never parsed. This is a pipeline ordering bug, not a data problem.
var errNotNormalized = errors.New("table is not normalized: parse timestamps before aggregating")

// PopularTimes computes the modal start month, Monday-first weekday and hour
// of day over the table. Values stay as ordinals; naming them is the
// formatter's job.
func PopularTimes(table *schema.TripTable) (schema.PopularTimesResult, error) {
	if table.Len() == 0 {
		return schema.PopularTimesResult{}, schema.ErrEmptyDataset
	}
	if !table.HasColumn(schema.ColStartTime) {
		return schema.PopularTimesResult{}, fmt.Errorf("popular times need the %q column: %w", schema.ColStartTime, schema.ErrMissingColumn)
	}
	if !table.Normalized() {
		return schema.PopularTimesResult{}, errNotNormalized
	}

	months := make([]time.Month, table.Len())
	weekdays := make([]int, table.Len())
	hours := make([]int, table.Len())
	for i := range table.Len() {
		start := table.StartTime(i)
		months[i] = start.Month()
		weekdays[i] = schema.WeekdayIndex(start)
		hours[i] = start.Hour()
	}

	return schema.PopularTimesResult{
		Month:   modeOf(months),
		Weekday: modeOf(weekdays),
		Hour:    modeOf(hours),
	}, nil
}
