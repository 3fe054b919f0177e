package core

import (
	"sort"
	"time"

	"github.com/jmgilman/pdsnd-github/schema"
)

// UniqueMonths returns the sorted, deduplicated union of start and end
// months across all rows. The interactive month menu only offers these.
func UniqueMonths(table *schema.TripTable) []time.Month {
	seen := make(map[time.Month]struct{})
	for i := range table.Len() {
		seen[table.StartTime(i).Month()] = struct{}{}
		seen[table.EndTime(i).Month()] = struct{}{}
	}

	months := make([]time.Month, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}

// FilterByMonth keeps rows whose start time falls in the given month. A
// month with no rows yields an empty table, not an error.
func FilterByMonth(table *schema.TripTable, month time.Month) *schema.TripTable {
	keep := make([]int, 0, table.Len())
	for i := range table.Len() {
		if table.StartTime(i).Month() == month {
			keep = append(keep, i)
		}
	}
	return table.Select(keep)
}

// FilterByWeekday keeps rows whose start time falls on the given
// Monday-first weekday.
func FilterByWeekday(table *schema.TripTable, weekday int) *schema.TripTable {
	keep := make([]int, 0, table.Len())
	for i := range table.Len() {
		if schema.WeekdayIndex(table.StartTime(i)) == weekday {
			keep = append(keep, i)
		}
	}
	return table.Select(keep)
}

// ApplyFilter applies the month and weekday choices in order; both set means
// rows must satisfy both. Nil fields leave the table as is.
func ApplyFilter(table *schema.TripTable, filter schema.FilterSummary) *schema.TripTable {
	filtered := table
	if filter.Month != nil {
		filtered = FilterByMonth(filtered, *filter.Month)
	}
	if filter.Weekday != nil {
		filtered = FilterByWeekday(filtered, *filter.Weekday)
	}
	return filtered
}
