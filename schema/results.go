package schema

import (
	"strings"
	"time"
)

// PopularTimesResult holds the modal travel-time ordinals of a table. The
// formatter turns ordinals into names; aggregation never does.
type PopularTimesResult struct {
	Month   time.Month `json:"month"`   // calendar month of the modal start time
	Weekday int        `json:"weekday"` // Monday-first weekday ordinal (0-6)
	Hour    int        `json:"hour"`    // hour of day (0-23)
}

// StationPair is an ordered start/end station combination. (A, B) and (B, A)
// are different trips.
type StationPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PopularStationsResult holds the modal start station, the modal end station
// (each computed independently) and the most frequent station pair with its
// trip count.
type PopularStationsResult struct {
	StartStation string      `json:"start_station"`
	EndStation   string      `json:"end_station"`
	Trip         StationPair `json:"trip"`
	TripCount    int         `json:"trip_count"`
}

// TripDurationsResult holds the total and mean trip duration, both computed
// from each row's own start and end timestamps rather than the stored
// duration column.
type TripDurationsResult struct {
	Total time.Duration `json:"total"`
	Mean  time.Duration `json:"mean"`
	Trips int           `json:"trips"`
}

// ValueCount pairs a column value with the number of rows carrying it.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// BirthYearStats holds the earliest, most recent and most common rider birth
// years.
type BirthYearStats struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

// UserInfoResult holds rider demographics. TypeCounts is always populated.
// GenderCounts is nil when the dataset has no Gender column, and BirthYears
// is nil when it has no Birth Year column; nil means not applicable, never
// zero riders.
type UserInfoResult struct {
	TypeCounts   []ValueCount    `json:"type_counts"`
	GenderCounts []ValueCount    `json:"gender_counts,omitempty"`
	BirthYears   *BirthYearStats `json:"birth_years,omitempty"`
}

// FilterSummary records which filters produced a report. Nil fields mean the
// corresponding filter was not applied.
type FilterSummary struct {
	Month   *time.Month `json:"month,omitempty"`
	Weekday *int        `json:"weekday,omitempty"`
}

// Any reports whether at least one filter was applied.
func (f FilterSummary) Any() bool {
	return f.Month != nil || f.Weekday != nil
}

// String renders the summary as "none", "month=June", "day=Monday" or
// "month=June, day=Monday".
func (f FilterSummary) String() string {
	var parts []string
	if f.Month != nil {
		parts = append(parts, "month="+f.Month.String())
	}
	if f.Weekday != nil {
		parts = append(parts, "day="+WeekdayName(*f.Weekday))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// Report bundles the four statistics sections for one dataset and filter
// choice, ready for a writer to render.
type Report struct {
	Dataset   string                `json:"dataset"`
	Filter    FilterSummary         `json:"filter"`
	Rows      int                   `json:"rows"`
	Times     PopularTimesResult    `json:"times"`
	Stations  PopularStationsResult `json:"stations"`
	Durations TripDurationsResult   `json:"durations"`
	Users     UserInfoResult        `json:"users"`
}
