package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/jmgilman/pdsnd-github/schema"
)

// printReportJSON handles opening the file and calling the JSON writer.
func printReportJSON(report *schema.Report, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONReport(w, report)
	}, "Wrote JSON")
}

// printReportCSV handles opening the file and calling the CSV writer.
func printReportCSV(report *schema.Report, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVReport(w, report)
	}, "Wrote CSV")
}

// writeJSONReport writes the report in JSON format.
func writeJSONReport(w io.Writer, report *schema.Report) error {
	// 1. Prepare the data structure for JSON with display names added
	type JSONReport struct {
		MonthName   string `json:"month_name"`
		WeekdayName string `json:"weekday_name"`
		HourLabel   string `json:"hour_label"`
		TotalTime   string `json:"total_time"`
		MeanTime    string `json:"mean_time"`
		schema.Report
	}

	output := JSONReport{
		MonthName:   report.Times.Month.String(),
		WeekdayName: schema.WeekdayName(report.Times.Weekday),
		HourLabel:   FormatHour12(report.Times.Hour),
		TotalTime:   FormatDuration(report.Durations.Total),
		MeanTime:    FormatDuration(report.Durations.Mean),
		Report:      *report,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeCSVReport writes the report in long format, one statistic per row, so
// downstream tools can pivot it without knowing the section shapes.
func writeCSVReport(w io.Writer, report *schema.Report) error {
	header := []string{"section", "stat", "value"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		records := [][]string{
			{"report", "dataset", report.Dataset},
			{"report", "filter", report.Filter.String()},
			{"report", "rows", strconv.Itoa(report.Rows)},
			{"times", "month", report.Times.Month.String()},
			{"times", "day_of_week", schema.WeekdayName(report.Times.Weekday)},
			{"times", "hour_of_day", FormatHour12(report.Times.Hour)},
			{"stations", "start_station", report.Stations.StartStation},
			{"stations", "end_station", report.Stations.EndStation},
			{"stations", "trip_start", report.Stations.Trip.Start},
			{"stations", "trip_end", report.Stations.Trip.End},
			{"stations", "trip_count", strconv.Itoa(report.Stations.TripCount)},
			{"durations", "total_seconds", durationSeconds(report.Durations.Total)},
			{"durations", "mean_seconds", durationSeconds(report.Durations.Mean)},
			{"durations", "trips", strconv.Itoa(report.Durations.Trips)},
		}
		for _, vc := range report.Users.TypeCounts {
			records = append(records, []string{"users", "user_type:" + vc.Value, strconv.Itoa(vc.Count)})
		}
		for _, vc := range report.Users.GenderCounts {
			records = append(records, []string{"users", "gender:" + vc.Value, strconv.Itoa(vc.Count)})
		}
		if report.Users.BirthYears != nil {
			records = append(records,
				[]string{"users", "earliest_birth_year", strconv.Itoa(report.Users.BirthYears.Earliest)},
				[]string{"users", "most_recent_birth_year", strconv.Itoa(report.Users.BirthYears.MostRecent)},
				[]string{"users", "most_common_birth_year", strconv.Itoa(report.Users.BirthYears.MostCommon)},
			)
		}
		return cw.WriteAll(records)
	})
}

// durationSeconds renders a duration as whole seconds for machine output.
func durationSeconds(d time.Duration) string {
	return strconv.FormatInt(int64(d.Round(time.Second)/time.Second), 10)
}
