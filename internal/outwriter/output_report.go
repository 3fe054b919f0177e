package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/jmgilman/pdsnd-github/schema"
)

// PrintReport outputs one statistics report, dispatching based on the output format configured.
func PrintReport(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printReportJSON(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printReportCSV(report, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to the human-readable report. ANSI colors stay out of files.
		useColors := cfg.UseColors && cfg.OutputFile == ""
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := WriteReportText(w, report, useColors); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Computed statistics over %s trips in %v\n", FormatCount(report.Rows), duration)
			return err
		}, "Wrote report")
	}
	return nil
}

// WriteReportText renders the four statistics sections in reading order:
// travel times, stations, durations, user information. Sections for columns
// the dataset does not carry are left out entirely.
func WriteReportText(w io.Writer, report *schema.Report, useColors bool) error {
	if _, err := fmt.Fprintf(w, "🔎 Dataset: %s (filter: %s)\n\n", report.Dataset, report.Filter); err != nil {
		return err
	}
	if err := writeTimesSection(w, report.Times, useColors); err != nil {
		return err
	}
	if err := writeStationsSection(w, report.Stations, useColors); err != nil {
		return err
	}
	if err := writeDurationsSection(w, report.Durations, useColors); err != nil {
		return err
	}
	return writeUsersSection(w, report.Users, useColors)
}

// writeTimesSection prints the modal month, weekday and hour of day.
func writeTimesSection(w io.Writer, times schema.PopularTimesResult, useColors bool) error {
	if _, err := fmt.Fprintf(w, "%s\n", contract.GetColorHeader("🕒 Most popular times of travel:", useColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tMonth: %s\n", contract.GetColorValue(times.Month.String(), useColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tDay of week: %s\n", contract.GetColorValue(schema.WeekdayName(times.Weekday), useColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tHour of day: %s\n\n", contract.GetColorValue(FormatHour12(times.Hour), useColors)); err != nil {
		return err
	}
	return nil
}

// writeStationsSection prints the modal stations and the most frequent trip.
func writeStationsSection(w io.Writer, stations schema.PopularStationsResult, useColors bool) error {
	if _, err := fmt.Fprintf(w, "%s\n", contract.GetColorHeader("🚏 Most popular stations for travel:", useColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tStarting station: %s\n", contract.GetColorValue(stations.StartStation, useColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tEnding station: %s\n", contract.GetColorValue(stations.EndStation, useColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tTrip: %s to %s (%s trips)\n\n",
		contract.GetColorValue(stations.Trip.Start, useColors),
		contract.GetColorValue(stations.Trip.End, useColors),
		FormatCount(stations.TripCount)); err != nil {
		return err
	}
	return nil
}

// writeDurationsSection prints the total and average travel time.
func writeDurationsSection(w io.Writer, durations schema.TripDurationsResult, useColors bool) error {
	if _, err := fmt.Fprintf(w, "%s\n", contract.GetColorHeader("⏱️  Trip durations:", useColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tTotal travel time: %s\n", contract.GetColorValue(FormatDuration(durations.Total), useColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tAverage travel time: %s\n\n", contract.GetColorValue(FormatDuration(durations.Mean), useColors)); err != nil {
		return err
	}
	return nil
}

// writeUsersSection prints rider type counts plus the gender and birth year
// blocks when the dataset carries those columns.
func writeUsersSection(w io.Writer, users schema.UserInfoResult, useColors bool) error {
	if _, err := fmt.Fprintf(w, "%s\n", contract.GetColorHeader("👤 User information:", useColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tCounts by user type:\n"); err != nil {
		return err
	}
	if err := writeValueCounts(w, users.TypeCounts, useColors); err != nil {
		return err
	}

	if len(users.GenderCounts) > 0 {
		if _, err := fmt.Fprintf(w, "\tCounts by gender:\n"); err != nil {
			return err
		}
		if err := writeValueCounts(w, users.GenderCounts, useColors); err != nil {
			return err
		}
	}

	if users.BirthYears != nil {
		if _, err := fmt.Fprintf(w, "\tEarliest birth year: %s\n", contract.GetColorValue(strconv.Itoa(users.BirthYears.Earliest), useColors)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\tMost recent birth year: %s\n", contract.GetColorValue(strconv.Itoa(users.BirthYears.MostRecent), useColors)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\tMost common birth year: %s\n", contract.GetColorValue(strconv.Itoa(users.BirthYears.MostCommon), useColors)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}

func writeValueCounts(w io.Writer, counts []schema.ValueCount, useColors bool) error {
	for _, vc := range counts {
		if _, err := fmt.Fprintf(w, "\t\t%s: %s\n", vc.Value, contract.GetColorValue(FormatCount(vc.Count), useColors)); err != nil {
			return err
		}
	}
	return nil
}
