// Package parquet exports bike-share trip tables to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jmgilman/pdsnd-github/schema"
	"github.com/parquet-go/parquet-go"
)

// TripRow represents a single bike-share trip for Parquet export.
type TripRow struct {
	// StartTime is when the trip began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the trip ended
	EndTime time.Time `parquet:"end_time,snappy"`

	// DurationSeconds is the trip length derived from the two timestamps
	DurationSeconds int64 `parquet:"duration_seconds,snappy"`

	// StartStation is the station where the trip began
	StartStation string `parquet:"start_station,snappy"`

	// EndStation is the station where the trip ended
	EndStation string `parquet:"end_station,snappy"`

	// UserType is the rider category, usually Subscriber or Customer
	UserType string `parquet:"user_type,snappy"`

	// Gender is the rider gender (nullable; not every city export has it)
	Gender *string `parquet:"gender,optional,snappy"`

	// BirthYear is the rider birth year (nullable)
	BirthYear *int32 `parquet:"birth_year,optional,snappy"`
}

// FromTable converts a normalized trip table to Parquet rows. Empty cells in
// the optional columns become null fields rather than empty values.
func FromTable(table *schema.TripTable) ([]TripRow, error) {
	if !table.Normalized() {
		return nil, fmt.Errorf("parquet export needs parsed timestamps")
	}

	hasGender := table.HasColumn(schema.ColGender)
	hasBirthYear := table.HasColumn(schema.ColBirthYear)

	rows := make([]TripRow, table.Len())
	for i := range table.Len() {
		start := table.StartTime(i)
		end := table.EndTime(i)
		startStation, _ := table.Cell(i, schema.ColStartStation)
		endStation, _ := table.Cell(i, schema.ColEndStation)
		userType, _ := table.Cell(i, schema.ColUserType)

		row := TripRow{
			StartTime:       start,
			EndTime:         end,
			DurationSeconds: int64(end.Sub(start).Seconds()),
			StartStation:    startStation,
			EndStation:      endStation,
			UserType:        userType,
		}
		if hasGender {
			if gender, _ := table.Cell(i, schema.ColGender); gender != "" {
				row.Gender = &gender
			}
		}
		if hasBirthYear {
			if cell, _ := table.Cell(i, schema.ColBirthYear); cell != "" {
				// Exports hold years as floats, e.g. "1992.0".
				value, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, fmt.Errorf("row %d holds %q: %w", i+1, cell, schema.ErrBadBirthYear)
				}
				year := int32(value)
				row.BirthYear = &year
			}
		}
		rows[i] = row
	}
	return rows, nil
}

// WriteTrips writes a normalized trip table to a Parquet file and reports
// how many rows it wrote.
func WriteTrips(table *schema.TripTable, outputPath string) (int, error) {
	rows, err := FromTable(table)
	if err != nil {
		return 0, err
	}
	return WriteRows(rows, outputPath)
}

// WriteRows writes trip rows to a Parquet file and reports how many it wrote.
func WriteRows(rows []TripRow, outputPath string) (int, error) {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the TripRow struct tags
	writer := parquet.NewGenericWriter[TripRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(rows); err != nil {
		return 0, fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return len(rows), nil
}

// MockTrips generates sample trip data for demonstration.
func MockTrips() []TripRow {
	base := time.Date(2017, time.June, 5, 8, 30, 0, 0, time.UTC)
	gender1 := "Male"
	gender2 := "Female"
	year1 := int32(1988)
	year2 := int32(1992)

	return []TripRow{
		{
			StartTime:       base,
			EndTime:         base.Add(11 * time.Minute),
			DurationSeconds: 660,
			StartStation:    "Clinton St & Washington Blvd",
			EndStation:      "Canal St & Adams St",
			UserType:        "Subscriber",
			Gender:          &gender1,
			BirthYear:       &year1,
		},
		{
			StartTime:       base.Add(2 * time.Hour),
			EndTime:         base.Add(2*time.Hour + 25*time.Minute),
			DurationSeconds: 1500,
			StartStation:    "Streeter Dr & Grand Ave",
			EndStation:      "Theater on the Lake",
			UserType:        "Customer",
			Gender:          &gender2,
			BirthYear:       &year2,
		},
		{
			StartTime:       base.Add(26 * time.Hour),
			EndTime:         base.Add(26*time.Hour + 8*time.Minute),
			DurationSeconds: 480,
			StartStation:    "Canal St & Adams St",
			EndStation:      "Clinton St & Washington Blvd",
			UserType:        "Customer",
			Gender:          nil, // Rider left gender blank - nullable field
			BirthYear:       nil, // Rider left birth year blank - nullable field
		},
	}
}
