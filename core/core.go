// Package core has core logic for loading, filtering and aggregating trips.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/jmgilman/pdsnd-github/internal/dataload"
	"github.com/jmgilman/pdsnd-github/internal/outwriter"
	"github.com/jmgilman/pdsnd-github/internal/parquet"
	"github.com/jmgilman/pdsnd-github/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// LoadNormalized reads one CSV export, checks the required columns and parses
// every timestamp. The returned table is ready for filtering and aggregation.
func LoadNormalized(path string) (*schema.TripTable, error) {
	table, err := dataload.Load(path)
	if err != nil {
		return nil, err
	}
	if err := dataload.RequireColumns(table); err != nil {
		return nil, err
	}
	return dataload.Normalize(table)
}

// BuildReport runs the four aggregations over a normalized table and bundles
// the results for a writer.
func BuildReport(dataset string, filter schema.FilterSummary, table *schema.TripTable) (*schema.Report, error) {
	times, err := PopularTimes(table)
	if err != nil {
		return nil, err
	}
	stations, err := PopularStations(table)
	if err != nil {
		return nil, err
	}
	durations, err := TripDurations(table)
	if err != nil {
		return nil, err
	}
	users, err := UserInfo(table)
	if err != nil {
		return nil, err
	}
	return &schema.Report{
		Dataset:   dataset,
		Filter:    filter,
		Rows:      table.Len(),
		Times:     times,
		Stations:  stations,
		Durations: durations,
		Users:     users,
	}, nil
}

// ExecuteStats runs the one-shot pipeline and prints the statistics report.
// It serves as the main entry point for the 'stats' command.
func ExecuteStats(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	ds, err := dataload.Resolve(cfg.DataDir, cfg.Dataset)
	if err != nil {
		return err
	}
	table, err := LoadNormalized(ds.Path)
	if err != nil {
		return err
	}
	filtered := ApplyFilter(table, cfg.Filter)
	report, err := BuildReport(ds.Name, cfg.Filter, filtered)
	if err != nil {
		if errors.Is(err, schema.ErrEmptyDataset) && cfg.Filter.Any() {
			return fmt.Errorf("no trips match filter %s: %w", cfg.Filter, err)
		}
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintReport(report, cfg, duration)
}

// ExecuteDatasets lists the CSV datasets under the data directory.
// It serves as the main entry point for the 'datasets' command.
func ExecuteDatasets(_ context.Context, cfg *contract.Config) error {
	datasets, err := dataload.Discover(cfg.DataDir)
	if err != nil {
		return err
	}
	return outwriter.PrintDatasets(datasets, cfg)
}

// ExecuteExport writes the loaded, optionally filtered trip table to a
// Parquet file. It serves as the main entry point for the 'export' command.
func ExecuteExport(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	ds, err := dataload.Resolve(cfg.DataDir, cfg.Dataset)
	if err != nil {
		return err
	}
	table, err := LoadNormalized(ds.Path)
	if err != nil {
		return err
	}
	filtered := ApplyFilter(table, cfg.Filter)

	outputPath := cfg.OutputFile
	if outputPath == "" {
		base := filepath.Base(ds.Path)
		outputPath = strings.TrimSuffix(base, filepath.Ext(base)) + ".parquet"
	}
	rows, err := parquet.WriteTrips(filtered, outputPath)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	fmt.Fprintf(os.Stderr, "💾 Exported %s rows to %s in %v\n", outwriter.FormatCount(rows), outputPath, duration)
	return nil
}
