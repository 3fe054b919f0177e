package schema

import "errors"

// Sentinel errors shared by the loading and aggregation pipeline. Callers
// match them with errors.Is; the wrapping sites add file, row and column
// context.
var (
	// ErrMissingColumn flags a dataset whose header lacks a required column.
	ErrMissingColumn = errors.New("required column missing")

	// ErrBadTimestamp flags a Start Time or End Time cell that cannot be
	// parsed. One bad cell rejects the whole load.
	ErrBadTimestamp = errors.New("unparsable timestamp")

	// ErrBadBirthYear flags a Birth Year cell that is present but not numeric.
	ErrBadBirthYear = errors.New("unparsable birth year")

	// ErrEmptyDataset flags an aggregation over a table with zero rows.
	ErrEmptyDataset = errors.New("no trips to aggregate")

	// ErrNoDatasets flags a data directory without any CSV files.
	ErrNoDatasets = errors.New("no datasets found")
)
