package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/jmgilman/pdsnd-github/schema"
)

// PrintDatasets lists the discovered datasets, dispatching based on the output format configured.
func PrintDatasets(datasets []schema.Dataset, cfg *contract.Config) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, datasets)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVDatasets(w, datasets)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDatasetTable(w, datasets)
		}, "Wrote table")
	}
}

// writeDatasetTable generates and writes the human-readable table.
func writeDatasetTable(w io.Writer, datasets []schema.Dataset) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Name", "Path"})

	var data [][]string
	for i, ds := range datasets {
		data = append(data, []string{strconv.Itoa(i + 1), ds.Name, ds.Path})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Found %d datasets\n", len(datasets))
	return err
}

// writeCSVDatasets writes the dataset list in CSV format.
func writeCSVDatasets(w io.Writer, datasets []schema.Dataset) error {
	header := []string{"name", "path"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, ds := range datasets {
			if err := cw.Write([]string{ds.Name, ds.Path}); err != nil {
				return err
			}
		}
		return nil
	})
}
