package cmd

import (
	"github.com/jmgilman/pdsnd-github/core"
	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/spf13/cobra"
)

// statsCmd computes the statistics report in one shot.
var statsCmd = &cobra.Command{
	Use:   "stats [dataset]",
	Short: "Print trip statistics for one dataset.",
	Long: `Load a dataset and print the four statistics sections without prompts.

The dataset argument is a CSV path, a file stem like chicago, or a display
name like "New York City". With a single export in the data directory the
argument can be dropped.

The report covers:
- Most popular month, day of week and hour of travel
- Most popular start station, end station and station-to-station trip
- Total and average trip durations
- Rider type counts, plus gender and birth year where the export has them

Examples:
  # Summarize the only export under ./data
  bikeshare stats

  # Pick a dataset and keep June Fridays only
  bikeshare stats chicago --month June --day Friday

  # Machine-readable report for downstream tooling
  bikeshare stats new_york_city --output json --output-file report.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot compute statistics", err)
		}
	},
}
