package cmd

import (
	"github.com/jmgilman/pdsnd-github/core"
	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd converts a CSV export to a Parquet file.
var exportCmd = &cobra.Command{
	Use:   "export [dataset]",
	Short: "Write a dataset to a Parquet file.",
	Long: `Load a dataset, parse its timestamps and write the trips as Parquet
for downstream tools such as DuckDB, Spark or pandas.

The month and day filters apply before writing, so a filtered export holds
exactly the trips the matching stats report describes. Without --output-file
the Parquet file lands in the working directory under the dataset's own
name.

Examples:
  # Convert the Chicago export
  bikeshare export chicago --output-file chicago.parquet

  # Export only June trips
  bikeshare export chicago --month June --output-file june.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot export dataset", err)
		}
	},
}
