package cmd

import (
	"github.com/jmgilman/pdsnd-github/core"
	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/spf13/cobra"
)

// datasetsCmd lists the CSV exports available for analysis.
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the datasets found in the data directory.",
	Long: `Scan the data directory for CSV exports and list them with their
display names. The names shown here are the ones stats and export accept.

Examples:
  # List the exports under ./data
  bikeshare datasets

  # List another directory as JSON
  bikeshare datasets --data-dir ~/exports --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDatasets(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list datasets", err)
		}
	},
}
