package cmd

import (
	"github.com/jmgilman/pdsnd-github/core"
	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/spf13/cobra"
)

// interactiveCmd runs the guided question-and-answer session.
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Explore a dataset through guided questions.",
	Long: `Walk through the analysis step by step on the terminal.

The session:
- Lists the CSV exports found in the data directory
- Lets you pick one from a numbered menu
- Offers optional month and day-of-week filters
- Prints the four statistics sections
- Pages through the raw rows on request
- Offers a fresh start when done

Answer yes/no questions with y or yes, n or no. Menus take the number
of the choice.

Examples:
  # Explore the exports under ./data
  bikeshare interactive

  # Explore another directory with bigger pages
  bikeshare interactive --data-dir ~/exports --page-size 10`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteInteractive(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run interactive session", err)
		}
	},
}
