// Package cmd defines the command-line interface for bikeshare.
package cmd

import (
	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/jmgilman/pdsnd-github/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data-dir", contract.DefaultDataDir, "Directory scanned for *.csv trip exports")
	rootCmd.PersistentFlags().Int("page-size", contract.DefaultPageSize, "Rows displayed per page of raw data")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Filter flags for statsCmd; sharedSetup binds them at run time
	statsCmd.Flags().String("month", "", "Keep trips starting in this month (name or 1-12)")
	statsCmd.Flags().String("day", "", "Keep trips starting on this weekday (name or 0-6, Monday first)")

	// exportCmd accepts the same filters
	exportCmd.Flags().String("month", "", "Keep trips starting in this month (name or 1-12)")
	exportCmd.Flags().String("day", "", "Keep trips starting on this weekday (name or 0-6, Monday first)")
}
