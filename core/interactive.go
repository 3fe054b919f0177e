package core

import (
	"context"
	"io"
	"os"

	"github.com/jmgilman/pdsnd-github/internal/console"
	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/jmgilman/pdsnd-github/internal/dataload"
	"github.com/jmgilman/pdsnd-github/internal/outwriter"
	"github.com/jmgilman/pdsnd-github/schema"
)

// ExecuteInteractive runs the guided menu loop on the terminal.
// It serves as the main entry point for the 'interactive' command.
func ExecuteInteractive(_ context.Context, cfg *contract.Config) error {
	prompter := console.NewPrompter(os.Stdin, os.Stdout, cfg.UseColors)
	return runInteractive(cfg, prompter, os.Stdout)
}

// runInteractive drives analysis cycles until the user declines a restart.
// Cycle errors surface as messages and lead back to the restart question,
// so a bad data file never ends the session.
func runInteractive(cfg *contract.Config, prompter contract.Prompter, out io.Writer) error {
	for {
		if err := runCycle(cfg, prompter, out); err != nil {
			prompter.Say("❌ %v", err)
		}
		again, err := prompter.AskYesNo("Would you like to start over?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// runCycle walks one discover -> select -> load -> filter -> report pass.
func runCycle(cfg *contract.Config, prompter contract.Prompter, out io.Writer) error {
	prompter.Say("Welcome to the bike share analysis tool!")
	prompter.Say("Searching for raw data files...")

	datasets, err := dataload.Discover(cfg.DataDir)
	if err != nil {
		return err
	}
	prompter.Say("Found %d files...", len(datasets))

	names := make([]string, len(datasets))
	for i, ds := range datasets {
		names[i] = ds.Name
	}
	choice, err := prompter.Select("Please choose from the following:", names)
	if err != nil {
		return err
	}
	ds := datasets[choice]

	prompter.Say("Loading data file for %s...", ds.Name)
	table, err := LoadNormalized(ds.Path)
	if err != nil {
		return err
	}

	var filter schema.FilterSummary
	wantFilter, err := prompter.AskYesNo("Would you like to filter the raw data before processing?")
	if err != nil {
		return err
	}
	if wantFilter {
		filter, err = askFilter(table, prompter)
		if err != nil {
			return err
		}
	}

	filtered := ApplyFilter(table, filter)
	if filtered.Len() == 0 {
		prompter.Say("No trips match this filter")
		return nil
	}

	report, err := BuildReport(ds.Name, filter, filtered)
	if err != nil {
		return err
	}
	if err := outwriter.WriteReportText(out, report, cfg.UseColors); err != nil {
		return err
	}

	prompter.Say("There are %s rows in the raw data", outwriter.FormatCount(filtered.Len()))
	wantRaw, err := prompter.AskYesNo("Would you like to see the paginated raw data?")
	if err != nil {
		return err
	}
	if wantRaw {
		return pageRows(filtered, cfg, prompter, out)
	}
	return nil
}

// askFilter asks the month and weekday questions and records the choices.
// The month menu only offers months the table actually covers.
func askFilter(table *schema.TripTable, prompter contract.Prompter) (schema.FilterSummary, error) {
	var filter schema.FilterSummary

	byMonth, err := prompter.AskYesNo("Would you like to filter by month?")
	if err != nil {
		return filter, err
	}
	if byMonth {
		months := UniqueMonths(table)
		names := make([]string, len(months))
		for i, m := range months {
			names[i] = m.String()
		}
		choice, err := prompter.Select("Please choose from the following:", names)
		if err != nil {
			return filter, err
		}
		filter.Month = &months[choice]
	}

	byDay, err := prompter.AskYesNo("Would you like to filter by day of the week?")
	if err != nil {
		return filter, err
	}
	if byDay {
		// Menu order matches the Monday-first ordinals, so the chosen
		// index is the weekday value itself.
		choice, err := prompter.Select("Please choose from the following:", schema.WeekdayNames[:])
		if err != nil {
			return filter, err
		}
		filter.Weekday = &choice
	}

	return filter, nil
}

// pageRows shows page-size rows at a time, stopping at the end of the table
// instead of paging past it.
func pageRows(table *schema.TripTable, cfg *contract.Config, prompter contract.Prompter, out io.Writer) error {
	for start := 0; start < table.Len(); start += cfg.PageSize {
		end := min(start+cfg.PageSize, table.Len())
		prompter.Say("\nDisplaying rows %d through %d...", start+1, end)
		if err := outwriter.WriteRawPage(out, table, start, end, cfg); err != nil {
			return err
		}
		if end == table.Len() {
			prompter.Say("Reached the end of the raw data")
			return nil
		}
		more, err := prompter.AskYesNo("Would you like to see more raw data?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return nil
}
