package core

import (
	"bytes"
	"testing"

	"github.com/jmgilman/pdsnd-github/internal/console"
	"github.com/jmgilman/pdsnd-github/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newScriptedPrompter returns a mock that swallows every Say call; tests
// script the questions they care about on top.
func newScriptedPrompter() *console.MockPrompter {
	prompter := &console.MockPrompter{}
	prompter.On("Say", mock.Anything, mock.Anything).Return()
	return prompter
}

func TestRunInteractiveSingleCycle(t *testing.T) {
	cfg := testConfig("")
	prompter := newScriptedPrompter()
	prompter.On("Select", "Please choose from the following:", []string{"Chicago Sample", "Washington Sample"}).Return(0, nil)
	prompter.On("AskYesNo", "Would you like to filter the raw data before processing?").Return(false, nil)
	prompter.On("AskYesNo", "Would you like to see the paginated raw data?").Return(false, nil)
	prompter.On("AskYesNo", "Would you like to start over?").Return(false, nil)

	var out bytes.Buffer
	err := runInteractive(cfg, prompter, &out)

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "🔎 Dataset: Chicago Sample (filter: none)")
	assert.Contains(t, output, "🕒 Most popular times of travel:")
	assert.Contains(t, output, "👤 User information:")
	prompter.AssertCalled(t, "Say", "Welcome to the bike share analysis tool!", mock.Anything)
	prompter.AssertCalled(t, "Say", "Found %d files...", []any{2})
	prompter.AssertCalled(t, "Say", "There are %s rows in the raw data", []any{"6"})
	prompter.AssertExpectations(t)
}

func TestRunInteractiveRestartsOnce(t *testing.T) {
	cfg := testConfig("")
	prompter := newScriptedPrompter()
	prompter.On("Select", "Please choose from the following:", mock.Anything).Return(1, nil)
	prompter.On("AskYesNo", "Would you like to filter the raw data before processing?").Return(false, nil)
	prompter.On("AskYesNo", "Would you like to see the paginated raw data?").Return(false, nil)
	prompter.On("AskYesNo", "Would you like to start over?").Return(true, nil).Once()
	prompter.On("AskYesNo", "Would you like to start over?").Return(false, nil).Once()

	var out bytes.Buffer
	err := runInteractive(cfg, prompter, &out)

	require.NoError(t, err)
	prompter.AssertNumberOfCalls(t, "Select", 2)
	assert.Contains(t, out.String(), "Washington Sample")
}

func TestRunInteractiveWithMonthFilter(t *testing.T) {
	cfg := testConfig("")
	prompter := newScriptedPrompter()
	prompter.On("Select", "Please choose from the following:", []string{"Chicago Sample", "Washington Sample"}).Return(0, nil)
	prompter.On("AskYesNo", "Would you like to filter the raw data before processing?").Return(true, nil)
	prompter.On("AskYesNo", "Would you like to filter by month?").Return(true, nil)
	// The fixture covers January, May and June.
	prompter.On("Select", "Please choose from the following:", []string{"January", "May", "June"}).Return(2, nil)
	prompter.On("AskYesNo", "Would you like to filter by day of the week?").Return(false, nil)
	prompter.On("AskYesNo", "Would you like to see the paginated raw data?").Return(false, nil)
	prompter.On("AskYesNo", "Would you like to start over?").Return(false, nil)

	var out bytes.Buffer
	err := runInteractive(cfg, prompter, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "(filter: month=June)")
	prompter.AssertCalled(t, "Say", "There are %s rows in the raw data", []any{"3"})
}

func TestRunInteractiveWeekdayMenuOffersFullWeek(t *testing.T) {
	cfg := testConfig("")
	prompter := newScriptedPrompter()
	prompter.On("Select", "Please choose from the following:", []string{"Chicago Sample", "Washington Sample"}).Return(0, nil)
	prompter.On("AskYesNo", "Would you like to filter the raw data before processing?").Return(true, nil)
	prompter.On("AskYesNo", "Would you like to filter by month?").Return(false, nil)
	prompter.On("AskYesNo", "Would you like to filter by day of the week?").Return(true, nil)
	// Friday is ordinal 4 in the Monday-first week; only the 2017-06-23
	// row starts on one.
	prompter.On("Select", "Please choose from the following:", schema.WeekdayNames[:]).Return(4, nil)
	prompter.On("AskYesNo", "Would you like to see the paginated raw data?").Return(false, nil)
	prompter.On("AskYesNo", "Would you like to start over?").Return(false, nil)

	var out bytes.Buffer
	err := runInteractive(cfg, prompter, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "(filter: day=Friday)")
}

func TestRunInteractiveEmptyFilterResult(t *testing.T) {
	cfg := testConfig("")
	prompter := newScriptedPrompter()
	prompter.On("Select", "Please choose from the following:", []string{"Chicago Sample", "Washington Sample"}).Return(0, nil)
	prompter.On("AskYesNo", "Would you like to filter the raw data before processing?").Return(true, nil)
	prompter.On("AskYesNo", "Would you like to filter by month?").Return(false, nil)
	prompter.On("AskYesNo", "Would you like to filter by day of the week?").Return(true, nil)
	// No fixture trip starts on a Saturday.
	prompter.On("Select", "Please choose from the following:", schema.WeekdayNames[:]).Return(5, nil)
	prompter.On("AskYesNo", "Would you like to start over?").Return(false, nil)

	var out bytes.Buffer
	err := runInteractive(cfg, prompter, &out)

	require.NoError(t, err)
	prompter.AssertCalled(t, "Say", "No trips match this filter", mock.Anything)
	assert.NotContains(t, out.String(), "🔎 Dataset:")
}

func TestRunInteractiveCycleErrorOffersRestart(t *testing.T) {
	cfg := testConfig("")
	cfg.DataDir = t.TempDir() // nothing to discover

	prompter := newScriptedPrompter()
	prompter.On("AskYesNo", "Would you like to start over?").Return(false, nil)

	var out bytes.Buffer
	err := runInteractive(cfg, prompter, &out)

	require.NoError(t, err)
	prompter.AssertCalled(t, "Say", "❌ %v", mock.Anything)
}

func TestPageRowsStopsAtEnd(t *testing.T) {
	table, err := LoadNormalized("testdata/chicago_sample.csv")
	require.NoError(t, err)
	cfg := testConfig("")
	cfg.Width = 400 // wide enough that station names render untruncated

	prompter := newScriptedPrompter()
	prompter.On("AskYesNo", "Would you like to see more raw data?").Return(true, nil)

	var out bytes.Buffer
	require.NoError(t, pageRows(table, cfg, prompter, &out))

	// Six rows at a page size of five: rows 1-5, then the clamped 6-6 page.
	prompter.AssertCalled(t, "Say", "\nDisplaying rows %d through %d...", []any{1, 5})
	prompter.AssertCalled(t, "Say", "\nDisplaying rows %d through %d...", []any{6, 6})
	prompter.AssertCalled(t, "Say", "Reached the end of the raw data", mock.Anything)
	prompter.AssertNumberOfCalls(t, "AskYesNo", 1)
	assert.Contains(t, out.String(), "Wood St & Hubbard St")
}

func TestPageRowsStopsWhenDeclined(t *testing.T) {
	table, err := LoadNormalized("testdata/chicago_sample.csv")
	require.NoError(t, err)
	cfg := testConfig("")
	cfg.Width = 400

	prompter := newScriptedPrompter()
	prompter.On("AskYesNo", "Would you like to see more raw data?").Return(false, nil)

	var out bytes.Buffer
	require.NoError(t, pageRows(table, cfg, prompter, &out))

	prompter.AssertCalled(t, "Say", "\nDisplaying rows %d through %d...", []any{1, 5})
	assert.NotContains(t, out.String(), "Canal St & Taylor St") // row 6 never shows
}
