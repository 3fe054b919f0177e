package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskYesNo(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"yes word", "yes\n", true},
		{"yes letter", "y\n", true},
		{"yes uppercase", "YES\n", true},
		{"no word", "no\n", false},
		{"no letter", "N\n", false},
		{"padded answer", "  yes  \n", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			prompter := NewPrompter(strings.NewReader(tc.input), &out, false)

			answer, err := prompter.AskYesNo("Would you like to filter by month?")

			require.NoError(t, err)
			assert.Equal(t, tc.expected, answer)
			assert.Contains(t, out.String(), "Would you like to filter by month? (yes/no): ")
		})
	}
}

func TestAskYesNoReprompts(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("maybe\nok\nyes\n"), &out, false)

	answer, err := prompter.AskYesNo("Would you like to start over?")

	require.NoError(t, err)
	assert.True(t, answer)
	assert.Equal(t, 3, strings.Count(out.String(), "(yes/no): "))
}

func TestAskYesNoWithoutTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("no"), &out, false)

	answer, err := prompter.AskYesNo("Would you like to see more raw data?")

	require.NoError(t, err)
	assert.False(t, answer)
}

func TestAskYesNoExhaustedInput(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader(""), &out, false)

	_, err := prompter.AskYesNo("Would you like to start over?")

	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("2\n"), &out, false)

	choice, err := prompter.Select("Please choose from the following:", []string{"January", "February", "March"})

	require.NoError(t, err)
	assert.Equal(t, 1, choice)

	output := out.String()
	assert.Contains(t, output, "\nPlease choose from the following:\n")
	assert.Contains(t, output, "\t1. January\n")
	assert.Contains(t, output, "\t2. February\n")
	assert.Contains(t, output, "\t3. March\n")
	assert.Contains(t, output, "Please select a choice (1..3): ")
}

func TestSelectReprompts(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("abc\n9\n0\n3\n"), &out, false)

	choice, err := prompter.Select("Please choose from the following:", []string{"Chicago", "New York City", "Washington"})

	require.NoError(t, err)
	assert.Equal(t, 2, choice)

	output := out.String()
	assert.Equal(t, 4, strings.Count(output, "Please select a choice (1..3): "))
	// The menu itself shows once, not per attempt.
	assert.Equal(t, 1, strings.Count(output, "Please choose from the following:"))
}

func TestSelectExhaustedInput(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("99\n"), &out, false)

	_, err := prompter.Select("Please choose from the following:", []string{"Monday", "Tuesday"})

	assert.Error(t, err)
}

func TestSay(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader(""), &out, false)

	prompter.Say("Found %d files...", 3)

	assert.Equal(t, "Found 3 files...\n", out.String())
}

func TestMockPrompterImplementsInterface(t *testing.T) {
	mockPrompter := &MockPrompter{}
	mockPrompter.On("AskYesNo", "Would you like to filter by month?").Return(true, nil)
	mockPrompter.On("Say", "Loading data file for %s...", []any{"Chicago"}).Return()

	answer, err := mockPrompter.AskYesNo("Would you like to filter by month?")

	require.NoError(t, err)
	assert.True(t, answer)

	mockPrompter.Say("Loading data file for %s...", "Chicago")
	mockPrompter.AssertExpectations(t)
}
