package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorValue(t *testing.T) {
	t.Run("colors disabled returns value unchanged", func(t *testing.T) {
		assert.Equal(t, "June", GetColorValue("June", false))
	})

	t.Run("colors enabled contains value", func(t *testing.T) {
		// Should contain the plain value regardless of escape codes
		assert.Contains(t, GetColorValue("June", true), "June")
	})
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestTruncateCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{
			name:     "short value untouched",
			input:    "Canal St",
			maxWidth: 20,
			expected: "Canal St",
		},
		{
			name:     "exact width untouched",
			input:    "Canal St",
			maxWidth: 8,
			expected: "Canal St",
		},
		{
			name:     "long value truncated with suffix ellipsis",
			input:    "Streeter Dr & Grand Ave",
			maxWidth: 12,
			expected: "Streeter ...",
		},
		{
			name:     "tiny width leaves value alone",
			input:    "Canal St",
			maxWidth: 3,
			expected: "Canal St",
		},
		{
			name:     "unicode safe",
			input:    "Čiurlionio g. & Mindaugo g.",
			maxWidth: 10,
			expected: "Čiurlio...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateCell(tt.input, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input       string
		want        bool
		expectError bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"No", false, false},
		{"false", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
