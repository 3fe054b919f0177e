package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	HeaderColor = color.New(color.FgCyan, color.Bold)  // headers for the statistics sections.
	ValueColor  = color.New(color.FgGreen, color.Bold) // computed statistic values.
	PromptColor = color.New(color.FgYellow)            // interactive questions.
	ErrorColor  = color.New(color.FgRed, color.Bold)   // cycle-level failures.
)

// GetColorValue returns a highlighted form of a statistic value for console
// output. It returns the value unchanged when colors are disabled.
func GetColorValue(value string, useColors bool) string {
	if !useColors {
		return value
	}
	return ValueColor.Sprint(value)
}

// GetColorHeader returns a highlighted form of a section header for console
// output. It returns the header unchanged when colors are disabled.
func GetColorHeader(header string, useColors bool) string {
	if !useColors {
		return header
	}
	return HeaderColor.Sprint(header)
}

// GetColorPrompt returns a highlighted form of an interactive question for
// console output. It returns the prompt unchanged when colors are disabled.
func GetColorPrompt(prompt string, useColors bool) string {
	if !useColors {
		return prompt
	}
	return PromptColor.Sprint(prompt)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateCell truncates a table cell to a maximum width with an ellipsis
// suffix, keeping the head of the value since station names differ there.
// Requires maxWidth > 3 so there is room for "..." plus at least one
// character of content.
func TruncateCell(value string, maxWidth int) string {
	runes := []rune(value)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return value
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
