// Package contract provides interfaces and shared utilities for internal architecture.
package contract

// Prompter defines the questions the interactive loop asks on the terminal.
// This allows the menu flow to be tested without a real terminal.
type Prompter interface {
	// AskYesNo asks a yes/no question and re-prompts until the answer reads
	// as yes or no (y/yes/n/no, case-insensitive).
	AskYesNo(question string) (bool, error)

	// Select presents 1-based numbered options and re-prompts until the
	// answer picks one of them. It returns the zero-based index.
	Select(question string, options []string) (int, error)

	// Say writes a line of output to the user.
	Say(format string, args ...any)
}
