// Package console implements terminal prompts for the interactive flow.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmgilman/pdsnd-github/internal/contract"
)

// Prompter asks questions on a terminal and reads answers line by line.
type Prompter struct {
	reader    *bufio.Reader
	writer    io.Writer
	useColors bool
}

var _ contract.Prompter = &Prompter{} // Compile-time check

// NewPrompter returns a Prompter reading answers from r and writing
// prompts to w.
func NewPrompter(r io.Reader, w io.Writer, useColors bool) *Prompter {
	return &Prompter{
		reader:    bufio.NewReader(r),
		writer:    w,
		useColors: useColors,
	}
}

// AskYesNo implements the Prompter interface. It keeps asking until the
// answer reads as yes or no.
func (p *Prompter) AskYesNo(question string) (bool, error) {
	prompt := contract.GetColorPrompt(fmt.Sprintf("%s (yes/no): ", question), p.useColors)
	for {
		fmt.Fprint(p.writer, prompt)
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
	}
}

// Select implements the Prompter interface. It shows a numbered menu once
// and keeps asking until the answer names one of the options. The returned
// index is zero-based.
func (p *Prompter) Select(question string, options []string) (int, error) {
	fmt.Fprintf(p.writer, "\n%s\n", question)
	for i, option := range options {
		fmt.Fprintf(p.writer, "\t%d. %s\n", i+1, option)
	}
	fmt.Fprintln(p.writer)

	prompt := contract.GetColorPrompt(fmt.Sprintf("Please select a choice (1..%d): ", len(options)), p.useColors)
	for {
		fmt.Fprint(p.writer, prompt)
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(answer)
		if err != nil || choice < 1 || choice > len(options) {
			continue
		}
		return choice - 1, nil
	}
}

// Say implements the Prompter interface. It writes one formatted line.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.writer, format+"\n", args...)
}

// readLine reads one answer and strips surrounding whitespace. A final
// line without a trailing newline still counts, so piped input works.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
