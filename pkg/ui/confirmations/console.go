// Package confirmations provides the console confirmation prompt shown
// before files are moved.
package confirmations

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ConsoleDialog asks yes/no questions on a console
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog reading answers from in and writing
// prompts to out
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm asks question and returns the answer. An empty answer, or end of
// input, selects defaultYes.
func (d *ConsoleDialog) Confirm(question string, defaultYes bool) (bool, error) {
	marker := "[y/N]"
	if defaultYes {
		marker = "[Y/n]"
	}
	if _, err := fmt.Fprintf(d.out, "%s %s: ", question, marker); err != nil {
		return false, err
	}

	line, err := d.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		_, _ = fmt.Fprintln(d.out)
	}

	response := strings.ToLower(strings.TrimSpace(line))
	if response == "" {
		return defaultYes, nil
	}
	return response == "y" || response == "yes", nil
}
