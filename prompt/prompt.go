// Package prompt isolates the interactive questions asked during an upload.
package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/bitrise-io/goinp/goinp"
)

// Prompter asks the user for input.
type Prompter interface {
	// Ask returns the answer typed by the user.
	Ask(message string) (string, error)
	// Select returns the index of the chosen option.
	Select(message string, options []string) (int, error)
}

// Terminal prompts on the standard output and reads the answers from in.
type Terminal struct {
	in io.Reader
}

// NewTerminal ...
func NewTerminal(in io.Reader) Terminal {
	if in == nil {
		in = os.Stdin
	}
	return Terminal{in: in}
}

// Ask ...
func (t Terminal) Ask(message string) (string, error) {
	return goinp.AskForStringFromReader(message, t.in)
}

// Select ...
func (t Terminal) Select(message string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("no options to select from")
	}

	selected, err := goinp.SelectFromStringsFromReader(message, options, t.in)
	if err != nil {
		return -1, err
	}

	for i, option := range options {
		if option == selected {
			return i, nil
		}
	}
	return -1, fmt.Errorf("invalid selection: %s", selected)
}
