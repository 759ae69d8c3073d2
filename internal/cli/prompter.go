package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks yes/no questions on the command's stdio.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter; nil arguments default to os.Stdin and
// os.Stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ConfirmOverwrite asks whether an existing file may be replaced. Anything
// other than "y"/"yes" (including EOF on closed stdin) declines.
func (p *Prompter) ConfirmOverwrite(path string) (bool, error) {
	fmt.Fprintf(p.out, "%s already exists. Overwrite? [y/N]: ", path)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}
