package purge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var answers = map[string]bool{
	"yes": true,
	"y":   true,
	"ye":  true,
	"no":  false,
	"n":   false,
}

// ParseAnswer interprets a yes/no reply. Empty input means no. ok is false
// when the reply is not recognized.
func ParseAnswer(reply string) (yes, ok bool) {
	reply = strings.ToLower(strings.TrimSpace(reply))
	if reply == "" {
		return false, true
	}
	yes, ok = answers[reply]
	return yes, ok
}

// Prompter asks yes/no questions on a console.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading replies from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks question until a recognized reply arrives. End of input
// counts as no.
func (p *Prompter) Confirm(question string) (bool, error) {
	bold := color.New(color.Bold)
	for {
		if _, err := bold.Fprintln(p.out, question+" [y/N]"); err != nil {
			return false, err
		}

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading reply: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		if yes, ok := ParseAnswer(line); ok {
			return yes, nil
		}
		if eof {
			return false, nil
		}
		_, _ = fmt.Fprintln(p.out, "Please respond with 'yes' or 'no' (or 'y' or 'n').")
	}
}
