package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// prompter reads operator input. Passwords are masked only when stdin is a
// real terminal; scripted input falls back to plain line reads.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &prompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
	}
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	text, err := p.in.ReadString('\n')
	if err != nil && len(text) == 0 {
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

// optional returns nil when the operator just presses enter.
func (p *prompter) optional(label string) (*string, error) {
	text, err := p.line(label + " (enter to skip)")
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return &text, nil
}

// intInRange re-prompts until the input is a number within [min, max].
func (p *prompter) intInRange(label string, min, max int) (int, error) {
	for {
		text, err := p.line(fmt.Sprintf("%s [%d-%d]", label, min, max))
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(text))
		if convErr != nil || n < min || n > max {
			fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

func (p *prompter) password(label string) (string, error) {
	if p.fd >= 0 && term.IsTerminal(p.fd) {
		fmt.Fprintf(p.out, "%s: ", label)
		raw, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return p.line(label)
}
