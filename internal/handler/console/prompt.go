package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads operator input line by line. Numeric reads re-prompt until a
// valid value arrives, mirroring the retry loop of the menu contract.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) ReadString(label string) string {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		p.eof = true
	}
	return strings.TrimSpace(line)
}

// ReadInt re-prompts until the operator supplies a non-negative integer.
// A closed input stream yields 0 so menu loops can unwind.
func (p *Prompter) ReadInt(label string) int {
	for {
		input := p.ReadString(label)
		if p.eof {
			return 0
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 0 {
			fmt.Fprintln(p.out, failure("Please enter a valid number."))
			continue
		}
		return n
	}
}

func (p *Prompter) ReadFloat(label string) float64 {
	for {
		input := p.ReadString(label)
		if p.eof {
			return 0
		}
		f, err := strconv.ParseFloat(input, 64)
		if err != nil || f < 0 {
			fmt.Fprintln(p.out, failure("Please enter a valid amount."))
			continue
		}
		return f
	}
}

func (p *Prompter) Confirm(label string) bool {
	answer := p.ReadString(label)
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}
