package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInputClosed is returned by the prompt reader once input is exhausted
var ErrInputClosed = errors.New("input closed")

// Prompter reads answers line by line, echoing prompts to out
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompt reader over in
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// Line prints label and returns the next input line without its newline
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

// ID keeps asking until the answer parses as an identifier
func (p *Prompter) ID(label string) (uuid.UUID, error) {
	for {
		raw, err := p.Line(label)
		if err != nil {
			return uuid.Nil, err
		}
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err == nil {
			return id, nil
		}
		fmt.Fprintln(p.out, "Invalid identifier. Please try again.")
	}
}

// OptionalID returns nil when the answer is not an identifier
func (p *Prompter) OptionalID(label string) (*uuid.UUID, error) {
	raw, err := p.Line(label)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, nil
	}
	return &id, nil
}

// Date keeps asking until the answer parses with layout. The result is
// midnight UTC of the entered date.
func (p *Prompter) Date(label, layout string) (time.Time, error) {
	for {
		raw, err := p.Line(fmt.Sprintf("%s (%s)", label, layout))
		if err != nil {
			return time.Time{}, err
		}
		date, err := time.ParseInLocation(layout, strings.TrimSpace(raw), time.UTC)
		if err == nil {
			return date, nil
		}
		fmt.Fprintf(p.out, "Invalid date. Use the %s format.\n", layout)
	}
}
