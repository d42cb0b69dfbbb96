// Package prompt reads validated values from the user one line at a time.
//
// A Prompter keeps asking until it gets an acceptable value. The only other
// way out is the input ending, reported as ErrClosed.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gradebook/internal/course"
)

// ErrClosed is returned once the input stream has ended or the user
// interrupted the terminal prompt.
var ErrClosed = errors.New("input closed")

// LineReader shows prompt and returns the next line the user entered,
// without its line terminator.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Prompter asks for values through a LineReader and writes validation
// messages to out.
type Prompter struct {
	in  LineReader
	out io.Writer
}

// New returns a Prompter reading from in and reporting to out.
func New(in LineReader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Line reads one line and trims surrounding whitespace. Empty is allowed.
func (p *Prompter) Line(prompt string) (string, error) {
	raw, err := p.in.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// NonEmpty reads until the trimmed line is not empty.
func (p *Prompter) NonEmpty(prompt string) (string, error) {
	for {
		v, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		fmt.Fprintln(p.out, "Input cannot be empty. Please try again.")
	}
}

// PositiveInt reads until the line parses as an integer greater than zero.
func (p *Prompter) PositiveInt(prompt string) (int, error) {
	for {
		v, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := course.ParseCredits(v)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, Message(err))
	}
}

// Score reads until the line parses as a number in [0, 100].
func (p *Prompter) Score(prompt string) (float64, error) {
	for {
		v, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		f, err := course.ParseScore(v)
		if err == nil {
			return f, nil
		}
		fmt.Fprintln(p.out, Message(err))
	}
}

// Message maps a parse error to the text shown before re-asking.
func Message(err error) string {
	switch {
	case errors.Is(err, course.ErrNotInteger):
		return "Please enter a valid integer."
	case errors.Is(err, course.ErrNotPositive):
		return "Value must be a positive integer."
	case errors.Is(err, course.ErrNotNumber):
		return "Please enter a valid number."
	case errors.Is(err, course.ErrScoreOutOfRange):
		return "Score must be between 0 and 100."
	case errors.Is(err, course.ErrEmptyField):
		return "Input cannot be empty. Please try again."
	}
	return err.Error()
}
