package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Lines is a LineReader over a plain stream, such as piped stdin. The
// prompt is echoed to out without a trailing newline.
type Lines struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLines returns a LineReader reading from in.
func NewLines(in io.Reader, out io.Writer) *Lines {
	return &Lines{r: bufio.NewReader(in), out: out}
}

// ReadLine writes prompt and reads up to the next newline or end of input.
func (l *Lines) ReadLine(prompt string) (string, error) {
	fmt.Fprint(l.out, prompt)
	line, err := l.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		// A final line without a newline still counts.
		if line == "" {
			return "", ErrClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
