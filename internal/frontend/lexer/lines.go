package lexer

import (
	"bufio"
	"io"
	"strings"
)

// LineSource produces input one line at a time, newline stripped.
// NextLine returns io.EOF once the source is exhausted; any other error is
// fatal to the caller. Modeling the input this way keeps the state machine
// independent of the byte source, so it can run over in-memory strings.
type LineSource interface {
	NextLine() (string, error)
}

// readerLines adapts any io.Reader into a LineSource.
type readerLines struct {
	r    *bufio.Reader
	done bool
}

// NewLineSource wraps r in a buffered line-at-a-time source.
func NewLineSource(r io.Reader) LineSource {
	return &readerLines{r: bufio.NewReader(r)}
}

func (l *readerLines) NextLine() (string, error) {
	if l.done {
		return "", io.EOF
	}
	line, err := l.r.ReadString('\n')
	if err == io.EOF {
		l.done = true
		if line == "" {
			return "", io.EOF
		}
		// Final line has no trailing newline; deliver it, EOF next call.
		return strings.TrimSuffix(line, "\r"), nil
	}
	if err != nil {
		l.done = true
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
