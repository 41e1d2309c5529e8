package diagnostics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"ppc/colors"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	if lines, ok := sc.files[filepath]; ok {
		if line > 0 && line <= len(lines) {
			return lines[line-1], nil
		}
		return "", fmt.Errorf("line %d out of range", line)
	}

	// Load file
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	sc.files[filepath] = lines

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}

	return "", fmt.Errorf("line %d out of range", line)
}

// SetSourceLines pre-populates the cache for a file (used when the source
// only exists in memory, e.g. tests)
func (sc *SourceCache) SetSourceLines(filepath string, lines []string) {
	sc.files[filepath] = lines
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache *SourceCache
	out   io.Writer
}

func NewEmitter() *Emitter {
	return NewEmitterWithWriter(os.Stderr)
}

func NewEmitterWithWriter(w io.Writer) *Emitter {
	return &Emitter{
		cache: NewSourceCache(),
		out:   w,
	}
}

// SetSourceLines pre-populates the emitter's source cache for a file
func (e *Emitter) SetSourceLines(filepath string, lines []string) {
	e.cache.SetSourceLines(filepath, lines)
}

// Emit renders and prints a single diagnostic
func (e *Emitter) Emit(filepath string, diag *Diagnostic) {
	// Use filepath from diagnostic if available, otherwise use parameter
	if diag.FilePath != "" {
		filepath = diag.FilePath
	}

	e.printHeader(diag)

	for _, label := range diag.Labels {
		e.printLabel(filepath, label, diag.Severity)
	}

	for _, note := range diag.Notes {
		fmt.Fprintf(e.out, "%s %s\n", colors.CYAN.Sprint("note:"), note.Message)
	}
	if diag.Help != "" {
		fmt.Fprintf(e.out, "%s %s\n", colors.CYAN.Sprint("help:"), diag.Help)
	}
	fmt.Fprintln(e.out)
}

// printHeader prints e.g. "error[L0002]: source is not valid UTF-8"
func (e *Emitter) printHeader(diag *Diagnostic) {
	severity := diag.Severity.String()
	if diag.Code != "" {
		severity = fmt.Sprintf("%s[%s]", severity, diag.Code)
	}

	color := colors.BOLD_RED
	if diag.Severity == Warning {
		color = colors.YELLOW
	} else if diag.Severity != Error {
		color = colors.CYAN
	}
	fmt.Fprintf(e.out, "%s: %s\n", color.Sprint(severity), colors.BOLD.Sprint(diag.Message))
}

// printLabel prints the "--> file:line:col" pointer, the offending source
// line and a caret underneath the labeled span
func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}
	start := label.Location.Start

	fmt.Fprintf(e.out, "  %s %s:%d:%d\n", colors.GREY.Sprint("-->"), filepath, start.Line, start.Column)

	line, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		return
	}

	width := 1
	if start.Column > 0 {
		width = start.Column
	}
	caretCount := 1
	if end := label.Location.End; end != nil && end.Line == start.Line && end.Column > start.Column {
		caretCount = end.Column - start.Column
	}

	caretColor := colors.BOLD_RED
	if severity == Warning {
		caretColor = colors.YELLOW
	}

	fmt.Fprintf(e.out, "%s %s\n", colors.GREY.Sprintf("%4d |", start.Line), line)
	fmt.Fprintf(e.out, "%s %s%s %s\n",
		colors.GREY.Sprint("     |"),
		strings.Repeat(" ", width-1),
		caretColor.Sprint(strings.Repeat("^", caretCount)),
		caretColor.Sprint(label.Message))
}
