// Package colors provides ANSI escape helpers for terminal output.
package colors

import (
	"fmt"
	"io"
	"os"
)

// Color is an ANSI escape sequence applied around printed text.
type Color string

const (
	RESET Color = "\033[0m"

	RED      Color = "\033[31m"
	YELLOW   Color = "\033[33m"
	BLUE     Color = "\033[34m"
	CYAN     Color = "\033[36m"
	GREY     Color = "\033[90m"
	BOLD     Color = "\033[1m"
	BOLD_RED Color = "\033[1;31m"
)

// enabled is false when the NO_COLOR convention is in effect.
var enabled = os.Getenv("NO_COLOR") == ""

// Disable turns off color output globally (used by tests and dumb terminals).
func Disable() {
	enabled = false
}

// Sprint wraps the arguments in the color's escape codes.
func (c Color) Sprint(a ...any) string {
	if !enabled {
		return fmt.Sprint(a...)
	}
	return string(c) + fmt.Sprint(a...) + string(RESET)
}

// Sprintf formats and wraps in the color's escape codes.
func (c Color) Sprintf(format string, a ...any) string {
	if !enabled {
		return fmt.Sprintf(format, a...)
	}
	return string(c) + fmt.Sprintf(format, a...) + string(RESET)
}

// Println prints the colored arguments to stdout with a trailing newline.
func (c Color) Println(a ...any) {
	fmt.Println(c.Sprint(a...))
}

// Fprintf writes colored formatted output to w.
func (c Color) Fprintf(w io.Writer, format string, a ...any) {
	fmt.Fprint(w, c.Sprintf(format, a...))
}
