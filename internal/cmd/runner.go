package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ppc/internal/compiler"
	"ppc/internal/diagnostics"
	"ppc/internal/frontend/lexer"
	"ppc/internal/source"
)

// Options holds compiler configuration, fixed at creation time.
type Options struct {
	Debug      bool   // Enable debug output during compilation
	OutputPath string // Output file path; derived from the input when empty
}

// Runner drives a single compilation: open the tokenizer, consume every
// statement through the compiler, write the output file. Failures are
// reported through the diagnostic bag.
type Runner struct {
	Options     *Options
	Diagnostics *diagnostics.DiagnosticBag
}

// NewRunner creates a runner with the given options.
func NewRunner(options *Options) *Runner {
	if options == nil {
		options = &Options{}
	}
	return &Runner{
		Options:     options,
		Diagnostics: diagnostics.NewDiagnosticBag(""),
	}
}

// Compile compiles one ++ source file to a sibling JavaScript file.
func (r *Runner) Compile(path string) error {
	if r.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 1] Tokenize + Compile: %s\n", path)
	}

	tokenizer, err := lexer.New(path)
	if err != nil {
		var openErr *lexer.OpenError
		if errors.As(err, &openErr) {
			r.Diagnostics.Add(diagnostics.FailedToOpen(openErr.Path, openErr.Err))
		}
		return err
	}
	defer tokenizer.Close()

	comp := compiler.New(tokenizer)
	comp.Debug = r.Options.Debug

	lines, err := comp.Compile()
	if err != nil {
		r.addLexerDiagnostic(tokenizer, err)
		return fmt.Errorf("compilation of %s failed: %w", path, err)
	}

	if tokenizer.PendingBlockComment() {
		r.Diagnostics.Add(diagnostics.UnterminatedBlockComment(path))
	}

	outputPath := r.Options.OutputPath
	if outputPath == "" {
		outputPath = OutputPath(path)
	}
	if err := writeLines(outputPath, lines); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	if r.Options.Debug {
		fmt.Fprintf(os.Stderr, "  ✓ Wrote %d line(s) to %s\n", len(lines), outputPath)
	}

	return nil
}

// EmitDiagnostics outputs all collected diagnostics to the console.
func (r *Runner) EmitDiagnostics() {
	r.Diagnostics.EmitAll()
}

// addLexerDiagnostic maps a fatal tokenizer error onto a diagnostic,
// pointing a decode failure at its exact position in the consumed text.
func (r *Runner) addLexerDiagnostic(tokenizer *lexer.Tokenizer, err error) {
	var decodeErr *lexer.DecodeError
	var ioErr *lexer.IOError
	switch {
	case errors.As(err, &decodeErr):
		loc := source.LocationAt(tokenizer.Text(), decodeErr.Offset, 1)
		r.Diagnostics.Add(diagnostics.InvalidEncoding(decodeErr.Path, loc))
	case errors.As(err, &ioErr):
		r.Diagnostics.Add(diagnostics.ReadFailed(ioErr.Path, ioErr.Err))
	default:
		r.Diagnostics.Add(diagnostics.NewError(err.Error()))
	}
}

// OutputPath derives the output filename: same stem, ".js" extension.
func OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".js"
}

// writeLines writes the compiled output lines to the named file.
func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
