// Package compiler translates tokenized ++ statements into JavaScript.
//
// Translation itself is not implemented yet; the compiler currently drives
// the tokenizer over the whole input, statement by statement, and returns
// the (for now empty) output lines.
package compiler

import (
	"fmt"
	"os"

	"ppc/internal/frontend/lexer"
)

// Tokenizer is the stream of statements the compiler consumes.
// *lexer.Tokenizer satisfies it.
type Tokenizer interface {
	TokenizeNextStatement() (lexer.Statement, bool, error)
}

// Compiler consumes statements from a tokenizer and emits target-language
// source lines.
type Compiler struct {
	tokenizer Tokenizer

	// Debug traces every consumed statement to stderr.
	Debug bool
}

// New creates a compiler reading from the given tokenizer.
func New(t Tokenizer) *Compiler {
	return &Compiler{tokenizer: t}
}

// Compile pulls every statement from the tokenizer, in order, stopping
// exactly once after the tokenizer reports end of input. Statements are
// never skipped, reordered or duplicated. A tokenizer error aborts the run
// with no partial output.
func (c *Compiler) Compile() ([]string, error) {
	lines := make([]string, 0)
	for n := 1; ; n++ {
		statement, endOfInput, err := c.tokenizer.TokenizeNextStatement()
		if err != nil {
			return nil, fmt.Errorf("tokenizer failed: %w", err)
		}

		if c.Debug && len(statement) > 0 {
			fmt.Fprintf(os.Stderr, "  Statement %d (%d tokens)\n", n, len(statement))
			for _, tok := range statement {
				fmt.Fprintf(os.Stderr, "    %s, %d, %s\n", tok.Value, tok.Start, tok.Kind)
			}
		}

		// Translation of the statement into JavaScript goes here.

		if endOfInput {
			return lines, nil
		}
	}
}
