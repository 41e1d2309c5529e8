// Package lexer turns ++ source text into statements of positioned tokens.
//
// A token is either a run of ASCII alphanumerics/underscores (an identifier)
// or a single punctuation character (a symbol). Whitespace, comments and
// non-ASCII characters separate tokens and are never part of one. Multi
// character operators are left to the parser, which assembles them from
// adjacent symbol tokens; the only multi-character punctuation the lexer
// understands is comment delimiters.
package lexer

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Tokenizer converts a line-oriented input source into statements,
// stripping comments as it goes. It is stateful for the lifetime of one
// compilation and is not safe for concurrent use.
type Tokenizer struct {
	path  string
	lines LineSource
	file  *os.File // non-nil when New opened a real file

	text      strings.Builder // input consumed so far, newlines included
	statement Statement
	mode      mode
	cursor    int // character offset into text
	eof       bool
}

// New binds a tokenizer to the named source file. It fails with *OpenError
// if the file cannot be opened and consumes no input on success.
func New(path string) (*Tokenizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	t := NewReader(path, f)
	t.file = f
	return t, nil
}

// NewReader binds a tokenizer to an arbitrary input stream. The name only
// appears in error values.
func NewReader(name string, r io.Reader) *Tokenizer {
	return &Tokenizer{path: name, lines: NewLineSource(r)}
}

// Close releases the underlying file, if the tokenizer owns one.
func (t *Tokenizer) Close() error {
	if t.file != nil {
		return t.file.Close()
	}
	return nil
}

// Text returns the input consumed so far. Token.Start offsets are character
// indices into this text.
func (t *Tokenizer) Text() string {
	return t.text.String()
}

// PendingBlockComment reports whether the input ended inside an open block
// comment. The dropped comment text is not an error; callers may warn.
func (t *Tokenizer) PendingBlockComment() bool {
	return t.mode == modeBlockComment
}

// TokenizeNextStatement accumulates tokens line by line until a statement
// terminator (";", "{" or "}") is consumed, returning the statement with the
// terminator as its final token and false. When input runs out first it
// returns whatever was accumulated and true; further calls keep returning an
// empty statement and true. A decode or read failure discards the statement
// in progress and is fatal for the whole run.
func (t *Tokenizer) TokenizeNextStatement() (Statement, bool, error) {
	t.statement = nil
	if t.eof {
		return nil, true, nil
	}
	for {
		line, err := t.lines.NextLine()
		if err == io.EOF {
			t.eof = true
			return t.statement, true, nil
		}
		if err != nil {
			t.eof = true
			t.statement = nil
			return nil, false, &IOError{Path: t.path, Err: err}
		}
		if i := invalidRuneIndex(line); i >= 0 {
			t.eof = true
			t.statement = nil
			return nil, false, &DecodeError{Path: t.path, Offset: t.cursor + i}
		}
		t.text.WriteString(line)
		t.text.WriteByte('\n')
		if t.tokenizeLine(line) {
			return t.statement, false, nil
		}
	}
}

// tokenizeLine runs the character state machine over one line, reporting
// whether a statement terminator was consumed. Comment modes carry over
// between lines on t.mode; everything else is per-line.
func (t *Tokenizer) tokenizeLine(line string) bool {
	lastCharIsStar := false // identifies "*/" inside a block comment
	var tok Token           // token under construction
	runes := []rune(line)

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if t.mode == modeLineComment {
			// The rest of the line is comment body, but still counts.
			t.cursor++
			continue
		}
		if t.mode == modeBlockComment {
			if c == '/' && lastCharIsStar {
				t.mode = modeNeutral
			}
			lastCharIsStar = c == '*'
			t.cursor++
			continue
		}

		next := classify(c)
		if next == modeNeutral {
			// Whitespace separates tokens but is never part of one. The
			// pending token stays open until the next token begins.
			t.mode = modeNeutral
			t.cursor++
			continue
		}

		if next == t.mode {
			tok.Value += string(c)
		} else {
			t.addToken(tok, next)
			if t.mode == modeLineComment || t.mode == modeBlockComment {
				// Finalizing the previous symbol run opened a comment, so
				// this character is comment body, not the start of a token.
				// It still takes part in "*/" detection.
				lastCharIsStar = c == '*'
				tok = Token{}
				t.cursor++
				continue
			}
			tok = Token{Value: string(c), Start: t.cursor, Kind: tokenKind(next)}
		}

		t.cursor++
		if isEndSymbol(c) {
			t.addToken(tok, modeNeutral)
			// The remainder of the line is dropped unscanned, but the
			// cursor still accounts for it so later offsets stay aligned
			// with the cumulative text.
			t.cursor += len(runes) - 1 - i
			if t.mode == modeLineComment {
				t.mode = modeNeutral
			}
			t.cursor++ // newline
			return true
		}
	}

	switch t.mode {
	case modeBlockComment:
		// The comment continues on the next line; nothing to finalize.
	case modeLineComment:
		t.mode = modeNeutral
	default:
		t.addToken(tok, modeNeutral)
		// Finalization may have found a "//" at the end of the line; a
		// line comment never crosses the newline.
		if t.mode == modeLineComment {
			t.mode = modeNeutral
		}
	}
	t.cursor++ // newline
	return false
}

// addToken finalizes a pending token: identifiers are appended to the
// statement as-is, symbol runs are stripped of comments and split into one
// token per character. Empty tokens are dropped. The tokenizer's mode
// becomes next unless stripping switched it into a comment mode.
func (t *Tokenizer) addToken(tok Token, next mode) {
	t.mode = next
	if tok.Value == "" {
		return
	}
	if tok.Kind != SYMBOL_TOKEN {
		t.statement = append(t.statement, tok)
		return
	}
	for _, run := range t.stripComments(tok) {
		// Symbol runs are pure ASCII, so byte offsets equal character
		// offsets within the run.
		for j := 0; j < len(run.Value); j++ {
			t.statement = append(t.statement, Token{
				Value: string(run.Value[j]),
				Start: run.Start + j,
				Kind:  SYMBOL_TOKEN,
			})
		}
	}
}

// stripComments removes comment spans from a symbol run. Block comments are
// excised first, splitting the run around them; an unmatched "/*" truncates
// the run and leaves the tokenizer in block-comment mode. A "//" in what
// survives truncates the run and enters line-comment mode for the rest of
// the current line.
func (t *Tokenizer) stripComments(tok Token) []Token {
	var stripped []Token
	for tok.Value != "" {
		start := strings.Index(tok.Value, "/*")
		if start < 0 {
			break
		}
		if start > 0 && tok.Value[start-1] == '/' {
			break // this "/*" is the tail of "//*", a line comment
		}
		rel := strings.Index(tok.Value[start+2:], "*/")
		if rel < 0 {
			stripped = append(stripped, Token{Value: tok.Value[:start], Start: tok.Start, Kind: tok.Kind})
			t.mode = modeBlockComment
			break
		}
		end := start + 2 + rel + 2 // first index past "*/"
		stripped = append(stripped, Token{Value: tok.Value[:start], Start: tok.Start, Kind: tok.Kind})
		tok = Token{Value: tok.Value[end:], Start: tok.Start + end, Kind: tok.Kind}
	}
	if t.mode != modeBlockComment {
		if i := strings.Index(tok.Value, "//"); i >= 0 {
			t.mode = modeLineComment
			tok.Value = tok.Value[:i]
		}
		stripped = append(stripped, tok)
	}
	return stripped
}

func tokenKind(m mode) Kind {
	if m == modeIdentifier {
		return IDENTIFIER_TOKEN
	}
	return SYMBOL_TOKEN
}

// invalidRuneIndex returns the character index of the first byte that is
// not part of valid UTF-8, or -1 if the whole line decodes cleanly.
func invalidRuneIndex(line string) int {
	chars := 0
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		if r == utf8.RuneError && size == 1 {
			return chars
		}
		i += size
		chars++
	}
	return -1
}
