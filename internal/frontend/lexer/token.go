package lexer

// Kind classifies an emitted token.
type Kind int

const (
	// IDENTIFIER_TOKEN is a run of ASCII letters, digits and underscores.
	IDENTIFIER_TOKEN Kind = iota
	// SYMBOL_TOKEN is a single ASCII punctuation character.
	SYMBOL_TOKEN
)

func (k Kind) String() string {
	switch k {
	case IDENTIFIER_TOKEN:
		return "Identifier"
	case SYMBOL_TOKEN:
		return "Symbol"
	default:
		return "Unknown"
	}
}

// Token is a classified unit of source text. Start is the zero-based
// character offset of the token's first character in the cumulative text
// the tokenizer has consumed so far, newlines included.
type Token struct {
	Value string
	Start int
	Kind  Kind
}

// Statement is the ordered token sequence collected up to and including a
// statement terminator (";", "{" or "}").
type Statement []Token

// mode is the tokenizer's current interpretation context. It persists on
// the Tokenizer across statement calls so a block comment opened in one
// statement keeps consuming input in the next.
type mode int

const (
	modeNeutral mode = iota // between tokens (start of input, after whitespace)
	modeIdentifier
	modeSymbol
	modeLineComment
	modeBlockComment
)

// classify returns the mode a character drives the tokenizer into:
// identifier characters, symbol characters, or neutral for whitespace and
// everything non-ASCII. Comment modes are never entered from here.
func classify(c rune) mode {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		return modeIdentifier
	case c > ' ' && c < 0x7f: // remaining printable ASCII is punctuation
		return modeSymbol
	default:
		return modeNeutral
	}
}

// isEndSymbol reports whether c terminates a statement.
func isEndSymbol(c rune) bool {
	return c == ';' || c == '{' || c == '}'
}
