// Package source maps character offsets in the tokenized text onto
// human-readable line and column positions for diagnostics.
package source

// Position is a single point in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column in characters
	Offset int // 0-based character offset into the cumulative text
}

// Location is a span of source text between two positions.
// End may be nil for a single-point location.
type Location struct {
	Start *Position
	End   *Position
}

// PositionAt converts a character offset into a Position by walking the
// text seen so far. An offset past the end of text extends the column on
// the last line, which places errors on a line not yet in the buffer.
func PositionAt(text string, offset int) *Position {
	pos := &Position{Line: 1, Column: 1, Offset: offset}
	i := 0
	for _, r := range text {
		if i >= offset {
			return pos
		}
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
		i++
	}
	if offset > i {
		pos.Column += offset - i
	}
	return pos
}

// LocationAt builds a Location spanning length characters starting at offset.
func LocationAt(text string, offset, length int) *Location {
	start := PositionAt(text, offset)
	if length <= 1 {
		return &Location{Start: start}
	}
	return &Location{Start: start, End: PositionAt(text, offset+length)}
}
