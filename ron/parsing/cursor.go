// Package parsing implements the RON syntax parser: a value-semantics
// cursor over the input text, a small combinator engine with ordered
// choice and cut points, and the grammar rules producing the span-annotated
// AST.
package parsing

import (
	"unicode/utf8"

	"github.com/satishbabariya/ron-go/ron/diagnostics"
)

// Cursor is an immutable view into the input text. It tracks the byte
// offset together with the 1-based line and column, so a position captured
// at any point doubles as a diagnostic location. Cursors are plain values:
// combinators fork them freely for backtracking and never need undo logic.
type Cursor struct {
	src  string
	off  int
	line int
	col  int
}

// NewCursor creates a cursor at the start of src.
func NewCursor(src string) Cursor {
	return Cursor{src: src, line: 1, col: 1}
}

// Peek returns the next code point without advancing. The second result is
// false at end of input.
func (c Cursor) Peek() (rune, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.off:])
	return r, true
}

// Rest returns the unconsumed remainder of the input.
func (c Cursor) Rest() string {
	return c.src[c.off:]
}

// Source returns the complete input text the cursor was created over.
func (c Cursor) Source() string {
	return c.src
}

// EOF reports whether the cursor is at the end of the input.
func (c Cursor) EOF() bool {
	return c.off >= len(c.src)
}

// HasPrefix reports whether the remaining input starts with s.
func (c Cursor) HasPrefix(s string) bool {
	rest := c.src[c.off:]
	return len(rest) >= len(s) && rest[:len(s)] == s
}

// Advance returns a cursor moved forward by n code points, updating line
// and column. Advancing past the end of input stops at the end.
func (c Cursor) Advance(n int) Cursor {
	for i := 0; i < n && c.off < len(c.src); i++ {
		r, size := utf8.DecodeRuneInString(c.src[c.off:])
		c.off += size
		if r == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
	}
	return c
}

// Pos captures the current position.
func (c Cursor) Pos() diagnostics.Position {
	return diagnostics.Position{Offset: c.off, Line: c.line, Column: c.col}
}

// SpanFrom returns a span from the marked cursor up to the current
// position.
func (c Cursor) SpanFrom(mark Cursor) diagnostics.Span {
	return diagnostics.NewSpan(mark.Pos(), c.Pos())
}
