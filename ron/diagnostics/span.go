// Package diagnostics provides error values and source-anchored reporting
// for RON parsing and deserialization.
package diagnostics

// Position represents a location in a source text.
type Position struct {
	// Offset is the byte offset from the start of the input.
	Offset int `json:"offset"`
	// Line is 1-based.
	Line int `json:"line"`
	// Column is 1-based and counts code points, not bytes.
	Column int `json:"column"`
}

// StartPosition returns the position of the first character of an input.
func StartPosition() Position {
	return Position{Offset: 0, Line: 1, Column: 1}
}

// Before reports whether p is located before other in the source.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// Span represents a region of a source text. Start is inclusive, End is
// exclusive. A span may be empty (Start == End) to mark an insertion point.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// NewSpan creates a new span with the given endpoints.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// EmptySpan creates a zero-width span at the start of the input.
func EmptySpan() Span {
	p := StartPosition()
	return Span{Start: p, End: p}
}

// Contains checks whether other lies entirely within the span
// (boundaries included).
func (s Span) Contains(other Span) bool {
	return s.Start.Offset <= other.Start.Offset && other.End.Offset <= s.End.Offset
}

// Multiline reports whether the span crosses a line boundary.
func (s Span) Multiline() bool {
	return s.Start.Line != s.End.Line
}

// Empty reports whether the span is zero-width.
func (s Span) Empty() bool {
	return s.Start.Offset == s.End.Offset
}

// Text slices the source text covered by the span.
func (s Span) Text(source string) string {
	start, end := s.Start.Offset, s.End.Offset
	if start < 0 || end > len(source) || start > end {
		return ""
	}
	return source[start:end]
}
