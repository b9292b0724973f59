package parsing

import (
	"fmt"

	"github.com/satishbabariya/ron-go/ron/diagnostics"
)

// Failure is a parse failure with a source span, a message, and the
// recoverable/fatal flag that drives backtracking. A recoverable failure
// lets an enclosing Alt reset the cursor and try the next alternative; a
// fatal failure (produced inside a Cut region) propagates straight to the
// top-level caller.
type Failure struct {
	Span    diagnostics.Span
	Message string
	Fatal   bool
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%d:%d: %s", f.Span.Start.Line, f.Span.Start.Column, f.Message)
}

// Diagnostic converts the failure into the public error value.
func (f *Failure) Diagnostic() *diagnostics.ParseError {
	return diagnostics.NewParseError(f.Message, f.Span)
}

// expected builds a recoverable failure with a zero-width span at the
// cursor position.
func expected(c Cursor, what string) *Failure {
	p := c.Pos()
	return &Failure{
		Span:    diagnostics.NewSpan(p, p),
		Message: "expected " + what,
	}
}

// fatalAt builds a fatal failure with a zero-width span at the cursor
// position.
func fatalAt(c Cursor, message string) *Failure {
	p := c.Pos()
	return &Failure{
		Span:    diagnostics.NewSpan(p, p),
		Message: message,
		Fatal:   true,
	}
}

// furthest keeps the failure that got further into the input, so a failed
// ordered choice reports the alternative that looked closest to working.
// On a tie the earlier alternative wins, preserving choice order.
func furthest(a, b *Failure) *Failure {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Span.Start.Offset > a.Span.Start.Offset {
		return b
	}
	return a
}
