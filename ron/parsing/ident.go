package parsing

import (
	"github.com/satishbabariya/ron-go/ron/parsing/ast"
)

// parseIdent parses a bare identifier: an ASCII letter or underscore
// followed by letters, digits, and underscores.
func parseIdent(c Cursor) (*ast.Ident, Cursor, *Failure) {
	r, ok := c.Peek()
	if !ok || !isIdentFirst(r) {
		return nil, c, expected(c, "an identifier")
	}
	name, rest, _ := TakeWhile(isIdentOther)(c)
	return &ast.Ident{Span: rest.SpanFrom(c), Name: name}, rest, nil
}

// parseAnyIdent parses a bare identifier or the raw `r#name` form. The
// span of a raw identifier includes the `r#` prefix; its name does not.
func parseAnyIdent(c Cursor) (*ast.Ident, Cursor, *Failure) {
	if c.HasPrefix("r#") {
		start := c
		inner, rest, err := parseIdent(c.Advance(2))
		if err != nil {
			hard := *err
			hard.Fatal = true
			return nil, c, &hard
		}
		return &ast.Ident{Span: rest.SpanFrom(start), Name: inner.Name, Raw: true}, rest, nil
	}
	return parseIdent(c)
}
