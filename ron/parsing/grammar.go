package parsing

import (
	"fmt"

	"github.com/satishbabariya/ron-go/internal/debug"
	"github.com/satishbabariya/ron-go/ron/diagnostics"
	"github.com/satishbabariya/ron-go/ron/parsing/ast"
)

// DefaultMaxDepth bounds the nesting depth of parsed literals. Exceeding
// it is a normal parse error, not a stack exhaustion.
const DefaultMaxDepth = 128

// Options configures a parse.
type Options struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Parse parses a complete RON value from source. The whole input must be
// consumed; trailing non-trivia is an error.
func Parse(source string) (ast.Value, *diagnostics.ParseError) {
	return ParseWithOptions(source, Options{})
}

// ParseWithOptions is Parse with explicit limits.
func ParseWithOptions(source string, opts Options) (ast.Value, *diagnostics.ParseError) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{maxDepth: maxDepth}

	c, ferr := SkipTrivia(NewCursor(source))
	if ferr != nil {
		return nil, ferr.Diagnostic()
	}
	value, rest, ferr := p.value(c, 0)
	if ferr != nil {
		debug.Debug("parse failed", "line", ferr.Span.Start.Line, "column", ferr.Span.Start.Column, "message", ferr.Message)
		return nil, ferr.Diagnostic()
	}
	rest, ferr = SkipTrivia(rest)
	if ferr != nil {
		return nil, ferr.Diagnostic()
	}
	if !rest.EOF() {
		pos := rest.Pos()
		return nil, diagnostics.NewParseError("expected end of input", diagnostics.NewSpan(pos, pos))
	}
	debug.Debug("parsed value", "bytes", len(source))
	return value, nil
}

type parser struct {
	maxDepth int
}

func (p *parser) valueParser(depth int) Parser[ast.Value] {
	return func(c Cursor) (ast.Value, Cursor, *Failure) {
		return p.value(c, depth)
	}
}

// value dispatches on the first significant character. The character class
// decides the only rule that can match, so the grammar commits (cut) as
// soon as an opening delimiter is consumed.
func (p *parser) value(c Cursor, depth int) (ast.Value, Cursor, *Failure) {
	if depth >= p.maxDepth {
		return nil, c, fatalAt(c, fmt.Sprintf("exceeded maximum nesting depth of %d", p.maxDepth))
	}

	r, ok := c.Peek()
	if !ok {
		return nil, c, expected(c, "a value")
	}
	switch {
	case r == '(':
		return p.parenBody(c, nil, c, depth)
	case r == '{':
		return p.mapLiteral(c, depth)
	case r == '[':
		return p.sequence(c, depth)
	case r == '"':
		s, rest, err := parseEscapedString(c)
		if err != nil {
			return nil, c, err
		}
		return s, rest, nil
	case r == '\'':
		ch, rest, err := parseChar(c)
		if err != nil {
			return nil, c, err
		}
		return ch, rest, nil
	case r == 'r':
		return p.rawOrIdent(c, depth)
	case r == '+' || r == '-' || r == '.' || isDigit(r):
		return parseNumber(c)
	case isIdentFirst(r):
		return p.identLike(c, depth)
	default:
		return nil, c, expected(c, "a value")
	}
}

// rawOrIdent disambiguates the `r` prefix: a raw string (`r"`, `r#"`), a
// raw identifier (`r#name`), or a plain identifier starting with r.
func (p *parser) rawOrIdent(c Cursor, depth int) (ast.Value, Cursor, *Failure) {
	s, rest, err := parseRawString(c)
	if err == nil {
		return s, rest, nil
	}
	if err.Fatal {
		return nil, c, err
	}
	if c.HasPrefix("r#") {
		id, rest, err := parseAnyIdent(c)
		if err != nil {
			return nil, c, err
		}
		return p.taggedOrIdent(c, id, rest, depth)
	}
	return p.identLike(c, depth)
}

// identLike handles every value that starts with an identifier: booleans,
// None/Some, enum variants, struct literals, and bare identifiers.
func (p *parser) identLike(c Cursor, depth int) (ast.Value, Cursor, *Failure) {
	id, rest, err := parseIdent(c)
	if err != nil {
		return nil, c, err
	}
	switch id.Name {
	case "true":
		return &ast.Bool{Span: id.Span, Value: true}, rest, nil
	case "false":
		return &ast.Bool{Span: id.Span, Value: false}, rest, nil
	}
	return p.taggedOrIdent(c, id, rest, depth)
}

// taggedOrIdent continues after a parsed identifier: a parenthesized body
// turns it into a named tuple or struct (with `Some(x)` collapsing into an
// option), otherwise the identifier stands alone (`None` becomes the empty
// option).
func (p *parser) taggedOrIdent(start Cursor, id *ast.Ident, rest Cursor, depth int) (ast.Value, Cursor, *Failure) {
	probe, terr := SkipTrivia(rest)
	if terr == nil {
		if r, ok := probe.Peek(); ok && r == '(' {
			node, after, err := p.parenBody(probe, id, start, depth)
			if err != nil {
				return nil, start, err
			}
			if id.Name == "Some" && !id.Raw {
				if t, ok := node.(*ast.Tuple); ok && len(t.Elements) == 1 {
					return &ast.Option{Span: t.Span, Inner: t.Elements[0]}, after, nil
				}
			}
			return node, after, nil
		}
	}
	if id.Name == "None" && !id.Raw {
		return &ast.Option{Span: id.Span}, rest, nil
	}
	return id, rest, nil
}

// parenBody parses everything between `(` and `)`: unit, tuples, and
// named-fields structs, with or without a leading name. The cursor must be
// at the `(`; start marks where the whole node began (the name, if any).
// Once the paren is consumed the rule is committed: failures are fatal.
func (p *parser) parenBody(c Cursor, name *ast.Ident, start Cursor, depth int) (ast.Value, Cursor, *Failure) {
	body, err := SkipTrivia(c.Advance(1))
	if err != nil {
		return nil, c, err
	}

	if r, ok := body.Peek(); ok && r == ')' {
		end := body.Advance(1)
		if name == nil {
			return &ast.Unit{Span: end.SpanFrom(start)}, end, nil
		}
		return &ast.Tuple{Span: end.SpanFrom(start), Name: name}, end, nil
	}

	if p.looksLikeField(body) {
		fields, rest, err := Cut(CommaList1(p.fieldParser(depth+1), "a field"))(body)
		if err != nil {
			return nil, c, err
		}
		end, err := p.closeDelimiter(rest, ')')
		if err != nil {
			return nil, c, err
		}
		return &ast.NamedFields{Span: end.SpanFrom(start), Name: name, Fields: fields}, end, nil
	}

	elements, rest, err := Cut(CommaList0(p.valueParser(depth + 1)))(body)
	if err != nil {
		return nil, c, err
	}
	end, err := p.closeDelimiter(rest, ')')
	if err != nil {
		return nil, c, err
	}
	return &ast.Tuple{Span: end.SpanFrom(start), Name: name, Elements: elements}, end, nil
}

// looksLikeField probes for `ident :` without consuming input, which is
// what separates a named-fields body from a tuple body.
func (p *parser) looksLikeField(c Cursor) bool {
	_, rest, err := parseAnyIdent(c)
	if err != nil {
		return false
	}
	rest, terr := SkipTrivia(rest)
	if terr != nil {
		return false
	}
	r, ok := rest.Peek()
	return ok && r == ':'
}

// fieldParser parses one `name: value` pair. The identifier alone is not a
// commitment (the body may still be a tuple of identifiers), but after the
// colon the value is mandatory.
func (p *parser) fieldParser(depth int) Parser[ast.Field] {
	return func(c Cursor) (ast.Field, Cursor, *Failure) {
		var zero ast.Field
		id, rest, err := parseAnyIdent(c)
		if err != nil {
			return zero, c, err
		}
		rest, terr := SkipTrivia(rest)
		if terr != nil {
			return zero, c, terr
		}
		if r, ok := rest.Peek(); !ok || r != ':' {
			return zero, c, expected(rest, "`:`")
		}
		rest, terr = SkipTrivia(rest.Advance(1))
		if terr != nil {
			return zero, c, terr
		}
		value, rest, err := Cut(p.valueParser(depth))(rest)
		if err != nil {
			return zero, c, err
		}
		return ast.Field{Name: *id, Value: value}, rest, nil
	}
}

// mapLiteral parses `{ key: value, ... }`. Keys are arbitrary values.
func (p *parser) mapLiteral(c Cursor, depth int) (ast.Value, Cursor, *Failure) {
	start := c
	entries, rest, err := Cut(CommaList0(p.entryParser(depth + 1)))(c.Advance(1))
	if err != nil {
		return nil, c, err
	}
	end, err := p.closeDelimiter(rest, '}')
	if err != nil {
		return nil, c, err
	}
	return &ast.Map{Span: end.SpanFrom(start), Entries: entries}, end, nil
}

// entryParser parses one `key: value` map entry. Once a key has parsed
// the colon and value are committed.
func (p *parser) entryParser(depth int) Parser[ast.Entry] {
	return func(c Cursor) (ast.Entry, Cursor, *Failure) {
		var zero ast.Entry
		key, rest, err := p.value(c, depth)
		if err != nil {
			return zero, c, err
		}
		rest, terr := SkipTrivia(rest)
		if terr != nil {
			return zero, c, terr
		}
		if r, ok := rest.Peek(); !ok || r != ':' {
			return zero, c, fatalAt(rest, "expected `:`")
		}
		rest, terr = SkipTrivia(rest.Advance(1))
		if terr != nil {
			return zero, c, terr
		}
		value, rest, err := Cut(p.valueParser(depth))(rest)
		if err != nil {
			return zero, c, err
		}
		return ast.Entry{Key: key, Value: value}, rest, nil
	}
}

// sequence parses `[ value, ... ]`.
func (p *parser) sequence(c Cursor, depth int) (ast.Value, Cursor, *Failure) {
	start := c
	elements, rest, err := Cut(CommaList0(p.valueParser(depth + 1)))(c.Advance(1))
	if err != nil {
		return nil, c, err
	}
	end, err := p.closeDelimiter(rest, ']')
	if err != nil {
		return nil, c, err
	}
	return &ast.Sequence{Span: end.SpanFrom(start), Elements: elements}, end, nil
}

// closeDelimiter consumes the closing delimiter of a committed container;
// anything else is fatal.
func (p *parser) closeDelimiter(c Cursor, closing rune) (Cursor, *Failure) {
	c, err := SkipTrivia(c)
	if err != nil {
		return c, err
	}
	if r, ok := c.Peek(); !ok || r != closing {
		return c, fatalAt(c, fmt.Sprintf("expected `,` or `%c`", closing))
	}
	return c.Advance(1), nil
}
