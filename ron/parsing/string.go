package parsing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/satishbabariya/ron-go/ron/parsing/ast"
)

// parseEscapedString parses a `"..."` literal, decoding escapes. The
// cursor must be at the opening quote.
func parseEscapedString(c Cursor) (*ast.String, Cursor, *Failure) {
	start := c
	c = c.Advance(1)

	var sb strings.Builder
	for {
		r, ok := c.Peek()
		switch {
		case !ok:
			return nil, start, fatalAt(c, "expected closing `\"`")
		case r == '"':
			c = c.Advance(1)
			return &ast.String{Span: c.SpanFrom(start), Value: sb.String()}, c, nil
		case r == '\\':
			decoded, rest, err := decodeEscape(c)
			if err != nil {
				return nil, start, err
			}
			sb.WriteRune(decoded)
			c = rest
		default:
			sb.WriteRune(r)
			c = c.Advance(1)
		}
	}
}

// decodeEscape decodes one escape sequence. The cursor must be at the
// backslash. Supported: \\ \" \' \n \r \t \0 and \u{1-6 hex digits}.
func decodeEscape(c Cursor) (rune, Cursor, *Failure) {
	backslash := c
	c = c.Advance(1)
	r, ok := c.Peek()
	if !ok {
		return 0, backslash, fatalAt(c, "expected an escape sequence")
	}
	c = c.Advance(1)
	switch r {
	case '\\', '"', '\'':
		return r, c, nil
	case 'n':
		return '\n', c, nil
	case 'r':
		return '\r', c, nil
	case 't':
		return '\t', c, nil
	case '0':
		return 0, c, nil
	case 'u':
		return decodeUnicodeEscape(backslash, c)
	default:
		f := &Failure{Span: c.SpanFrom(backslash), Message: fmt.Sprintf("invalid escape sequence `\\%c`", r), Fatal: true}
		return 0, backslash, f
	}
}

// decodeUnicodeEscape decodes the `{XXXX}` part of a \u escape.
func decodeUnicodeEscape(backslash, c Cursor) (rune, Cursor, *Failure) {
	if r, ok := c.Peek(); !ok || r != '{' {
		return 0, backslash, fatalAt(c, "expected `{` after `\\u`")
	}
	c = c.Advance(1)

	digits, c, err := TakeWhile1(isHexDigit, "a hexadecimal digit")(c)
	if err != nil {
		hard := *err
		hard.Fatal = true
		return 0, backslash, &hard
	}
	if len(digits) > 6 {
		return 0, backslash, fatalAt(c, "a unicode escape takes at most 6 hex digits")
	}
	if r, ok := c.Peek(); !ok || r != '}' {
		return 0, backslash, fatalAt(c, "expected `}` to close a unicode escape")
	}
	c = c.Advance(1)

	var value uint32
	for _, d := range digits {
		value = value*16 + uint32(hexValue(d))
	}
	if !utf8.ValidRune(rune(value)) {
		f := &Failure{Span: c.SpanFrom(backslash), Message: fmt.Sprintf("invalid unicode escape (got 0x%X)", value), Fatal: true}
		return 0, backslash, f
	}
	return rune(value), c, nil
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

// parseRawString parses a `r"..."`, `r#"..."#`, ... literal: the number of
// `#` marks is counted at the opening delimiter and the string runs until
// a quote followed by the same number of marks. No escapes are decoded.
// The cursor must be at the `r`. Fails recoverably when the input is not a
// raw string opener, so the caller can fall back to an identifier.
func parseRawString(c Cursor) (*ast.String, Cursor, *Failure) {
	start := c
	c = c.Advance(1)
	hashes, c, _ := TakeWhile(func(r rune) bool { return r == '#' })(c)
	if r, ok := c.Peek(); !ok || r != '"' {
		return nil, start, expected(c, "`\"`")
	}
	c = c.Advance(1)

	terminator := `"` + hashes
	idx := strings.Index(c.Rest(), terminator)
	if idx < 0 {
		return nil, start, fatalAt(c, "expected closing raw string sequence")
	}
	body := c.Rest()[:idx]
	c = c.Advance(utf8.RuneCountInString(body) + len(terminator))
	return &ast.String{Span: c.SpanFrom(start), Value: body, Raw: true}, c, nil
}

// parseChar parses a single-code-point literal `'x'`, honoring the same
// escape set as quoted strings. The cursor must be at the opening quote.
func parseChar(c Cursor) (*ast.Char, Cursor, *Failure) {
	start := c
	c = c.Advance(1)

	r, ok := c.Peek()
	if !ok {
		return nil, start, fatalAt(c, "expected a character")
	}
	if r == '\'' {
		return nil, start, fatalAt(start, "empty character literal")
	}
	if r == '\\' {
		var err *Failure
		r, c, err = decodeEscape(c)
		if err != nil {
			return nil, start, err
		}
	} else {
		c = c.Advance(1)
	}

	if closing, ok := c.Peek(); !ok || closing != '\'' {
		return nil, start, fatalAt(c, "expected closing `'`")
	}
	c = c.Advance(1)
	return &ast.Char{Span: c.SpanFrom(start), Value: r}, c, nil
}
