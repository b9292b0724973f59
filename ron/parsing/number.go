package parsing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/satishbabariya/ron-go/ron/parsing/ast"
)

var integerSuffixes = map[string]bool{
	"i8": true, "i16": true, "i32": true, "i64": true,
	"u8": true, "u16": true, "u32": true, "u64": true,
}

var floatSuffixes = map[string]bool{
	"f32": true, "f64": true,
}

// parseNumber parses integer and float literals: optional sign, decimal or
// `0x`/`0o`/`0b` radix digits, optional fraction and exponent, optional
// type suffix. A literal is a float when it has a `.`, an exponent, or a
// float suffix.
func parseNumber(c Cursor) (ast.Value, Cursor, *Failure) {
	start := c

	sign := ast.NoSign
	if r, ok := c.Peek(); ok {
		switch r {
		case '+':
			sign = ast.Positive
			c = c.Advance(1)
		case '-':
			sign = ast.Negative
			c = c.Advance(1)
		}
	}

	if radix, width := radixPrefix(c); radix != 0 {
		return parseRadixInteger(start, c.Advance(width), sign, radix)
	}

	intDigits, c, _ := TakeWhile(isDigit)(c)

	fracDigits := ""
	hasDot := false
	if r, ok := c.Peek(); ok && r == '.' {
		hasDot = true
		c = c.Advance(1)
		fracDigits, c, _ = TakeWhile(isDigit)(c)
	}

	if intDigits == "" && fracDigits == "" {
		return nil, start, expected(start, "a digit")
	}

	expDigits := ""
	expSign := ""
	hasExp := false
	if r, ok := c.Peek(); ok && (r == 'e' || r == 'E') {
		// Only a well-formed exponent makes this a float; `1e` alone is
		// already committed and fails hard.
		hasExp = true
		c = c.Advance(1)
		if r, ok := c.Peek(); ok && (r == '+' || r == '-') {
			expSign = string(r)
			c = c.Advance(1)
		}
		var err *Failure
		expDigits, c, err = TakeWhile1(isDigit, "an exponent digit")(c)
		if err != nil {
			hard := *err
			hard.Fatal = true
			return nil, start, &hard
		}
	}

	suffix, c, err := parseNumericSuffix(c)
	if err != nil {
		return nil, start, err
	}

	isFloat := hasDot || hasExp || floatSuffixes[suffix]
	span := c.SpanFrom(start)

	if !isFloat {
		if len(intDigits) > 1 && intDigits[0] == '0' {
			return nil, start, &Failure{Span: span, Message: "integer literals cannot have leading zeros", Fatal: true}
		}
		if suffix != "" && !integerSuffixes[suffix] {
			return nil, start, &Failure{Span: span, Message: fmt.Sprintf("invalid numeric suffix `%s`", suffix), Fatal: true}
		}
		magnitude, perr := strconv.ParseUint(intDigits, 10, 64)
		if perr != nil {
			return nil, start, &Failure{Span: span, Message: fmt.Sprintf("integer `%s` is too large", intDigits), Fatal: true}
		}
		return &ast.Integer{Span: span, Sign: sign, Magnitude: magnitude, Suffix: suffix}, c, nil
	}

	if suffix != "" && !floatSuffixes[suffix] {
		return nil, start, &Failure{Span: span, Message: fmt.Sprintf("invalid numeric suffix `%s` for a float", suffix), Fatal: true}
	}

	var sb strings.Builder
	if sign == ast.Negative {
		sb.WriteByte('-')
	}
	if intDigits == "" {
		sb.WriteByte('0')
	} else {
		sb.WriteString(intDigits)
	}
	if hasDot {
		sb.WriteByte('.')
		if fracDigits == "" {
			sb.WriteByte('0')
		} else {
			sb.WriteString(fracDigits)
		}
	}
	if hasExp {
		sb.WriteByte('e')
		sb.WriteString(expSign)
		sb.WriteString(expDigits)
	}
	value, perr := strconv.ParseFloat(sb.String(), 64)
	if perr != nil {
		return nil, start, &Failure{Span: span, Message: fmt.Sprintf("invalid float literal `%s`", span.Text(c.Source())), Fatal: true}
	}
	return &ast.Float{Span: span, Value: value, Suffix: suffix}, c, nil
}

// radixPrefix reports the radix introduced at the cursor (`0x`, `0o`,
// `0b`) and the prefix width in code points, or (0, 0).
func radixPrefix(c Cursor) (radix, width int) {
	switch {
	case c.HasPrefix("0x"):
		return 16, 2
	case c.HasPrefix("0o"):
		return 8, 2
	case c.HasPrefix("0b"):
		return 2, 2
	default:
		return 0, 0
	}
}

// parseRadixInteger parses the digits after a radix prefix. The digit run
// is scanned as hex so an out-of-radix digit fails with a clear message
// instead of splitting the literal.
func parseRadixInteger(start, c Cursor, sign ast.Sign, radix int) (ast.Value, Cursor, *Failure) {
	digits, c, err := TakeWhile1(isHexDigit, "a digit")(c)
	if err != nil {
		hard := *err
		hard.Fatal = true
		return nil, start, &hard
	}

	suffix, c, serr := parseNumericSuffix(c)
	if serr != nil {
		return nil, start, serr
	}
	span := c.SpanFrom(start)

	magnitude, perr := strconv.ParseUint(digits, radix, 64)
	if perr != nil {
		return nil, start, &Failure{Span: span, Message: fmt.Sprintf("invalid base-%d literal `%s`", radix, span.Text(c.Source())), Fatal: true}
	}
	if suffix != "" && !integerSuffixes[suffix] {
		return nil, start, &Failure{Span: span, Message: fmt.Sprintf("invalid numeric suffix `%s`", suffix), Fatal: true}
	}
	return &ast.Integer{Span: span, Sign: sign, Magnitude: magnitude, Suffix: suffix}, c, nil
}

// parseNumericSuffix consumes a trailing identifier as a type suffix.
// Validation against the known suffix sets happens at the call sites,
// where integer and float literals diverge.
func parseNumericSuffix(c Cursor) (string, Cursor, *Failure) {
	r, ok := c.Peek()
	if !ok || !isIdentFirst(r) {
		return "", c, nil
	}
	suffix, rest, _ := TakeWhile(isIdentOther)(c)
	if !integerSuffixes[suffix] && !floatSuffixes[suffix] {
		span := rest.SpanFrom(c)
		return "", c, &Failure{Span: span, Message: fmt.Sprintf("invalid numeric suffix `%s`", suffix), Fatal: true}
	}
	return suffix, rest, nil
}
