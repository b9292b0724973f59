package parsing

// Character classes used by the grammar.

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDigitFirst(r rune) bool {
	return r >= '1' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIdentFirst(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentOther(r rune) bool {
	return isIdentFirst(r) || isDigit(r)
}

// SkipTrivia consumes whitespace, `//` line comments and nestable `/* */`
// block comments. It is the only place trivia is ever consumed: grammar
// rules invoke it explicitly between tokens so node spans never include
// insignificant characters. An unterminated block comment is a fatal
// failure.
func SkipTrivia(c Cursor) (Cursor, *Failure) {
	for {
		r, ok := c.Peek()
		if !ok {
			return c, nil
		}
		switch {
		case isWhitespace(r):
			c = c.Advance(1)
		case c.HasPrefix("//"):
			c = c.Advance(2)
			for {
				r, ok := c.Peek()
				if !ok || r == '\n' || r == '\r' {
					break
				}
				c = c.Advance(1)
			}
		case c.HasPrefix("/*"):
			var err *Failure
			c, err = skipBlockComment(c)
			if err != nil {
				return c, err
			}
		default:
			return c, nil
		}
	}
}

// skipBlockComment consumes a `/* */` comment, honoring nesting. The
// cursor must be at the opening `/*`.
func skipBlockComment(c Cursor) (Cursor, *Failure) {
	open := c
	c = c.Advance(2)
	depth := 1
	for depth > 0 {
		switch {
		case c.EOF():
			return open, fatalAt(open, "expected end of block comment (`*/`)")
		case c.HasPrefix("/*"):
			depth++
			c = c.Advance(2)
		case c.HasPrefix("*/"):
			depth--
			c = c.Advance(2)
		default:
			c = c.Advance(1)
		}
	}
	return c, nil
}
