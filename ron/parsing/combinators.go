package parsing

import (
	"fmt"
	"unicode/utf8"

	"github.com/satishbabariya/ron-go/ron/diagnostics"
)

// Parser is the shape every combinator produces: consume a cursor, return
// the parsed value with the advanced cursor, or a Failure. The input cursor
// is never mutated, so callers keep it for backtracking.
type Parser[T any] func(Cursor) (T, Cursor, *Failure)

// Literal matches the exact text, failing recoverably on mismatch.
func Literal(text string) Parser[string] {
	n := utf8.RuneCountInString(text)
	return func(c Cursor) (string, Cursor, *Failure) {
		if !c.HasPrefix(text) {
			return "", c, expected(c, fmt.Sprintf("`%s`", text))
		}
		return text, c.Advance(n), nil
	}
}

// OneChar matches a single exact code point.
func OneChar(want rune) Parser[rune] {
	return func(c Cursor) (rune, Cursor, *Failure) {
		r, ok := c.Peek()
		if !ok || r != want {
			return 0, c, expected(c, fmt.Sprintf("`%c`", want))
		}
		return r, c.Advance(1), nil
	}
}

// Take1If matches one code point satisfying the predicate. The what text
// names the character class in the failure message.
func Take1If(pred func(rune) bool, what string) Parser[rune] {
	return func(c Cursor) (rune, Cursor, *Failure) {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			return 0, c, expected(c, what)
		}
		return r, c.Advance(1), nil
	}
}

// TakeWhile consumes zero or more code points satisfying the predicate.
// It never fails.
func TakeWhile(pred func(rune) bool) Parser[string] {
	return func(c Cursor) (string, Cursor, *Failure) {
		start := c
		for {
			r, ok := c.Peek()
			if !ok || !pred(r) {
				return start.src[start.off:c.off], c, nil
			}
			c = c.Advance(1)
		}
	}
}

// TakeWhile1 is TakeWhile requiring at least one matching code point.
func TakeWhile1(pred func(rune) bool, what string) Parser[string] {
	inner := TakeWhile(pred)
	return func(c Cursor) (string, Cursor, *Failure) {
		s, rest, _ := inner(c)
		if s == "" {
			return "", c, expected(c, what)
		}
		return s, rest, nil
	}
}

// Map transforms a successful result. Failures pass through untouched.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c Cursor) (U, Cursor, *Failure) {
		v, rest, err := p(c)
		if err != nil {
			var zero U
			return zero, c, err
		}
		return f(v), rest, nil
	}
}

// Opt wraps p so that a recoverable failure yields a nil result with the
// cursor reset. Fatal failures propagate.
func Opt[T any](p Parser[T]) Parser[*T] {
	return func(c Cursor) (*T, Cursor, *Failure) {
		v, rest, err := p(c)
		if err != nil {
			if err.Fatal {
				return nil, c, err
			}
			return nil, c, nil
		}
		return &v, rest, nil
	}
}

// Alt tries each alternative in order. A recoverable failure resets the
// cursor and moves on to the next; a fatal failure propagates immediately
// without trying the rest. When every alternative fails the reported
// failure is the one that reached furthest into the input.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, *Failure) {
		var farthest *Failure
		for _, p := range ps {
			v, rest, err := p(c)
			if err == nil {
				return v, rest, nil
			}
			if err.Fatal {
				var zero T
				return zero, c, err
			}
			farthest = furthest(farthest, err)
		}
		var zero T
		return zero, c, farthest
	}
}

// Cut hardens p: any failure inside it comes back fatal, so enclosing
// choices stop backtracking. Used immediately after consuming an
// unambiguous opening token.
func Cut[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, *Failure) {
		v, rest, err := p(c)
		if err != nil && !err.Fatal {
			hard := *err
			hard.Fatal = true
			var zero T
			return zero, c, &hard
		}
		return v, rest, err
	}
}

// Lookahead demotes a fatal failure from p back to recoverable, letting a
// caller probe committed grammar without committing itself.
func Lookahead[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, *Failure) {
		v, rest, err := p(c)
		if err != nil && err.Fatal {
			soft := *err
			soft.Fatal = false
			var zero T
			return zero, c, &soft
		}
		return v, rest, err
	}
}

// Many0 repeats p until it fails recoverably, returning the collected
// results (possibly empty). A fatal failure propagates. p must consume
// input on success.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) ([]T, Cursor, *Failure) {
		var acc []T
		for {
			v, rest, err := p(c)
			if err != nil {
				if err.Fatal {
					return nil, c, err
				}
				return acc, c, nil
			}
			if rest.off == c.off {
				return nil, c, fatalAt(c, "repetition of a parser that consumes no input")
			}
			acc = append(acc, v)
			c = rest
		}
	}
}

// Two is the result of Pair.
type Two[A, B any] struct {
	First  A
	Second B
}

// Pair runs a then b, returning both results.
func Pair[A, B any](a Parser[A], b Parser[B]) Parser[Two[A, B]] {
	return func(c Cursor) (Two[A, B], Cursor, *Failure) {
		var zero Two[A, B]
		first, rest, err := a(c)
		if err != nil {
			return zero, c, err
		}
		second, rest, err := b(rest)
		if err != nil {
			return zero, c, err
		}
		return Two[A, B]{First: first, Second: second}, rest, nil
	}
}

// WithSpan is the result of Spanned: the parsed value together with the
// span of the text it consumed.
type WithSpan[T any] struct {
	Value T
	Span  diagnostics.Span
}

// Spanned wraps p, attaching the span from p's entry point to its exit
// position.
func Spanned[T any](p Parser[T]) Parser[WithSpan[T]] {
	return func(c Cursor) (WithSpan[T], Cursor, *Failure) {
		v, rest, err := p(c)
		if err != nil {
			var zero WithSpan[T]
			return zero, c, err
		}
		return WithSpan[T]{Value: v, Span: rest.SpanFrom(c)}, rest, nil
	}
}

// Preceded runs a then b, returning b's result.
func Preceded[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return func(c Cursor) (B, Cursor, *Failure) {
		_, rest, err := a(c)
		if err != nil {
			var zero B
			return zero, c, err
		}
		return b(rest)
	}
}

// Terminated runs a then b, returning a's result.
func Terminated[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return func(c Cursor) (A, Cursor, *Failure) {
		v, rest, err := a(c)
		if err != nil {
			var zero A
			return zero, c, err
		}
		_, rest, err = b(rest)
		if err != nil {
			var zero A
			return zero, c, err
		}
		return v, rest, nil
	}
}

// Delimited runs open, inner, close, returning inner's result.
func Delimited[A, B, C any](open Parser[A], inner Parser[B], close Parser[C]) Parser[B] {
	return Terminated(Preceded(open, inner), close)
}

// Ws skips whitespace and comments on both sides of p. Trivia skipping is
// always explicit so node spans stay byte-exact.
func Ws[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, *Failure) {
		c, err := SkipTrivia(c)
		if err != nil {
			var zero T
			return zero, c, err
		}
		v, rest, err := p(c)
		if err != nil {
			var zero T
			return zero, c, err
		}
		rest, err = SkipTrivia(rest)
		if err != nil {
			var zero T
			return zero, rest, err
		}
		return v, rest, nil
	}
}

// CommaList0 parses zero or more comma-separated p, with trivia around
// elements and separators, tolerating a trailing comma.
func CommaList0[T any](p Parser[T]) Parser[[]T] {
	elem := Ws(p)
	sep := Ws(OneChar(','))
	return func(c Cursor) ([]T, Cursor, *Failure) {
		var items []T
		for {
			v, rest, err := elem(c)
			if err != nil {
				if err.Fatal {
					return nil, c, err
				}
				return items, c, nil
			}
			items = append(items, v)
			c = rest
			_, rest, err = sep(c)
			if err != nil {
				if err.Fatal {
					return nil, c, err
				}
				return items, c, nil
			}
			c = rest
		}
	}
}

// CommaList1 is CommaList0 requiring at least one element. The what text
// names the element in the failure message.
func CommaList1[T any](p Parser[T], what string) Parser[[]T] {
	list := CommaList0(p)
	return func(c Cursor) ([]T, Cursor, *Failure) {
		items, rest, err := list(c)
		if err != nil {
			return nil, c, err
		}
		if len(items) == 0 {
			return nil, c, expected(c, what)
		}
		return items, rest, nil
	}
}
