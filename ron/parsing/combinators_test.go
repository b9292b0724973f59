package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralMatches(t *testing.T) {
	v, rest, err := Literal("foo")(NewCursor("foobar"))
	require.Nil(t, err)
	assert.Equal(t, "foo", v)
	assert.Equal(t, "bar", rest.Rest())
}

func TestLiteralMismatchIsRecoverable(t *testing.T) {
	_, rest, err := Literal("foo")(NewCursor("fob"))
	require.NotNil(t, err)
	assert.False(t, err.Fatal)
	assert.Equal(t, 0, rest.Pos().Offset)
}

func TestTakeWhile1RequiresOneMatch(t *testing.T) {
	digits := TakeWhile1(isDigit, "a digit")

	v, rest, err := digits(NewCursor("123abc"))
	require.Nil(t, err)
	assert.Equal(t, "123", v)
	assert.Equal(t, "abc", rest.Rest())

	_, _, err = digits(NewCursor("abc"))
	require.NotNil(t, err)
	assert.False(t, err.Fatal)
	assert.Equal(t, "expected a digit", err.Message)
}

func TestOptResetsOnRecoverableFailure(t *testing.T) {
	p := Opt(Literal("x"))

	v, rest, err := p(NewCursor("y"))
	require.Nil(t, err)
	assert.Nil(t, v)
	assert.Equal(t, 0, rest.Pos().Offset)

	v, _, err = p(NewCursor("x"))
	require.Nil(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "x", *v)
}

func TestAltTriesAlternativesInOrder(t *testing.T) {
	p := Alt(Literal("aa"), Literal("ab"))

	v, _, err := p(NewCursor("ab"))
	require.Nil(t, err)
	assert.Equal(t, "ab", v)
}

func TestAltReportsFurthestFailure(t *testing.T) {
	// the second alternative gets past `a` before failing, so its failure
	// position wins over the first alternative's
	deep := Preceded(Literal("a"), Literal("b"))
	p := Alt(Literal("xy"), deep)

	_, _, err := p(NewCursor("ac"))
	require.NotNil(t, err)
	assert.Equal(t, 1, err.Span.Start.Offset)
	assert.Equal(t, "expected `b`", err.Message)
}

func TestAltTieKeepsFirstAlternative(t *testing.T) {
	p := Alt(Literal("x"), Literal("y"))
	_, _, err := p(NewCursor("z"))
	require.NotNil(t, err)
	assert.Equal(t, "expected `x`", err.Message)
}

func TestCutHardensFailures(t *testing.T) {
	p := Cut(Literal("x"))
	_, _, err := p(NewCursor("y"))
	require.NotNil(t, err)
	assert.True(t, err.Fatal)
}

func TestCutStopsAltBacktracking(t *testing.T) {
	// both alternatives share the `(` prefix; once the first commits, the
	// second is never tried even though it would match
	first := Preceded(Literal("("), Cut(Literal("a")))
	second := Preceded(Literal("("), Literal("b"))
	p := Alt(first, second)

	_, _, err := p(NewCursor("(b"))
	require.NotNil(t, err)
	assert.True(t, err.Fatal)
	assert.Equal(t, "expected `a`", err.Message)
}

func TestLookaheadDemotesFatalFailures(t *testing.T) {
	p := Lookahead(Cut(Literal("x")))
	_, _, err := p(NewCursor("y"))
	require.NotNil(t, err)
	assert.False(t, err.Fatal)
}

func TestMany0CollectsUntilRecoverableFailure(t *testing.T) {
	p := Many0(Literal("ab"))

	v, rest, err := p(NewCursor("ababX"))
	require.Nil(t, err)
	assert.Equal(t, []string{"ab", "ab"}, v)
	assert.Equal(t, "X", rest.Rest())

	v, _, err = p(NewCursor("X"))
	require.Nil(t, err)
	assert.Empty(t, v)
}

func TestPairCombinesResults(t *testing.T) {
	p := Pair(TakeWhile1(isIdentFirst, "a letter"), TakeWhile1(isDigit, "a digit"))

	v, rest, err := p(NewCursor("ab12!"))
	require.Nil(t, err)
	assert.Equal(t, "ab", v.First)
	assert.Equal(t, "12", v.Second)
	assert.Equal(t, "!", rest.Rest())

	_, rest, err = p(NewCursor("ab!"))
	require.NotNil(t, err)
	assert.Equal(t, 0, rest.Pos().Offset)
}

func TestSpannedCapturesConsumedRange(t *testing.T) {
	source := "  123"
	c, ferr := SkipTrivia(NewCursor(source))
	require.Nil(t, ferr)

	v, _, err := Spanned(TakeWhile1(isDigit, "a digit"))(c)
	require.Nil(t, err)
	assert.Equal(t, "123", v.Value)
	assert.Equal(t, "123", v.Span.Text(source))
	assert.Equal(t, 2, v.Span.Start.Offset)
}

func TestDelimitedReturnsInnerResult(t *testing.T) {
	p := Delimited(OneChar('<'), TakeWhile1(isDigit, "a digit"), OneChar('>'))
	v, rest, err := p(NewCursor("<42>!"))
	require.Nil(t, err)
	assert.Equal(t, "42", v)
	assert.Equal(t, "!", rest.Rest())
}

func TestCommaListToleratesTrailingComma(t *testing.T) {
	p := CommaList0(TakeWhile1(isDigit, "a digit"))

	for _, input := range []string{"1,2,3", "1, 2, 3,", "1 , 2 , 3 , "} {
		v, _, err := p(NewCursor(input))
		require.Nil(t, err, "input %q", input)
		assert.Equal(t, []string{"1", "2", "3"}, v, "input %q", input)
	}
}

func TestCommaListEmpty(t *testing.T) {
	p := CommaList0(TakeWhile1(isDigit, "a digit"))
	v, rest, err := p(NewCursor(")"))
	require.Nil(t, err)
	assert.Empty(t, v)
	assert.Equal(t, 0, rest.Pos().Offset)
}

func TestCommaList1RequiresAnElement(t *testing.T) {
	p := CommaList1(TakeWhile1(isDigit, "a digit"), "a number")
	_, _, err := p(NewCursor(")"))
	require.NotNil(t, err)
	assert.Equal(t, "expected a number", err.Message)
}

func TestSkipTriviaHandlesCommentsAndWhitespace(t *testing.T) {
	c, err := SkipTrivia(NewCursor("  // line\n  /* block /* nested */ */  x"))
	require.Nil(t, err)
	r, _ := c.Peek()
	assert.Equal(t, 'x', r)
}

func TestSkipTriviaUnterminatedBlockCommentIsFatal(t *testing.T) {
	_, err := SkipTrivia(NewCursor("/* never closed"))
	require.NotNil(t, err)
	assert.True(t, err.Fatal)
	assert.Equal(t, "expected end of block comment (`*/`)", err.Message)
	assert.Equal(t, 0, err.Span.Start.Offset)
}
