package decode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/ron-go/ron/parsing"
	"github.com/satishbabariya/ron-go/ron/parsing/ast"
)

func mustParse(t *testing.T, source string) ast.Value {
	t.Helper()
	v, err := parsing.Parse(source)
	require.Nil(t, err, "parse of %q failed: %v", source, err)
	return v
}

func TestDecodePrimitives(t *testing.T) {
	d := NewDecoder()

	b, err := d.Bool(mustParse(t, "true"))
	require.Nil(t, err)
	assert.True(t, b)

	s, err := d.String(mustParse(t, `"hello"`))
	require.Nil(t, err)
	assert.Equal(t, "hello", s)

	s, err = d.String(mustParse(t, `r"raw \n"`))
	require.Nil(t, err)
	assert.Equal(t, `raw \n`, s)

	c, err := d.Char(mustParse(t, `'\t'`))
	require.Nil(t, err)
	assert.Equal(t, '\t', c)

	require.Nil(t, d.Unit(mustParse(t, "()")))

	f, err := d.Float(mustParse(t, "2.5e2"), 64)
	require.Nil(t, err)
	assert.Equal(t, 250.0, f)
}

// A schema expecting a string meets a boolean: the error is anchored at
// the boolean's span.
func TestTypeMismatchAnchoredAtValue(t *testing.T) {
	source := `(x: 1, y: true)`
	nf := mustParse(t, source)
	d := NewDecoder()

	values, err := d.Struct(nf, "", []string{"x", "y"})
	require.Nil(t, err)

	_, err = d.String(values[1])
	require.NotNil(t, err)
	assert.Equal(t, "invalid type: boolean `true`, expected a string", err.Message())
	assert.Equal(t, "true", err.Span().Text(source))
}

// Same mismatch against a nested multi-line literal: the error covers the
// whole nested literal.
func TestTypeMismatchAnchoredAtNestedLiteral(t *testing.T) {
	source := "(x: 1, y: (\n    a: 1,\n    b: 2,\n))"
	nf := mustParse(t, source)
	d := NewDecoder()

	values, err := d.Struct(nf, "", []string{"x", "y"})
	require.Nil(t, err)

	_, err = d.String(values[1])
	require.NotNil(t, err)
	assert.Equal(t, "invalid type: struct, expected a string", err.Message())
	assert.Equal(t, "(\n    a: 1,\n    b: 2,\n)", err.Span().Text(source))
	assert.True(t, err.Span().Multiline())
}

func TestDecodeIntegerSequence(t *testing.T) {
	d := NewDecoder()
	elements, err := d.Sequence(mustParse(t, "[1, 2, 3]"))
	require.Nil(t, err)

	var got []int64
	for _, el := range elements {
		n, err := d.Int(el, 64)
		require.Nil(t, err)
		got = append(got, n)
	}
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestDecodeOption(t *testing.T) {
	d := NewDecoder()

	inner, some, err := d.Option(mustParse(t, "Some(5)"))
	require.Nil(t, err)
	require.True(t, some)
	n, err := d.Int(inner, 64)
	require.Nil(t, err)
	assert.Equal(t, int64(5), n)

	_, some, err = d.Option(mustParse(t, "None"))
	require.Nil(t, err)
	assert.False(t, some)

	_, _, err = d.Option(mustParse(t, "5"))
	require.NotNil(t, err)
	assert.Equal(t, "invalid type: integer `5`, expected an option", err.Message())
}

func TestDecodeStructTrailingComma(t *testing.T) {
	d := NewDecoder()

	plain, err := d.Struct(mustParse(t, "Point(x: 1, y: 2)"), "Point", []string{"x", "y"})
	require.Nil(t, err)
	trailing, err := d.Struct(mustParse(t, "Point(x: 1, y: 2,)"), "Point", []string{"x", "y"})
	require.Nil(t, err)

	require.Len(t, trailing, len(plain))
	for i := range plain {
		a, err := d.Int(plain[i], 64)
		require.Nil(t, err)
		b, err := d.Int(trailing[i], 64)
		require.Nil(t, err)
		assert.Equal(t, a, b)
	}
}

// An undeclared field fails at the field identifier, not the whole struct.
func TestUnknownFieldAnchoredAtIdent(t *testing.T) {
	source := `(a: 1, z: 2)`
	d := NewDecoder()

	_, err := d.Struct(mustParse(t, source), "", []string{"a"})
	require.NotNil(t, err)
	assert.Equal(t, "unknown field `z`", err.Message())
	assert.Equal(t, "z", err.Span().Text(source))
}

func TestMissingFieldAnchoredAtStruct(t *testing.T) {
	source := `Point(x: 1)`
	d := NewDecoder()

	_, err := d.Struct(mustParse(t, source), "Point", []string{"x", "y"})
	require.NotNil(t, err)
	assert.Equal(t, "missing field `y`", err.Message())
	assert.Equal(t, source, err.Span().Text(source))
}

func TestStructDecodesPositionallyFromTuple(t *testing.T) {
	d := NewDecoder()

	for _, source := range []string{"(1, 2)", "[1, 2]", "Point(1, 2)"} {
		values, err := d.Struct(mustParse(t, source), "Point", []string{"x", "y"})
		require.Nil(t, err, "source %q", source)
		require.Len(t, values, 2)
		x, err := d.Int(values[0], 64)
		require.Nil(t, err)
		assert.Equal(t, int64(1), x)
	}

	_, err := d.Struct(mustParse(t, "(1, 2, 3)"), "Point", []string{"x", "y"})
	require.NotNil(t, err)
	assert.Contains(t, err.Message(), "expected struct `Point` with 2 fields")
}

func TestStructRejectsForeignName(t *testing.T) {
	d := NewDecoder()
	_, err := d.Struct(mustParse(t, "Circle(r: 1)"), "Point", []string{"r"})
	require.NotNil(t, err)
	assert.Equal(t, "invalid type: struct `Circle`, expected struct `Point`", err.Message())
}

func TestDecodeEnum(t *testing.T) {
	d := NewDecoder()
	variants := []string{"Red", "Rgb", "Named"}

	v, err := d.Enum(mustParse(t, "Red"), variants)
	require.Nil(t, err)
	assert.Equal(t, "Red", v.Name)
	assert.Nil(t, v.Payload)

	v, err = d.Enum(mustParse(t, "Rgb(1, 2, 3)"), variants)
	require.Nil(t, err)
	assert.Equal(t, "Rgb", v.Name)
	elements, err := d.Tuple(v.Payload, "Rgb", 3)
	require.Nil(t, err)
	assert.Len(t, elements, 3)

	v, err = d.Enum(mustParse(t, "Named(hue: 120)"), variants)
	require.Nil(t, err)
	values, err := d.Struct(v.Payload, "Named", []string{"hue"})
	require.Nil(t, err)
	require.Len(t, values, 1)
}

func TestUnknownVariantAnchoredAtIdent(t *testing.T) {
	source := "Purple(1)"
	d := NewDecoder()

	_, err := d.Enum(mustParse(t, source), []string{"Red", "Green"})
	require.NotNil(t, err)
	assert.Equal(t, "unknown variant `Purple`", err.Message())
	assert.Equal(t, "Purple", err.Span().Text(source))
}

func TestIntegerWidths(t *testing.T) {
	d := NewDecoder()

	n, err := d.Int(mustParse(t, "-128"), 8)
	require.Nil(t, err)
	assert.Equal(t, int64(-128), n)

	_, err = d.Int(mustParse(t, "-129"), 8)
	require.NotNil(t, err)
	assert.Equal(t, "number `-129` does not fit in i8", err.Message())

	_, err = d.Int(mustParse(t, "128"), 8)
	require.NotNil(t, err)
	assert.Equal(t, "number `128` does not fit in i8", err.Message())

	u, err := d.Uint(mustParse(t, "255"), 8)
	require.Nil(t, err)
	assert.Equal(t, uint64(255), u)

	_, err = d.Uint(mustParse(t, "256"), 8)
	require.NotNil(t, err)
	assert.Equal(t, "number `256` does not fit in u8", err.Message())

	_, err = d.Uint(mustParse(t, "-1"), 32)
	require.NotNil(t, err)
	assert.Equal(t, "number `-1` does not fit in u32", err.Message())

	u, err = d.Uint(mustParse(t, "18446744073709551615"), 64)
	require.Nil(t, err)
	assert.Equal(t, uint64(18446744073709551615), u)
}

// The literal's own suffix is checked before the requested width.
func TestSuffixIsAuthoritative(t *testing.T) {
	source := "300u8"
	d := NewDecoder()

	_, err := d.Int(mustParse(t, source), 64)
	require.NotNil(t, err)
	assert.Equal(t, "number `300` does not fit in u8", err.Message())
	assert.Equal(t, source, err.Span().Text(source))

	// a fitting suffix converts to any compatible width
	n, err := d.Int(mustParse(t, "5u8"), 32)
	require.Nil(t, err)
	assert.Equal(t, int64(5), n)
}

func TestFloatRequests(t *testing.T) {
	d := NewDecoder()

	f, err := d.Float(mustParse(t, "2.5"), 64)
	require.Nil(t, err)
	assert.Equal(t, 2.5, f)

	// unsuffixed integers satisfy a float request
	f, err = d.Float(mustParse(t, "-3"), 64)
	require.Nil(t, err)
	assert.Equal(t, -3.0, f)

	// a suffixed integer does not
	_, err = d.Float(mustParse(t, "3i32"), 64)
	require.NotNil(t, err)
	assert.Equal(t, "invalid type: integer `3`, expected a float", err.Message())

	_, err = d.Float(mustParse(t, "1e300"), 32)
	require.NotNil(t, err)
	assert.Contains(t, err.Message(), "does not fit in f32")

	_, err = d.Int(mustParse(t, "2.5"), 64)
	require.NotNil(t, err)
	assert.Equal(t, "invalid type: float `2.5`, expected an integer", err.Message())
}

func TestDecodeMapEntries(t *testing.T) {
	d := NewDecoder()
	entries, err := d.Map(mustParse(t, `{"a": 1, "b": 2}`))
	require.Nil(t, err)
	require.Len(t, entries, 2)

	k, err := d.String(entries[0].Key)
	require.Nil(t, err)
	assert.Equal(t, "a", k)

	_, err = d.Map(mustParse(t, "[1]"))
	require.NotNil(t, err)
	assert.Equal(t, "invalid type: sequence, expected a map", err.Message())
}

func TestAnyMaterializesNestedValues(t *testing.T) {
	d := NewDecoder()

	v, err := d.Any(mustParse(t, `Config(name: "demo", retries: 3, ratio: 0.5, tags: ["a", "b"], extra: None)`))
	require.Nil(t, err)

	pairs, ok := v.([]Pair)
	require.True(t, ok)
	require.Len(t, pairs, 5)
	assert.Equal(t, Pair{Key: "name", Value: "demo"}, pairs[0])
	assert.Equal(t, Pair{Key: "retries", Value: int64(3)}, pairs[1])
	assert.Equal(t, Pair{Key: "ratio", Value: 0.5}, pairs[2])
	assert.Equal(t, Pair{Key: "tags", Value: []any{"a", "b"}}, pairs[3])
	assert.Equal(t, Pair{Key: "extra", Value: nil}, pairs[4])
}

func TestAnyChecksSuffixOverflow(t *testing.T) {
	d := NewDecoder()
	_, err := d.Any(mustParse(t, "[1, 2, 300u8]"))
	require.NotNil(t, err)
	assert.Equal(t, "number `300` does not fit in u8", err.Message())
}

func TestAnyRespectsDepthLimit(t *testing.T) {
	deep := strings.Repeat("[", 40) + "1" + strings.Repeat("]", 40)
	v, perr := parsing.Parse(deep)
	require.Nil(t, perr)

	d := NewDecoderWithOptions(Options{MaxDepth: 10})
	_, err := d.Any(v)
	require.NotNil(t, err)
	assert.Equal(t, "exceeded maximum nesting depth of 10", err.Message())

	_, err = NewDecoder().Any(v)
	assert.Nil(t, err)
}

// The same parsed tree can be decoded repeatedly against different shapes.
func TestAstIsReusableAcrossDecodes(t *testing.T) {
	v := mustParse(t, "(1, 2)")
	d := NewDecoder()

	_, err := d.Struct(v, "Point", []string{"x", "y"})
	require.Nil(t, err)
	_, err = d.Tuple(v, "", 2)
	require.Nil(t, err)
	_, err = d.String(v)
	require.NotNil(t, err)
	_, err = d.Tuple(v, "", 2)
	require.Nil(t, err)
}
