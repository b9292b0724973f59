// Package decode maps parsed RON values onto caller-requested shapes.
//
// The Decoder is a capability interface: one method per shape category
// (boolean, integer widths, float, char, string, unit, option, sequence,
// map, named-fields struct, enum). A typed-binding layer drives these
// methods against its own schema; the decoder itself knows nothing about
// target types. Every failure carries the span of the AST node that did
// not fit, so callers can render source-anchored reports.
package decode

import (
	"fmt"
	"math"

	"github.com/satishbabariya/ron-go/ron/diagnostics"
	"github.com/satishbabariya/ron-go/ron/parsing/ast"
)

// DefaultMaxDepth bounds recursion when materializing arbitrarily nested
// values. Shape methods are single-level and unaffected.
const DefaultMaxDepth = 128

// Options configures a Decoder.
type Options struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Decoder converts AST nodes into requested shapes. It borrows the AST
// read-only, so one parsed value may be decoded any number of times,
// against different shapes, without re-parsing.
type Decoder struct {
	maxDepth int
}

// NewDecoder creates a Decoder with default limits.
func NewDecoder() *Decoder {
	return NewDecoderWithOptions(Options{})
}

// NewDecoderWithOptions creates a Decoder with explicit limits.
func NewDecoderWithOptions(opts Options) *Decoder {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Decoder{maxDepth: maxDepth}
}

func mismatch(v ast.Value, expected string) *diagnostics.DecodeError {
	return diagnostics.NewTypeMismatchError(ast.Describe(v), expected, v.NodeSpan())
}

// Bool decodes a boolean literal.
func (d *Decoder) Bool(v ast.Value) (bool, *diagnostics.DecodeError) {
	b, ok := v.(*ast.Bool)
	if !ok {
		return false, mismatch(v, "a boolean")
	}
	return b.Value, nil
}

// Unit decodes the unit value `()`.
func (d *Decoder) Unit(v ast.Value) *diagnostics.DecodeError {
	if _, ok := v.(*ast.Unit); !ok {
		return mismatch(v, "a unit")
	}
	return nil
}

// Char decodes a character literal.
func (d *Decoder) Char(v ast.Value) (rune, *diagnostics.DecodeError) {
	c, ok := v.(*ast.Char)
	if !ok {
		return 0, mismatch(v, "a character")
	}
	return c.Value, nil
}

// String decodes a string literal (escaped or raw).
func (d *Decoder) String(v ast.Value) (string, *diagnostics.DecodeError) {
	s, ok := v.(*ast.String)
	if !ok {
		return "", mismatch(v, "a string")
	}
	return s.Value, nil
}

// Option decodes an option. It returns the inner value and true for
// `Some(x)`, nil and false for `None`.
func (d *Decoder) Option(v ast.Value) (ast.Value, bool, *diagnostics.DecodeError) {
	o, ok := v.(*ast.Option)
	if !ok {
		return nil, false, mismatch(v, "an option")
	}
	if o.Inner == nil {
		return nil, false, nil
	}
	return o.Inner, true, nil
}

// Sequence decodes a `[...]` literal, returning its elements for the
// caller to decode one by one.
func (d *Decoder) Sequence(v ast.Value) ([]ast.Value, *diagnostics.DecodeError) {
	s, ok := v.(*ast.Sequence)
	if !ok {
		return nil, mismatch(v, "a sequence")
	}
	return s.Elements, nil
}

// Map decodes a `{...}` literal, returning its entries in source order.
func (d *Decoder) Map(v ast.Value) ([]ast.Entry, *diagnostics.DecodeError) {
	m, ok := v.(*ast.Map)
	if !ok {
		return nil, mismatch(v, "a map")
	}
	return m.Entries, nil
}

// Struct decodes a named-fields literal against a declared field list.
// The result holds one value per declared field, in declaration order.
//
// A named-fields literal is matched by name: a field the shape does not
// declare fails at that field's identifier span, a declared field absent
// from the literal fails at the whole literal's span. A bare tuple or a
// sequence whose element count equals the declared field count decodes
// positionally, since the format lets context supply the type name.
func (d *Decoder) Struct(v ast.Value, typeName string, fieldNames []string) ([]ast.Value, *diagnostics.DecodeError) {
	expected := "a struct"
	if typeName != "" {
		expected = fmt.Sprintf("struct `%s`", typeName)
	}

	switch n := v.(type) {
	case *ast.NamedFields:
		if err := checkLiteralName(n.Name, typeName, v, expected); err != nil {
			return nil, err
		}
		return matchFields(n, fieldNames)
	case *ast.Tuple:
		if err := checkLiteralName(n.Name, typeName, v, expected); err != nil {
			return nil, err
		}
		return positional(v, n.Elements, fieldNames, expected)
	case *ast.Sequence:
		return positional(v, n.Elements, fieldNames, expected)
	case *ast.Unit:
		if len(fieldNames) == 0 {
			return nil, nil
		}
		return nil, mismatch(v, expected)
	default:
		return nil, mismatch(v, expected)
	}
}

// checkLiteralName rejects a literal whose leading name contradicts the
// requested type name. A nameless literal always passes.
func checkLiteralName(name *ast.Ident, typeName string, v ast.Value, expected string) *diagnostics.DecodeError {
	if name == nil || typeName == "" || name.Name == typeName {
		return nil
	}
	return mismatch(v, expected)
}

func matchFields(n *ast.NamedFields, fieldNames []string) ([]ast.Value, *diagnostics.DecodeError) {
	index := make(map[string]int, len(fieldNames))
	for i, name := range fieldNames {
		index[name] = i
	}
	values := make([]ast.Value, len(fieldNames))
	for _, f := range n.Fields {
		i, ok := index[f.Name.Name]
		if !ok {
			return nil, diagnostics.NewUnknownFieldError(f.Name.Name, f.Name.Span)
		}
		values[i] = f.Value
	}
	for i, name := range fieldNames {
		if values[i] == nil {
			return nil, diagnostics.NewMissingFieldError(name, n.Span)
		}
	}
	return values, nil
}

func positional(v ast.Value, elements []ast.Value, fieldNames []string, expected string) ([]ast.Value, *diagnostics.DecodeError) {
	if len(elements) != len(fieldNames) {
		return nil, mismatch(v, fmt.Sprintf("%s with %d fields", expected, len(fieldNames)))
	}
	return elements, nil
}

// Tuple decodes a tuple literal with the given element count. Bare tuples
// and sequences both qualify; a named tuple must match typeName when one
// is requested.
func (d *Decoder) Tuple(v ast.Value, typeName string, arity int) ([]ast.Value, *diagnostics.DecodeError) {
	expected := "a tuple"
	if typeName != "" {
		expected = fmt.Sprintf("tuple `%s`", typeName)
	}
	var elements []ast.Value
	switch n := v.(type) {
	case *ast.Tuple:
		if err := checkLiteralName(n.Name, typeName, v, expected); err != nil {
			return nil, err
		}
		elements = n.Elements
	case *ast.Sequence:
		elements = n.Elements
	case *ast.Unit:
		elements = nil
	default:
		return nil, mismatch(v, expected)
	}
	if len(elements) != arity {
		return nil, mismatch(v, fmt.Sprintf("%s with %d elements", expected, arity))
	}
	return elements, nil
}

// Variant is one decoded enum case: the variant name the literal led with
// and its payload. Payload is nil for a unit variant; otherwise it is the
// named tuple or named-fields node itself, ready for Struct or Tuple.
type Variant struct {
	Name    string
	Span    diagnostics.Span
	Payload ast.Value
}

// Enum decodes an enum literal by dispatching on its leading identifier.
// A bare identifier is a unit variant; a named tuple or named-fields
// literal is a data-carrying variant. A leading name outside variants
// fails at the identifier's span.
func (d *Decoder) Enum(v ast.Value, variants []string) (Variant, *diagnostics.DecodeError) {
	var name *ast.Ident
	var payload ast.Value
	switch n := v.(type) {
	case *ast.Ident:
		name = n
	case *ast.Tuple:
		name = n.Name
		payload = v
	case *ast.NamedFields:
		name = n.Name
		payload = v
	}
	if name == nil {
		return Variant{}, mismatch(v, "an enum variant")
	}
	for _, candidate := range variants {
		if name.Name == candidate {
			return Variant{Name: name.Name, Span: name.Span, Payload: payload}, nil
		}
	}
	return Variant{}, diagnostics.NewUnknownVariantError(name.Name, name.Span)
}

// integer width limits by target name.
func intTarget(bits int) string  { return fmt.Sprintf("i%d", bits) }
func uintTarget(bits int) string { return fmt.Sprintf("u%d", bits) }

// Int decodes a signed integer of the given width (8, 16, 32 or 64 bits).
// An explicit suffix on the literal is authoritative: the literal must fit
// its own suffix before the requested width is checked.
func (d *Decoder) Int(v ast.Value, bits int) (int64, *diagnostics.DecodeError) {
	n, ok := v.(*ast.Integer)
	if !ok {
		return 0, mismatch(v, "an integer")
	}
	if err := checkSuffix(n); err != nil {
		return 0, err
	}
	if n.Sign == ast.Negative {
		limit := uint64(1) << (bits - 1)
		if n.Magnitude > limit {
			return 0, diagnostics.NewOverflowError(n.Literal(), intTarget(bits), n.Span)
		}
		return -int64(n.Magnitude), nil
	}
	limit := uint64(1)<<(bits-1) - 1
	if n.Magnitude > limit {
		return 0, diagnostics.NewOverflowError(n.Literal(), intTarget(bits), n.Span)
	}
	return int64(n.Magnitude), nil
}

// Uint decodes an unsigned integer of the given width (8, 16, 32 or 64
// bits). Negative literals do not fit any unsigned width.
func (d *Decoder) Uint(v ast.Value, bits int) (uint64, *diagnostics.DecodeError) {
	n, ok := v.(*ast.Integer)
	if !ok {
		return 0, mismatch(v, "an integer")
	}
	if err := checkSuffix(n); err != nil {
		return 0, err
	}
	if n.Sign == ast.Negative && n.Magnitude != 0 {
		return 0, diagnostics.NewOverflowError(n.Literal(), uintTarget(bits), n.Span)
	}
	if bits < 64 {
		limit := uint64(1)<<bits - 1
		if n.Magnitude > limit {
			return 0, diagnostics.NewOverflowError(n.Literal(), uintTarget(bits), n.Span)
		}
	}
	return n.Magnitude, nil
}

// checkSuffix verifies a suffixed literal fits the width its own suffix
// names. The parser already guarantees the suffix is a known one.
func checkSuffix(n *ast.Integer) *diagnostics.DecodeError {
	if n.Suffix == "" {
		return nil
	}
	var fits bool
	switch n.Suffix {
	case "i8":
		fits = fitsSigned(n, 8)
	case "i16":
		fits = fitsSigned(n, 16)
	case "i32":
		fits = fitsSigned(n, 32)
	case "i64":
		fits = fitsSigned(n, 64)
	case "u8":
		fits = fitsUnsigned(n, 8)
	case "u16":
		fits = fitsUnsigned(n, 16)
	case "u32":
		fits = fitsUnsigned(n, 32)
	case "u64":
		fits = fitsUnsigned(n, 64)
	default:
		fits = true
	}
	if !fits {
		return diagnostics.NewOverflowError(n.Literal(), n.Suffix, n.Span)
	}
	return nil
}

func fitsSigned(n *ast.Integer, bits int) bool {
	if n.Sign == ast.Negative {
		return n.Magnitude <= uint64(1)<<(bits-1)
	}
	return n.Magnitude <= uint64(1)<<(bits-1)-1
}

func fitsUnsigned(n *ast.Integer, bits int) bool {
	if n.Sign == ast.Negative && n.Magnitude != 0 {
		return false
	}
	if bits == 64 {
		return true
	}
	return n.Magnitude <= uint64(1)<<bits-1
}

// Float decodes a floating-point literal of the given width (32 or 64
// bits). An unsuffixed integer literal also qualifies; a suffixed one does
// not, since the suffix pins its type.
func (d *Decoder) Float(v ast.Value, bits int) (float64, *diagnostics.DecodeError) {
	switch n := v.(type) {
	case *ast.Float:
		if bits == 32 && !math.IsInf(n.Value, 0) && math.Abs(n.Value) > math.MaxFloat32 {
			return 0, diagnostics.NewOverflowError(fmt.Sprintf("%v", n.Value), "f32", n.Span)
		}
		return n.Value, nil
	case *ast.Integer:
		if n.Suffix != "" {
			return 0, mismatch(v, "a float")
		}
		f := float64(n.Magnitude)
		if n.Sign == ast.Negative {
			f = -f
		}
		return f, nil
	default:
		return 0, mismatch(v, "a float")
	}
}
