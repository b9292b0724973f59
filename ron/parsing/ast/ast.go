// Package ast defines the abstract syntax tree for RON values.
//
// The node set is a closed union: every literal form the grammar can
// produce has exactly one node type, dispatched by type switch. Nodes are
// built once per parse, carry byte-exact source spans, and are never
// mutated afterwards; consumers (the decoder, a future format-preserving
// rewriter) traverse them read-only.
package ast

import (
	"github.com/satishbabariya/ron-go/ron/diagnostics"
)

// Node represents a node in the AST.
type Node interface {
	// NodeSpan returns the source region this node was parsed from,
	// including its delimiters and excluding surrounding whitespace
	// and comments.
	NodeSpan() diagnostics.Span
}

// Value is the union of all RON value forms.
type Value interface {
	Node
	valueNode()
}

// Sign of an integer literal.
type Sign int

const (
	// NoSign means the literal had no leading sign.
	NoSign Sign = iota
	// Positive is an explicit leading `+`.
	Positive
	// Negative is a leading `-`.
	Negative
)

// Unit is the empty value `()`.
type Unit struct {
	Span diagnostics.Span
}

// Bool is `true` or `false`.
type Bool struct {
	Span  diagnostics.Span
	Value bool
}

// Integer is a whole-number literal. The magnitude is stored unsigned with
// the sign kept separately so the full u64 range stays representable.
// Suffix holds an explicit type suffix (`10u8`, `-3i64`) or "".
type Integer struct {
	Span      diagnostics.Span
	Sign      Sign
	Magnitude uint64
	Suffix    string
}

// Float is a decimal literal with a fractional part, an exponent, or a
// float suffix.
type Float struct {
	Span   diagnostics.Span
	Value  float64
	Suffix string
}

// Char is a single-code-point literal `'x'`.
type Char struct {
	Span  diagnostics.Span
	Value rune
}

// String is a quoted string literal. Raw marks the delimiter-counted
// `r#"..."#` form, which decodes no escapes.
type String struct {
	Span  diagnostics.Span
	Value string
	Raw   bool
}

// Ident is a bare or raw (`r#name`) identifier.
type Ident struct {
	Span diagnostics.Span
	Name string
	Raw  bool
}

// Option is `None` or `Some(inner)`. Inner is nil for None.
type Option struct {
	Span  diagnostics.Span
	Inner Value
}

// Sequence is a `[...]` list.
type Sequence struct {
	Span     diagnostics.Span
	Elements []Value
}

// Tuple is a `(...)` literal, optionally preceded by a type or variant
// name: `(1, 2)` or `Rgb(1, 2, 3)`. Name is nil for the bare form.
type Tuple struct {
	Span     diagnostics.Span
	Name     *Ident
	Elements []Value
}

// Field is one `name: value` pair of a named-fields literal. The identifier
// keeps its own span so unknown-field diagnostics can point at the name
// rather than the whole struct.
type Field struct {
	Name  Ident
	Value Value
}

// NamedFields is the struct literal `Name(a: 1, b: 2)` or its name-elided
// form `(a: 1, b: 2)`. Field order is insertion order and is never
// re-sorted.
type NamedFields struct {
	Span   diagnostics.Span
	Name   *Ident
	Fields []Field
}

// Entry is one `key: value` pair of a map literal.
type Entry struct {
	Key   Value
	Value Value
}

// Map is the `{...}` literal. Entry order is insertion order.
type Map struct {
	Span    diagnostics.Span
	Entries []Entry
}

// NodeSpan implements Node.
func (n *Unit) NodeSpan() diagnostics.Span { return n.Span }

// NodeSpan implements Node.
func (n *Bool) NodeSpan() diagnostics.Span { return n.Span }

// NodeSpan implements Node.
func (n *Integer) NodeSpan() diagnostics.Span { return n.Span }

// NodeSpan implements Node.
func (n *Float) NodeSpan() diagnostics.Span { return n.Span }

// NodeSpan implements Node.
func (n *Char) NodeSpan() diagnostics.Span { return n.Span }

// NodeSpan implements Node.
func (n *String) NodeSpan() diagnostics.Span { return n.Span }

// NodeSpan implements Node.
func (n *Ident) NodeSpan() diagnostics.Span { return n.Span }

// NodeSpan implements Node.
func (n *Option) NodeSpan() diagnostics.Span { return n.Span }

// NodeSpan implements Node.
func (n *Sequence) NodeSpan() diagnostics.Span { return n.Span }

// NodeSpan implements Node.
func (n *Tuple) NodeSpan() diagnostics.Span { return n.Span }

// NodeSpan implements Node.
func (n *NamedFields) NodeSpan() diagnostics.Span { return n.Span }

// NodeSpan implements Node.
func (n *Map) NodeSpan() diagnostics.Span { return n.Span }

func (*Unit) valueNode()        {}
func (*Bool) valueNode()        {}
func (*Integer) valueNode()     {}
func (*Float) valueNode()       {}
func (*Char) valueNode()        {}
func (*String) valueNode()      {}
func (*Ident) valueNode()       {}
func (*Option) valueNode()      {}
func (*Sequence) valueNode()    {}
func (*Tuple) valueNode()       {}
func (*NamedFields) valueNode() {}
func (*Map) valueNode()         {}
