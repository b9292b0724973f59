package diagnostics

import "fmt"

// Diagnostic is the common surface of all source-anchored errors produced by
// the parser and the decoder. Every diagnostic carries exactly one span and
// one message; routing it into a renderer is the caller's job.
type Diagnostic interface {
	error
	Span() Span
	Message() string
}

// ParseError represents a syntax error: a malformed token, an unmatched
// delimiter, or an unexpected end of input.
type ParseError struct {
	span    Span
	message string
}

// NewParseError creates a new ParseError with the given message and span.
func NewParseError(message string, span Span) *ParseError {
	return &ParseError{message: message, span: span}
}

// Span returns the source region the error points at.
func (e *ParseError) Span() Span { return e.span }

// Message returns the human-readable description without location prefix.
func (e *ParseError) Message() string { return e.message }

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.span.Start.Line, e.span.Start.Column, e.message)
}

// DecodeError represents a semantic error raised while mapping an AST node
// onto a requested shape: a type mismatch, an unknown or missing field, an
// unknown enum variant, or a numeric overflow.
type DecodeError struct {
	span    Span
	message string
}

// NewDecodeError creates a new DecodeError with the given message and span.
func NewDecodeError(message string, span Span) *DecodeError {
	return &DecodeError{message: message, span: span}
}

// NewTypeMismatchError creates an error for a value of the wrong kind.
// The observed description names the kind and, where useful, the literal,
// e.g. "boolean `true`".
func NewTypeMismatchError(observed, expected string, span Span) *DecodeError {
	return NewDecodeError(fmt.Sprintf("invalid type: %s, expected %s", observed, expected), span)
}

// NewUnknownFieldError creates an error for a field the requested struct
// shape does not declare. The span is the field identifier, not the whole
// struct literal.
func NewUnknownFieldError(fieldName string, span Span) *DecodeError {
	return NewDecodeError(fmt.Sprintf("unknown field `%s`", fieldName), span)
}

// NewMissingFieldError creates an error for a declared field absent from the
// literal. The span is the whole struct literal; no closer location exists.
func NewMissingFieldError(fieldName string, span Span) *DecodeError {
	return NewDecodeError(fmt.Sprintf("missing field `%s`", fieldName), span)
}

// NewUnknownVariantError creates an error for an enum variant name that is
// not among the declared variants.
func NewUnknownVariantError(variantName string, span Span) *DecodeError {
	return NewDecodeError(fmt.Sprintf("unknown variant `%s`", variantName), span)
}

// NewOverflowError creates an error for a numeric literal that does not fit
// the requested width.
func NewOverflowError(literal, target string, span Span) *DecodeError {
	return NewDecodeError(fmt.Sprintf("number `%s` does not fit in %s", literal, target), span)
}

// Span returns the source region the error points at.
func (e *DecodeError) Span() Span { return e.span }

// Message returns the human-readable description without location prefix.
func (e *DecodeError) Message() string { return e.message }

func (e *DecodeError) Error() string {
	return fmt.Sprintf("deserialization error at %d:%d: %s", e.span.Start.Line, e.span.Start.Column, e.message)
}
