// Package ron provides the main API for parsing and decoding RON text.
package ron

import (
	"github.com/satishbabariya/ron-go/ron/core"
	"github.com/satishbabariya/ron-go/ron/decode"
	"github.com/satishbabariya/ron-go/ron/diagnostics"
	"github.com/satishbabariya/ron-go/ron/parsing"
	"github.com/satishbabariya/ron-go/ron/parsing/ast"
)

// Re-export key types for convenience
type (
	SourceFile   = core.SourceFile
	Diagnostics  = diagnostics.Diagnostics
	Position     = diagnostics.Position
	Span         = diagnostics.Span
	ParseError   = diagnostics.ParseError
	DecodeError  = diagnostics.DecodeError
	Value        = ast.Value
	ParseOptions = parsing.Options
	Decoder      = decode.Decoder
)

// Parse parses a complete RON value and returns the AST and diagnostics.
func Parse(input string) (ast.Value, diagnostics.Diagnostics) {
	return ParseWithOptions(input, parsing.Options{})
}

// ParseWithOptions is Parse with explicit parser limits.
func ParseWithOptions(input string, opts parsing.Options) (ast.Value, diagnostics.Diagnostics) {
	value, err := parsing.ParseWithOptions(input, opts)
	var diags diagnostics.Diagnostics
	if err != nil {
		diags.PushError(err)
	}
	return value, diags
}

// ParseFromFile parses a RON value from a source file.
func ParseFromFile(file core.SourceFile) (ast.Value, diagnostics.Diagnostics) {
	return Parse(file.Data)
}

// NewDecoder creates a decoder with default limits.
func NewDecoder() *decode.Decoder {
	return decode.NewDecoder()
}

// NewSourceFile creates a new source file.
func NewSourceFile(path, data string) core.SourceFile {
	return core.NewSourceFile(path, data)
}
