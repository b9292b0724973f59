package diagnostics

import (
	"bytes"
	"fmt"
)

// Diagnostics represents a list of parser or deserialization errors and
// warnings. It is used to accumulate multiple diagnostics and render them
// at once instead of erroring out on the first.
type Diagnostics struct {
	errors   []Diagnostic
	warnings []Diagnostic
}

// NewDiagnostics creates a new empty Diagnostics collection.
func NewDiagnostics() Diagnostics {
	return Diagnostics{
		errors:   make([]Diagnostic, 0),
		warnings: make([]Diagnostic, 0),
	}
}

// Errors returns all errors in the collection.
func (d *Diagnostics) Errors() []Diagnostic {
	return d.errors
}

// Warnings returns all warnings in the collection.
func (d *Diagnostics) Warnings() []Diagnostic {
	return d.warnings
}

// PushError adds an error to the collection.
func (d *Diagnostics) PushError(err Diagnostic) {
	d.errors = append(d.errors, err)
}

// PushWarning adds a warning to the collection.
func (d *Diagnostics) PushWarning(warning Diagnostic) {
	d.warnings = append(d.warnings, warning)
}

// HasErrors returns true if there is at least one error in this collection.
func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) > 0
}

// ToResult returns an error if there are errors, otherwise returns nil.
func (d *Diagnostics) ToResult() error {
	if d.HasErrors() {
		if len(d.errors) == 1 {
			return d.errors[0]
		}
		return fmt.Errorf("failed with %d errors", len(d.errors))
	}
	return nil
}

// ToPrettyString formats all errors as a pretty-printed string.
func (d *Diagnostics) ToPrettyString(fileName, source string) string {
	var buf bytes.Buffer
	for _, err := range d.errors {
		_ = PrettyPrint(&buf, fileName, source, err.Span(), err.Message(), ErrorColorer{})
	}
	return buf.String()
}

// WarningsToPrettyString formats all warnings as a pretty-printed string.
func (d *Diagnostics) WarningsToPrettyString(fileName, source string) string {
	var buf bytes.Buffer
	for _, warn := range d.warnings {
		_ = PrettyPrint(&buf, fileName, source, warn.Span(), warn.Message(), WarningColorer{})
	}
	return buf.String()
}
