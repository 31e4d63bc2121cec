package diagnostics

import (
	"bytes"
	"fmt"
)

// Diagnostics represents a list of parse or build errors and warnings. It is
// used to accumulate multiple problems and show them at once instead of
// erroring out on the first one.
type Diagnostics struct {
	errors   []ScriptError
	warnings []ScriptWarning
}

// NewDiagnostics creates a new empty Diagnostics collection.
func NewDiagnostics() Diagnostics {
	return Diagnostics{
		errors:   make([]ScriptError, 0),
		warnings: make([]ScriptWarning, 0),
	}
}

// Errors returns all errors in the collection.
func (d *Diagnostics) Errors() []ScriptError {
	return d.errors
}

// Warnings returns all warnings in the collection.
func (d *Diagnostics) Warnings() []ScriptWarning {
	return d.warnings
}

// PushError adds an error to the collection.
func (d *Diagnostics) PushError(err ScriptError) {
	d.errors = append(d.errors, err)
}

// PushWarning adds a warning to the collection.
func (d *Diagnostics) PushWarning(warning ScriptWarning) {
	d.warnings = append(d.warnings, warning)
}

// HasErrors returns true if there is at least one error in this collection.
func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) > 0
}

// ToResult returns an error if there are errors, otherwise returns nil.
func (d *Diagnostics) ToResult() error {
	if d.HasErrors() {
		return fmt.Errorf("script validation failed with %d error(s)", len(d.errors))
	}
	return nil
}

// ToPrettyString formats all errors as a pretty-printed string.
func (d *Diagnostics) ToPrettyString(fileName, script string) string {
	var buf bytes.Buffer
	for _, err := range d.errors {
		_ = err.PrettyPrint(&buf, fileName, script)
	}
	return buf.String()
}

// WarningsToPrettyString formats all warnings as a pretty-printed string.
func (d *Diagnostics) WarningsToPrettyString(fileName, script string) string {
	var buf bytes.Buffer
	for _, warn := range d.warnings {
		_ = warn.PrettyPrint(&buf, fileName, script)
	}
	return buf.String()
}

// FromError creates a Diagnostics from a single error.
func FromError(err ScriptError) Diagnostics {
	d := NewDiagnostics()
	d.PushError(err)
	return d
}
