package diagnostics

import (
	"fmt"
	"io"
)

// ScriptWarning represents a non-fatal condition noticed while building the model.
type ScriptWarning struct {
	message string
	span    Span
}

// NewScriptWarning creates a new ScriptWarning with the given message and span.
func NewScriptWarning(message string, span Span) ScriptWarning {
	return ScriptWarning{
		message: message,
		span:    span,
	}
}

// NewDropMissingObjectWarning creates a warning for a `drop ... if exists`
// statement whose target is not in the model. The drop/recreate idiom makes
// this routine, so it never fails the build.
func NewDropMissingObjectWarning(kind, name string, span Span) ScriptWarning {
	return NewScriptWarning(fmt.Sprintf("Drop of %s %q skipped: no such object.", kind, name), span)
}

// NewCascadeWarning creates a warning for dropping a namespace that still has
// members; the members become dangling until they are dropped too.
func NewCascadeWarning(name string, memberCount int, span Span) ScriptWarning {
	return NewScriptWarning(fmt.Sprintf("Dropping schema %q leaves %d member object(s) dangling.", name, memberCount), span)
}

// Message returns the warning message.
func (w ScriptWarning) Message() string {
	return w.message
}

// Span returns the span of the warning.
func (w ScriptWarning) Span() Span {
	return w.span
}

// PrettyPrint writes a pretty-printed representation of the warning to the writer.
func (w ScriptWarning) PrettyPrint(writer io.Writer, fileName, text string) error {
	return PrettyPrint(writer, fileName, text, w.span, w.message, WarningColorer{})
}
