package diagnostics

import (
	"fmt"
	"io"
)

// ScriptError represents a parse or model-building error in a DDL script.
type ScriptError struct {
	span    Span
	message string
}

// NewScriptError creates a new ScriptError with the given message and span.
func NewScriptError(message string, span Span) ScriptError {
	return ScriptError{
		message: message,
		span:    span,
	}
}

// NewParserError creates an error for a syntax problem reported by the parser.
func NewParserError(message string, span Span) ScriptError {
	return NewScriptError(message, span)
}

// NewDuplicateObjectError creates an error for an object whose qualified name
// is already taken, by any kind of object, within its schema.
func NewDuplicateObjectError(name, existingKind string, span Span) ScriptError {
	return NewScriptError(fmt.Sprintf("The identifier %q cannot be used because a %s with that name already exists.", name, existingKind), span)
}

// NewUnknownObjectError creates an error for a drop statement naming an
// object that is not present in the model.
func NewUnknownObjectError(kind, name string, span Span) ScriptError {
	return NewScriptError(fmt.Sprintf("Cannot drop %s %q: no such object.", kind, name), span)
}

// NewKindMismatchError creates an error for a drop statement whose kind does
// not match the object it names.
func NewKindMismatchError(name, wantKind, gotKind string, span Span) ScriptError {
	return NewScriptError(fmt.Sprintf("Cannot drop %s %q: the existing object is a %s.", wantKind, name, gotKind), span)
}

// NewUnresolvedReferenceError creates an error for a dependency that never
// resolved during order computation.
func NewUnresolvedReferenceError(from, to string, span Span) ScriptError {
	return NewScriptError(fmt.Sprintf("%q references %q, which does not exist in the model.", from, to), span)
}

// NewDependencyCycleError creates an error for a set of mutually dependent objects.
func NewDependencyCycleError(sequence string, span Span) ScriptError {
	return NewScriptError(fmt.Sprintf("Dependency cycle detected: %s. No creation order exists for these objects.", sequence), span)
}

// Span returns the span of the error.
func (e ScriptError) Span() Span {
	return e.span
}

// Message returns the error message.
func (e ScriptError) Message() string {
	return e.message
}

// Error implements the error interface.
func (e ScriptError) Error() string {
	return e.message
}

// PrettyPrint writes a pretty-printed representation of the error to the writer.
func (e ScriptError) PrettyPrint(w io.Writer, fileName, text string) error {
	return PrettyPrint(w, fileName, text, e.span, e.message, ErrorColorer{})
}
