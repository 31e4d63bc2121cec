// Package diagnostics provides error and warning handling for DDL script
// parsing and model building.
package diagnostics

// Span represents a location in a script's text representation.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewSpan creates a new span with the given boundaries.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// EmptySpan creates a new empty span.
func EmptySpan() Span {
	return Span{}
}

// Contains checks if the given position is inside the span (boundaries included).
func (s Span) Contains(position int) bool {
	return position >= s.Start && position <= s.End
}
