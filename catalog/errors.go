package catalog

import (
	"fmt"
	"strings"
)

// DuplicateIdentifierError is returned by Add when an object with the same
// qualified identifier already exists in the model. Identifier uniqueness is
// kind-independent per schema: a table and a type may not share a name.
type DuplicateIdentifierError struct {
	Identifier Identifier
	Existing   Kind
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate identifier %q: a %s with that name already exists", e.Identifier, e.Existing)
}

// NotFoundError is returned by Remove when no object with the given
// identifier and kind exists.
type NotFoundError struct {
	Identifier Identifier
	Kind       Kind
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Identifier)
}

// Unresolved records a declared dependency that did not resolve to any
// object in the model. From is the qualified identifier of the declaring
// object; To is the reference exactly as it was declared.
type Unresolved struct {
	From Identifier
	To   Identifier
}

func (u Unresolved) String() string {
	return fmt.Sprintf("%s -> %s", u.From, u.To)
}

// Cycle is an ordered sequence of identifiers that are mutually dependent,
// so no valid creation order exists among them.
type Cycle []Identifier

func (c Cycle) String() string {
	parts := make([]string, len(c))
	for i, id := range c {
		parts[i] = id.String()
	}
	return strings.Join(parts, " -> ")
}

// OrderingError is returned when order computation cannot place every object.
// It carries the complete unresolved-reference set and every dependency cycle
// so callers can report all problems at once. The partial order of the
// objects that could be placed is still available on the returned Plan.
type OrderingError struct {
	Cycles     []Cycle
	Unresolved []Unresolved
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("ordering failed: %d cycle(s), %d unresolved reference(s)", len(e.Cycles), len(e.Unresolved))
}
