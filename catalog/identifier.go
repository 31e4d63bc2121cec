// Package catalog models database schema objects and computes a safe
// creation/drop order from their declared dependencies.
package catalog

import "strings"

// Identifier is a namespace-qualified object name. The schema part is
// optional; an identifier without one lives in the default namespace.
// Comparisons are case-insensitive, following SQL convention.
type Identifier struct {
	Schema string
	Name   string
}

// ParseIdentifier parses "name" or "schema.name" into an Identifier.
func ParseIdentifier(s string) Identifier {
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		return Identifier{Schema: s[:idx], Name: s[idx+1:]}
	}
	return Identifier{Name: s}
}

// Qualified reports whether the identifier carries an explicit schema.
func (i Identifier) Qualified() bool {
	return i.Schema != ""
}

// Equal reports case-insensitive equality of schema and name.
func (i Identifier) Equal(other Identifier) bool {
	return strings.EqualFold(i.Schema, other.Schema) && strings.EqualFold(i.Name, other.Name)
}

// Key returns the normalized lookup key for the identifier. Two identifiers
// that compare Equal always produce the same key.
func (i Identifier) Key() string {
	return strings.ToLower(i.Schema) + "." + strings.ToLower(i.Name)
}

// InSchema returns a copy of the identifier qualified with the given schema.
// Used when resolving an unqualified reference within the referencing
// object's own namespace.
func (i Identifier) InSchema(schema string) Identifier {
	return Identifier{Schema: schema, Name: i.Name}
}

// String returns the identifier in "schema.name" or "name" form.
func (i Identifier) String() string {
	if i.Schema == "" {
		return i.Name
	}
	return i.Schema + "." + i.Name
}
