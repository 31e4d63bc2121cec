package catalog

// Kind identifies the variant of a schema object. The declaration order of
// the constants doubles as the creation priority used for deterministic
// tie-breaking: when two objects have no relative dependency, the one with
// the lower kind is created first.
type Kind int

const (
	KindNamespace Kind = iota
	KindDomain
	KindTableType
	KindFunction
	KindProcedure
	KindTable
	KindIndex
	KindTrigger
	KindConstraint
)

var kindNames = map[Kind]string{
	KindNamespace:  "namespace",
	KindDomain:     "domain",
	KindTableType:  "table type",
	KindFunction:   "function",
	KindProcedure:  "procedure",
	KindTable:      "table",
	KindIndex:      "index",
	KindTrigger:    "trigger",
	KindConstraint: "constraint",
}

// String returns the lowercase human-readable name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Priority returns the fixed creation priority of the kind. Lower values are
// created earlier when the dependency graph leaves the choice open.
func (k Kind) Priority() int {
	return int(k)
}
