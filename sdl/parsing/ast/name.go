package ast

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// QualName is an optionally schema-qualified object name.
type QualName struct {
	Pos   lexer.Position
	Parts []string `@Ident ("." @Ident)?`
}

// Schema returns the schema part, or empty for an unqualified name.
func (q *QualName) Schema() string {
	if q == nil || len(q.Parts) < 2 {
		return ""
	}
	return q.Parts[0]
}

// Name returns the local name part.
func (q *QualName) Name() string {
	if q == nil || len(q.Parts) == 0 {
		return ""
	}
	return q.Parts[len(q.Parts)-1]
}

// String returns the name in "schema.name" or "name" form.
func (q *QualName) String() string {
	if q == nil {
		return ""
	}
	return strings.Join(q.Parts, ".")
}

// TypeName references a scalar type, domain or table type, with optional
// length/precision arguments.
type TypeName struct {
	Pos  lexer.Position
	Name *QualName `@@`
	Args []int     `("(" @Number ("," @Number)* ")")?`
}

// String returns the type reference in source form.
func (t *TypeName) String() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(t.Name.String())
	if len(t.Args) > 0 {
		sb.WriteString("(")
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(arg))
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// ColumnDef is one column of a table or table type.
type ColumnDef struct {
	Pos        lexer.Position
	Name       string     `@Ident`
	Type       *TypeName  `@@`
	PrimaryKey bool       `(@"primary" "key")?`
	NotNull    bool       `( @"not" "null"`
	Null       bool       `| @"null" )?`
	Ref        *InlineRef `@@?`
}

// InlineRef is a single-column foreign key reference declared on the column.
type InlineRef struct {
	Pos    lexer.Position
	Table  *QualName `"references" @@`
	Column string    `("(" @Ident ")")?`
}

// ParamDef is one routine parameter. The leading @ sigil is optional.
type ParamDef struct {
	Pos  lexer.Position
	Name string    `At? @Ident`
	Type *TypeName `@@`
	Out  bool      `(@("out" | "output"))?`
}
