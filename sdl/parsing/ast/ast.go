// Package ast defines the abstract syntax tree for the DDL declaration
// language consumed by the model builder.
package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is the parse tree of a whole DDL script. Statements are separated
// by semicolons; bare "go" batch separators are accepted and skipped.
type Script struct {
	Pos        lexer.Position
	Statements []*Statement `( @@ | "go" )*`
}

// Statement is a union of all supported statement forms.
type Statement struct {
	Pos lexer.Position

	CreateSchema    *CreateSchema    `( @@`
	CreateTableType *CreateTableType `| @@`
	CreateDomain    *CreateDomain    `| @@`
	CreateFunction  *CreateFunction  `| @@`
	CreateProcedure *CreateProcedure `| @@`
	CreateTable     *CreateTable     `| @@`
	CreateIndex     *CreateIndex     `| @@`
	CreateTrigger   *CreateTrigger   `| @@`
	AlterTable      *AlterTable      `| @@`
	Drop            *DropStatement   `| @@ ) ";"`
}

// CreateSchema declares a namespace.
type CreateSchema struct {
	Pos  lexer.Position
	Name string `"create" "schema" @Ident`
}

// CreateDomain declares a scalar type alias. Both the `create type X from`
// and the `create domain X as` spellings are accepted.
type CreateDomain struct {
	Pos     lexer.Position
	Name    *QualName `"create" ("domain" | "type") @@`
	Base    *TypeName `("from" | "as") @@`
	NotNull bool      `(@"not" "null")?`
}

// CreateTableType declares a table-valued type.
type CreateTableType struct {
	Pos     lexer.Position
	Name    *QualName    `"create" "type" @@ "as" "table"`
	Columns []*ColumnDef `"(" @@ ("," @@)* ")"`
}

// CreateFunction declares a scalar or table-valued function. The optional
// trailing references clause declares the identifiers the body uses; the
// parser never extracts dependencies from body text.
type CreateFunction struct {
	Pos          lexer.Position
	Name         *QualName    `"create" "function" @@`
	Params       []*ParamDef  `"(" (@@ ("," @@)*)? ")"`
	ReturnsTable []*ColumnDef `"returns" ( "table" "(" @@ ("," @@)* ")"`
	ReturnType   *TypeName    `| @@ )`
	References   []*QualName  `("references" "(" @@ ("," @@)* ")")?`
}

// CreateProcedure declares a stored procedure.
type CreateProcedure struct {
	Pos        lexer.Position
	Name       *QualName   `"create" ("procedure" | "proc") @@`
	Params     []*ParamDef `"(" (@@ ("," @@)*)? ")"`
	References []*QualName `("references" "(" @@ ("," @@)* ")")?`
}

// CreateTable declares a base table with columns and optional table-level
// foreign keys.
type CreateTable struct {
	Pos   lexer.Position
	Name  *QualName    `"create" "table" @@`
	Items []*TableItem `"(" @@ ("," @@)* ")"`
}

// TableItem is one comma-separated item of a create table body.
type TableItem struct {
	Pos        lexer.Position
	ForeignKey *ForeignKeyDef `  @@`
	Column     *ColumnDef     `| @@`
}

// CreateIndex declares an index over a table.
type CreateIndex struct {
	Pos          lexer.Position
	Unique       bool      `"create" @"unique"?`
	Clustered    bool      `@"clustered"?`
	NonClustered bool      `@"nonclustered"? "index"`
	Name         *QualName `@@`
	Table        *QualName `"on" @@`
	Columns      []string  `"(" @Ident ("," @Ident)* ")"`
}

// CreateTrigger declares a DML trigger on a table. Tables the trigger body
// touches are declared through the references clause.
type CreateTrigger struct {
	Pos        lexer.Position
	Name       *QualName   `"create" "trigger" @@`
	Table      *QualName   `"on" @@`
	Events     []string    `("after" | "for") @("insert" | "update" | "delete") ("," @("insert" | "update" | "delete"))*`
	References []*QualName `("references" "(" @@ ("," @@)* ")")?`
}

// AlterTable adds or drops a standalone constraint.
type AlterTable struct {
	Pos            lexer.Position
	Table          *QualName      `"alter" "table" @@`
	AddConstraint  *ConstraintDef `( "add" "constraint" @@`
	DropConstraint string         `| "drop" "constraint" @Ident )`
}

// ConstraintDef is the body of an `add constraint` clause.
type ConstraintDef struct {
	Pos        lexer.Position
	Name       string         `@Ident`
	Check      *CheckClause   `( @@`
	Unique     *UniqueClause  `| @@`
	ForeignKey *ForeignKeyDef `| @@ )`
}

// CheckClause is a check constraint with an opaque expression.
type CheckClause struct {
	Pos  lexer.Position
	Expr *CheckExpr `"check" "(" @@ ")"`
}

// UniqueClause is a unique constraint over a column list.
type UniqueClause struct {
	Pos     lexer.Position
	Columns []string `"unique" "(" @Ident ("," @Ident)* ")"`
}

// ForeignKeyDef is a table-level foreign key, usable inline in a create
// table body or in an add constraint clause.
type ForeignKeyDef struct {
	Pos        lexer.Position
	Columns    []string  `"foreign" "key" "(" @Ident ("," @Ident)* ")"`
	RefTable   *QualName `"references" @@`
	RefColumns []string  `("(" @Ident ("," @Ident)* ")")?`
}

// DropStatement drops an object. It is honored when the object exists and
// otherwise produces at most a warning, supporting the drop/recreate idiom.
type DropStatement struct {
	Pos      lexer.Position
	Kind     string    `"drop" @("schema" | "domain" | "type" | "table" | "function" | "procedure" | "proc" | "index" | "trigger")`
	IfExists bool      `(@"if" "exists")?`
	Name     *QualName `@@`
	On       *QualName `("on" @@)?`
}
