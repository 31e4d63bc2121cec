// Package render turns ordered catalog objects back into DDL statement
// text. The output uses the same declaration language the parser accepts, so
// rendered scripts round-trip through the ingestion layer.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schemakit/ddlplan/catalog"
)

// CreateScript renders one create statement per object, in the given order.
func CreateScript(objects []catalog.Object) string {
	var sb strings.Builder
	for _, obj := range objects {
		sb.WriteString(CreateStatement(obj))
		sb.WriteString("\n")
	}
	return sb.String()
}

// DropScript renders one drop statement per object, in the given order.
// Callers pass a plan's DropOrder to get a script that tears objects down
// dependents-first.
func DropScript(objects []catalog.Object) string {
	var sb strings.Builder
	for _, obj := range objects {
		sb.WriteString(DropStatement(obj))
		sb.WriteString("\n")
	}
	return sb.String()
}

// CreateStatement renders the create statement for a single object.
func CreateStatement(obj catalog.Object) string {
	switch o := obj.(type) {
	case *catalog.Namespace:
		return fmt.Sprintf("create schema %s;", o.Name)
	case *catalog.Domain:
		stmt := fmt.Sprintf("create type %s from %s", o.Name, typeRef(o.Base))
		if o.NotNull {
			stmt += " not null"
		}
		return stmt + ";"
	case *catalog.TableType:
		return fmt.Sprintf("create type %s as table (%s);", o.Name, columnList(o.Columns))
	case *catalog.Function:
		return functionStatement(o)
	case *catalog.Procedure:
		stmt := fmt.Sprintf("create procedure %s(%s)", o.Name, paramList(o.Params))
		return stmt + referencesClause(o.References) + ";"
	case *catalog.Table:
		items := make([]string, 0, len(o.Columns)+len(o.ForeignKeys))
		for _, col := range o.Columns {
			items = append(items, columnDef(col))
		}
		for _, fk := range o.ForeignKeys {
			items = append(items, foreignKeyDef(fk))
		}
		return fmt.Sprintf("create table %s (%s);", o.Name, strings.Join(items, ", "))
	case *catalog.Index:
		var sb strings.Builder
		sb.WriteString("create ")
		if o.Unique {
			sb.WriteString("unique ")
		}
		if o.Clustered {
			sb.WriteString("clustered ")
		}
		fmt.Fprintf(&sb, "index %s on %s (%s);", o.Name, o.Table, strings.Join(o.Columns, ", "))
		return sb.String()
	case *catalog.Trigger:
		events := make([]string, len(o.Events))
		for i, event := range o.Events {
			events[i] = string(event)
		}
		stmt := fmt.Sprintf("create trigger %s on %s after %s", o.Name, o.Table, strings.Join(events, ", "))
		return stmt + referencesClause(o.References) + ";"
	case *catalog.Constraint:
		return constraintStatement(o)
	default:
		return ""
	}
}

// DropStatement renders the drop statement for a single object.
func DropStatement(obj catalog.Object) string {
	switch o := obj.(type) {
	case *catalog.Namespace:
		return fmt.Sprintf("drop schema %s;", o.Name)
	case *catalog.Domain:
		return fmt.Sprintf("drop type %s;", o.Name)
	case *catalog.TableType:
		return fmt.Sprintf("drop type %s;", o.Name)
	case *catalog.Function:
		return fmt.Sprintf("drop function %s;", o.Name)
	case *catalog.Procedure:
		return fmt.Sprintf("drop procedure %s;", o.Name)
	case *catalog.Table:
		return fmt.Sprintf("drop table %s;", o.Name)
	case *catalog.Index:
		return fmt.Sprintf("drop index %s on %s;", o.Name, o.Table)
	case *catalog.Trigger:
		return fmt.Sprintf("drop trigger %s;", o.Name)
	case *catalog.Constraint:
		return fmt.Sprintf("alter table %s drop constraint %s;", o.Table, o.Name.Name)
	default:
		return ""
	}
}

func functionStatement(fn *catalog.Function) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "create function %s(%s) returns ", fn.Name, paramList(fn.Params))
	if fn.Returns.Scalar != nil {
		sb.WriteString(typeRef(*fn.Returns.Scalar))
	} else {
		fmt.Fprintf(&sb, "table (%s)", columnList(fn.Returns.Table))
	}
	sb.WriteString(referencesClause(fn.References))
	sb.WriteString(";")
	return sb.String()
}

func constraintStatement(c *catalog.Constraint) string {
	var body string
	switch c.Kind {
	case catalog.ConstraintCheck:
		body = fmt.Sprintf("check (%s)", c.Expression)
	case catalog.ConstraintUnique:
		body = fmt.Sprintf("unique (%s)", strings.Join(c.Columns, ", "))
	case catalog.ConstraintForeignKey:
		body = fmt.Sprintf("foreign key (%s) references %s", strings.Join(c.Columns, ", "), c.RefTable)
		if len(c.RefColumns) > 0 {
			body += fmt.Sprintf(" (%s)", strings.Join(c.RefColumns, ", "))
		}
	}
	return fmt.Sprintf("alter table %s add constraint %s %s;", c.Table, c.Name.Name, body)
}

func typeRef(ref catalog.TypeRef) string {
	if len(ref.Args) == 0 {
		return ref.Name.String()
	}
	args := make([]string, len(ref.Args))
	for i, arg := range ref.Args {
		args[i] = strconv.Itoa(arg)
	}
	return fmt.Sprintf("%s(%s)", ref.Name, strings.Join(args, ", "))
}

func columnDef(col catalog.Column) string {
	var sb strings.Builder
	sb.WriteString(col.Name)
	sb.WriteString(" ")
	sb.WriteString(typeRef(col.Type))
	if col.PrimaryKey {
		sb.WriteString(" primary key")
	}
	if col.NotNull {
		sb.WriteString(" not null")
	}
	if col.References != nil {
		fmt.Fprintf(&sb, " references %s", col.References.Table)
		if col.References.Column != "" {
			fmt.Fprintf(&sb, " (%s)", col.References.Column)
		}
	}
	return sb.String()
}

func columnList(cols []catalog.Column) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = columnDef(col)
	}
	return strings.Join(parts, ", ")
}

func paramList(params []catalog.Param) string {
	parts := make([]string, len(params))
	for i, param := range params {
		part := fmt.Sprintf("@%s %s", param.Name, typeRef(param.Type))
		if param.Direction == catalog.DirectionOut {
			part += " out"
		}
		parts[i] = part
	}
	return strings.Join(parts, ", ")
}

func referencesClause(refs []catalog.Identifier) string {
	if len(refs) == 0 {
		return ""
	}
	parts := make([]string, len(refs))
	for i, ref := range refs {
		parts[i] = ref.String()
	}
	return fmt.Sprintf(" references (%s)", strings.Join(parts, ", "))
}

func foreignKeyDef(fk catalog.ForeignKey) string {
	body := fmt.Sprintf("foreign key (%s) references %s", strings.Join(fk.Columns, ", "), fk.RefTable)
	if len(fk.RefColumns) > 0 {
		body += fmt.Sprintf(" (%s)", strings.Join(fk.RefColumns, ", "))
	}
	return body
}
