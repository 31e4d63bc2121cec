package sdl

import (
	"errors"

	"github.com/schemakit/ddlplan/catalog"
	"github.com/schemakit/ddlplan/sdl/diagnostics"
	"github.com/schemakit/ddlplan/sdl/parsing/ast"
)

// Build walks the script's statements in declaration order and assembles the
// catalog model. Structural problems (duplicate identifiers, drops of
// missing objects) become diagnostics instead of aborting the walk, so a
// single pass reports everything at once.
func Build(script *ast.Script) (*catalog.Model, diagnostics.Diagnostics) {
	b := &builder{
		model: catalog.NewModel(),
		diags: diagnostics.NewDiagnostics(),
	}
	for _, stmt := range script.Statements {
		b.statement(stmt)
	}
	return b.model, b.diags
}

type builder struct {
	model *catalog.Model
	diags diagnostics.Diagnostics
}

func (b *builder) statement(stmt *ast.Statement) {
	switch {
	case stmt.CreateSchema != nil:
		s := stmt.CreateSchema
		b.add(&catalog.Namespace{Name: catalog.Identifier{Name: s.Name}}, spanAt(s.Pos.Offset, s.Name))
	case stmt.CreateDomain != nil:
		d := stmt.CreateDomain
		b.add(&catalog.Domain{
			Name:    identifier(d.Name),
			Base:    typeRef(d.Base),
			NotNull: d.NotNull,
		}, nameSpan(d.Name))
	case stmt.CreateTableType != nil:
		t := stmt.CreateTableType
		b.add(&catalog.TableType{
			Name:    identifier(t.Name),
			Columns: columns(t.Columns),
		}, nameSpan(t.Name))
	case stmt.CreateFunction != nil:
		b.function(stmt.CreateFunction)
	case stmt.CreateProcedure != nil:
		p := stmt.CreateProcedure
		b.add(&catalog.Procedure{
			Name:       identifier(p.Name),
			Params:     params(p.Params),
			References: identifiers(p.References),
		}, nameSpan(p.Name))
	case stmt.CreateTable != nil:
		b.table(stmt.CreateTable)
	case stmt.CreateIndex != nil:
		i := stmt.CreateIndex
		b.add(&catalog.Index{
			Name:      identifier(i.Name),
			Table:     identifier(i.Table),
			Columns:   i.Columns,
			Unique:    i.Unique,
			Clustered: i.Clustered,
		}, nameSpan(i.Name))
	case stmt.CreateTrigger != nil:
		t := stmt.CreateTrigger
		b.add(&catalog.Trigger{
			Name:       identifier(t.Name),
			Table:      identifier(t.Table),
			Events:     events(t.Events),
			References: identifiers(t.References),
		}, nameSpan(t.Name))
	case stmt.AlterTable != nil:
		b.alterTable(stmt.AlterTable)
	case stmt.Drop != nil:
		b.drop(stmt.Drop)
	}
}

func (b *builder) function(f *ast.CreateFunction) {
	fn := &catalog.Function{
		Name:       identifier(f.Name),
		Params:     params(f.Params),
		References: identifiers(f.References),
	}
	if len(f.ReturnsTable) > 0 {
		fn.Returns = catalog.ReturnDescriptor{Table: columns(f.ReturnsTable)}
	} else {
		ref := typeRef(f.ReturnType)
		fn.Returns = catalog.ReturnDescriptor{Scalar: &ref}
	}
	b.add(fn, nameSpan(f.Name))
}

func (b *builder) table(t *ast.CreateTable) {
	table := &catalog.Table{Name: identifier(t.Name)}
	for _, item := range t.Items {
		switch {
		case item.Column != nil:
			table.Columns = append(table.Columns, column(item.Column))
		case item.ForeignKey != nil:
			table.ForeignKeys = append(table.ForeignKeys, foreignKey(item.ForeignKey))
		}
	}
	b.add(table, nameSpan(t.Name))
}

func (b *builder) alterTable(a *ast.AlterTable) {
	tableID := identifier(a.Table)
	if a.AddConstraint != nil {
		b.addConstraint(a, tableID)
		return
	}
	// drop constraint
	id := catalog.Identifier{Schema: tableID.Schema, Name: a.DropConstraint}
	if err := b.model.Remove(id, catalog.KindConstraint); err != nil {
		b.diags.PushWarning(diagnostics.NewDropMissingObjectWarning("constraint", id.String(), spanAt(a.Pos.Offset, a.DropConstraint)))
	}
}

func (b *builder) addConstraint(a *ast.AlterTable, tableID catalog.Identifier) {
	def := a.AddConstraint
	// Constraints live in their table's schema.
	constraint := &catalog.Constraint{
		Name:  catalog.Identifier{Schema: tableID.Schema, Name: def.Name},
		Table: tableID,
	}
	switch {
	case def.Check != nil:
		constraint.Kind = catalog.ConstraintCheck
		constraint.Expression = def.Check.Expr.String()
	case def.Unique != nil:
		constraint.Kind = catalog.ConstraintUnique
		constraint.Columns = def.Unique.Columns
	case def.ForeignKey != nil:
		fk := foreignKey(def.ForeignKey)
		constraint.Kind = catalog.ConstraintForeignKey
		constraint.Columns = fk.Columns
		constraint.RefTable = fk.RefTable
		constraint.RefColumns = fk.RefColumns
	}
	b.add(constraint, spanAt(def.Pos.Offset, def.Name))
}

// dropKinds maps a drop keyword to the object kinds it may target. The
// `type` keyword covers both domains and table types.
var dropKinds = map[string][]catalog.Kind{
	"schema":    {catalog.KindNamespace},
	"domain":    {catalog.KindDomain},
	"type":      {catalog.KindDomain, catalog.KindTableType},
	"table":     {catalog.KindTable},
	"function":  {catalog.KindFunction},
	"procedure": {catalog.KindProcedure},
	"proc":      {catalog.KindProcedure},
	"index":     {catalog.KindIndex},
	"trigger":   {catalog.KindTrigger},
}

func (b *builder) drop(d *ast.DropStatement) {
	id := identifier(d.Name)
	span := nameSpan(d.Name)

	obj, ok := b.model.Resolve(id)
	if !ok {
		if !d.IfExists {
			b.diags.PushWarning(diagnostics.NewDropMissingObjectWarning(d.Kind, id.String(), span))
		}
		return
	}

	kinds := dropKinds[d.Kind]
	matched := false
	for _, kind := range kinds {
		if obj.ObjectKind() == kind {
			matched = true
			break
		}
	}
	if !matched {
		b.diags.PushError(diagnostics.NewKindMismatchError(id.String(), d.Kind, obj.ObjectKind().String(), span))
		return
	}

	if obj.ObjectKind() == catalog.KindNamespace {
		if members := b.model.Dependents(id); len(members) > 0 {
			b.diags.PushWarning(diagnostics.NewCascadeWarning(id.String(), len(members), span))
		}
	}

	if err := b.model.Remove(id, obj.ObjectKind()); err != nil {
		b.diags.PushError(diagnostics.NewUnknownObjectError(d.Kind, id.String(), span))
	}
}

func (b *builder) add(obj catalog.Object, span diagnostics.Span) {
	if err := b.model.Add(obj); err != nil {
		var dup *catalog.DuplicateIdentifierError
		if errors.As(err, &dup) {
			b.diags.PushError(diagnostics.NewDuplicateObjectError(dup.Identifier.String(), dup.Existing.String(), span))
			return
		}
		b.diags.PushError(diagnostics.NewScriptError(err.Error(), span))
	}
}

func identifier(q *ast.QualName) catalog.Identifier {
	return catalog.Identifier{Schema: q.Schema(), Name: q.Name()}
}

func identifiers(names []*ast.QualName) []catalog.Identifier {
	if len(names) == 0 {
		return nil
	}
	result := make([]catalog.Identifier, len(names))
	for i, name := range names {
		result[i] = identifier(name)
	}
	return result
}

func typeRef(t *ast.TypeName) catalog.TypeRef {
	id := identifier(t.Name)
	return catalog.TypeRef{
		Name:    id,
		Args:    t.Args,
		Builtin: !id.Qualified() && IsBuiltinType(id.Name),
	}
}

func column(c *ast.ColumnDef) catalog.Column {
	col := catalog.Column{
		Name:       c.Name,
		Type:       typeRef(c.Type),
		PrimaryKey: c.PrimaryKey,
		NotNull:    c.NotNull,
	}
	if c.Ref != nil {
		col.References = &catalog.ColumnRef{
			Table:  identifier(c.Ref.Table),
			Column: c.Ref.Column,
		}
	}
	return col
}

func columns(defs []*ast.ColumnDef) []catalog.Column {
	result := make([]catalog.Column, len(defs))
	for i, def := range defs {
		result[i] = column(def)
	}
	return result
}

func params(defs []*ast.ParamDef) []catalog.Param {
	if len(defs) == 0 {
		return nil
	}
	result := make([]catalog.Param, len(defs))
	for i, def := range defs {
		direction := catalog.DirectionIn
		if def.Out {
			direction = catalog.DirectionOut
		}
		result[i] = catalog.Param{
			Name:      def.Name,
			Type:      typeRef(def.Type),
			Direction: direction,
		}
	}
	return result
}

func foreignKey(def *ast.ForeignKeyDef) catalog.ForeignKey {
	return catalog.ForeignKey{
		Columns:    def.Columns,
		RefTable:   identifier(def.RefTable),
		RefColumns: def.RefColumns,
	}
}

func events(names []string) []catalog.TriggerEvent {
	result := make([]catalog.TriggerEvent, len(names))
	for i, name := range names {
		result[i] = catalog.TriggerEvent(name)
	}
	return result
}

func nameSpan(q *ast.QualName) diagnostics.Span {
	return spanAt(q.Pos.Offset, q.String())
}

func spanAt(offset int, text string) diagnostics.Span {
	return diagnostics.NewSpan(offset, offset+len(text))
}
