package catalog

// Object is the common capability shared by all schema object variants. Each
// variant carries its identifier plus kind-specific metadata, and derives its
// declared dependency set from that metadata. Objects reference each other by
// identifier only; resolution happens lazily in the graph, so objects can be
// added in any order, forward references included.
type Object interface {
	ObjectName() Identifier
	ObjectKind() Kind
	DependsOn() []Identifier
}

// TypeRef references a scalar type or a user-defined domain/table type.
// Builtin marks dialect-native types that never participate in dependency
// resolution; which names are builtin is decided by the ingestion layer.
type TypeRef struct {
	Name    Identifier
	Args    []int
	Builtin bool
}

// ColumnRef is an inline single-column foreign key reference.
type ColumnRef struct {
	Table  Identifier
	Column string
}

// Column is one column of a table or table type.
type Column struct {
	Name       string
	Type       TypeRef
	PrimaryKey bool
	NotNull    bool
	References *ColumnRef
}

// ParamDirection is the in/out direction of a routine parameter.
type ParamDirection int

const (
	DirectionIn ParamDirection = iota
	DirectionOut
)

// Param is one parameter of a function or procedure.
type Param struct {
	Name      string
	Type      TypeRef
	Direction ParamDirection
}

// ForeignKey is a table-level foreign key.
type ForeignKey struct {
	Columns    []string
	RefTable   Identifier
	RefColumns []string
}

// TriggerEvent is a DML event that fires a trigger.
type TriggerEvent string

const (
	EventInsert TriggerEvent = "insert"
	EventUpdate TriggerEvent = "update"
	EventDelete TriggerEvent = "delete"
)

// ConstraintKind distinguishes the supported standalone constraint forms.
type ConstraintKind int

const (
	ConstraintCheck ConstraintKind = iota
	ConstraintUnique
	ConstraintForeignKey
)

// depSet accumulates dependency identifiers, deduplicating by normalized key
// while preserving first-seen order.
type depSet struct {
	seen map[string]bool
	ids  []Identifier
}

func (s *depSet) add(id Identifier) {
	if id.Name == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	key := id.Key()
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.ids = append(s.ids, id)
}

func (s *depSet) addType(ref TypeRef) {
	if !ref.Builtin {
		s.add(ref.Name)
	}
}

// addOwner records the owning namespace of a qualified identifier. Objects in
// the default namespace have no namespace dependency.
func (s *depSet) addOwner(id Identifier) {
	if id.Qualified() {
		s.add(Identifier{Name: id.Schema})
	}
}

// Namespace is a schema container partitioning identifiers. It has no
// dependencies of its own.
type Namespace struct {
	Name Identifier
}

func (n *Namespace) ObjectName() Identifier  { return n.Name }
func (n *Namespace) ObjectKind() Kind        { return KindNamespace }
func (n *Namespace) DependsOn() []Identifier { return nil }

// Domain is a named scalar type alias with an optional not-null constraint.
type Domain struct {
	Name    Identifier
	Base    TypeRef
	NotNull bool
}

func (d *Domain) ObjectName() Identifier { return d.Name }
func (d *Domain) ObjectKind() Kind       { return KindDomain }

func (d *Domain) DependsOn() []Identifier {
	var deps depSet
	deps.addOwner(d.Name)
	deps.addType(d.Base)
	return deps.ids
}

// TableType is a named structural row-set type usable as a parameter or
// return shape.
type TableType struct {
	Name    Identifier
	Columns []Column
}

func (t *TableType) ObjectName() Identifier { return t.Name }
func (t *TableType) ObjectKind() Kind       { return KindTableType }

func (t *TableType) DependsOn() []Identifier {
	var deps depSet
	deps.addOwner(t.Name)
	for _, col := range t.Columns {
		deps.addType(col.Type)
	}
	return deps.ids
}

// ReturnDescriptor is the return shape of a function: either a scalar type
// or a table shape. Exactly one of the fields is set.
type ReturnDescriptor struct {
	Scalar *TypeRef
	Table  []Column
}

// Function is a scalar or table-valued function. References carries the
// identifiers the body uses, declared explicitly by the ingestion boundary
// rather than extracted from body text.
type Function struct {
	Name       Identifier
	Params     []Param
	Returns    ReturnDescriptor
	References []Identifier
}

func (f *Function) ObjectName() Identifier { return f.Name }
func (f *Function) ObjectKind() Kind       { return KindFunction }

func (f *Function) DependsOn() []Identifier {
	var deps depSet
	deps.addOwner(f.Name)
	for _, param := range f.Params {
		deps.addType(param.Type)
	}
	if f.Returns.Scalar != nil {
		deps.addType(*f.Returns.Scalar)
	}
	for _, col := range f.Returns.Table {
		deps.addType(col.Type)
	}
	for _, ref := range f.References {
		deps.add(ref)
	}
	return deps.ids
}

// Procedure is a stored procedure. Parameters may be table-typed and may
// have an out direction.
type Procedure struct {
	Name       Identifier
	Params     []Param
	References []Identifier
}

func (p *Procedure) ObjectName() Identifier { return p.Name }
func (p *Procedure) ObjectKind() Kind       { return KindProcedure }

func (p *Procedure) DependsOn() []Identifier {
	var deps depSet
	deps.addOwner(p.Name)
	for _, param := range p.Params {
		deps.addType(param.Type)
	}
	for _, ref := range p.References {
		deps.add(ref)
	}
	return deps.ids
}

// Table is a base table with an ordered column list and optional foreign
// keys. Self-referencing foreign keys (parent_id style) are legal and do not
// produce a dependency edge.
type Table struct {
	Name        Identifier
	Columns     []Column
	ForeignKeys []ForeignKey
}

func (t *Table) ObjectName() Identifier { return t.Name }
func (t *Table) ObjectKind() Kind       { return KindTable }

func (t *Table) DependsOn() []Identifier {
	var deps depSet
	deps.addOwner(t.Name)
	for _, col := range t.Columns {
		deps.addType(col.Type)
		if col.References != nil {
			deps.add(col.References.Table)
		}
	}
	for _, fk := range t.ForeignKeys {
		deps.add(fk.RefTable)
	}
	return deps.ids
}

// Index is a secondary index over a table.
type Index struct {
	Name      Identifier
	Table     Identifier
	Columns   []string
	Unique    bool
	Clustered bool
}

func (i *Index) ObjectName() Identifier { return i.Name }
func (i *Index) ObjectKind() Kind       { return KindIndex }

func (i *Index) DependsOn() []Identifier {
	var deps depSet
	deps.addOwner(i.Name)
	deps.add(i.Table)
	return deps.ids
}

// Trigger fires on DML events against its target table. References carries
// the tables the body touches, declared explicitly.
type Trigger struct {
	Name       Identifier
	Table      Identifier
	Events     []TriggerEvent
	References []Identifier
}

func (t *Trigger) ObjectName() Identifier { return t.Name }
func (t *Trigger) ObjectKind() Kind       { return KindTrigger }

func (t *Trigger) DependsOn() []Identifier {
	var deps depSet
	deps.addOwner(t.Name)
	deps.add(t.Table)
	for _, ref := range t.References {
		deps.add(ref)
	}
	return deps.ids
}

// Constraint is a standalone check, unique or foreign key constraint added
// to an existing table.
type Constraint struct {
	Name       Identifier
	Table      Identifier
	Kind       ConstraintKind
	Expression string
	Columns    []string
	RefTable   Identifier
	RefColumns []string
}

func (c *Constraint) ObjectName() Identifier { return c.Name }
func (c *Constraint) ObjectKind() Kind       { return KindConstraint }

func (c *Constraint) DependsOn() []Identifier {
	var deps depSet
	deps.addOwner(c.Name)
	deps.add(c.Table)
	if c.Kind == ConstraintForeignKey {
		deps.add(c.RefTable)
	}
	return deps.ids
}
