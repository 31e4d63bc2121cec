package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureModel mirrors the reference scenario: a namespace, two domains, a
// function, three tables (one with a foreign key), a trigger crossing
// namespaces and a check constraint.
func fixtureModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel()

	varcharType := TypeRef{Name: Identifier{Name: "varchar"}, Args: []int{50}, Builtin: true}

	for _, obj := range []Object{
		&Namespace{Name: Identifier{Name: "schema1"}},
		&Domain{Name: Identifier{Name: "domain1"}, Base: varcharType, NotNull: true},
		&Domain{Name: ParseIdentifier("schema1.domain2"), Base: varcharType},
		&Function{
			Name:    Identifier{Name: "func3"},
			Params:  []Param{{Name: "arg1", Type: domainType("domain1")}},
			Returns: ReturnDescriptor{Scalar: &TypeRef{Name: Identifier{Name: "int"}, Builtin: true}},
		},
		&Table{
			Name: Identifier{Name: "tab1"},
			Columns: []Column{
				{Name: "id", Type: intType(), PrimaryKey: true},
				{Name: "name", Type: domainType("domain1")},
			},
		},
		&Table{
			Name: ParseIdentifier("schema1.tab2"),
			Columns: []Column{
				{Name: "id", Type: intType(), PrimaryKey: true},
				{Name: "name", Type: domainType("domain2")},
			},
		},
		&Table{
			Name: ParseIdentifier("schema1.tab3"),
			Columns: []Column{
				{Name: "id", Type: intType(), PrimaryKey: true},
				{Name: "tab2_id", Type: intType()},
			},
			ForeignKeys: []ForeignKey{{Columns: []string{"tab2_id"}, RefTable: Identifier{Name: "tab2"}, RefColumns: []string{"id"}}},
		},
		&Trigger{
			Name:       Identifier{Name: "trig1"},
			Table:      Identifier{Name: "tab1"},
			Events:     []TriggerEvent{EventInsert, EventUpdate},
			References: []Identifier{ParseIdentifier("schema1.tab2")},
		},
		&Constraint{
			Name:       Identifier{Name: "constr1"},
			Table:      Identifier{Name: "tab1"},
			Kind:       ConstraintCheck,
			Expression: "id > 0",
		},
	} {
		require.NoError(t, m.Add(obj))
	}
	return m
}

func orderIndex(t *testing.T, order []Object, name string) int {
	t.Helper()
	want := ParseIdentifier(name)
	for i, obj := range order {
		if obj.ObjectName().Equal(want) {
			return i
		}
	}
	t.Fatalf("object %q not found in order", name)
	return -1
}

func TestOrderTopologicalValidity(t *testing.T) {
	m := fixtureModel(t)
	g := BuildGraph(m)
	plan, err := ComputeOrder(g)
	require.NoError(t, err)
	require.Len(t, plan.CreateOrder, m.Len())

	placed := make(map[string]int)
	for i, obj := range plan.CreateOrder {
		placed[obj.ObjectName().Key()] = i
	}
	for _, obj := range plan.CreateOrder {
		for _, dep := range g.DependenciesOf(obj.ObjectName()) {
			assert.Less(t, placed[dep.ObjectName().Key()], placed[obj.ObjectName().Key()],
				"%s must be created after %s", obj.ObjectName(), dep.ObjectName())
		}
	}
}

func TestOrderDropIsExactReverseOfCreate(t *testing.T) {
	plan, err := fixtureModel(t).Plan()
	require.NoError(t, err)
	require.Len(t, plan.DropOrder, len(plan.CreateOrder))
	for i, obj := range plan.CreateOrder {
		assert.Equal(t, obj, plan.DropOrder[len(plan.DropOrder)-1-i])
	}
}

func TestOrderIsDeterministic(t *testing.T) {
	m := fixtureModel(t)
	first, err := ComputeOrder(BuildGraph(m))
	require.NoError(t, err)
	second, err := ComputeOrder(BuildGraph(m))
	require.NoError(t, err)
	assert.Equal(t, first.CreateOrder, second.CreateOrder)
}

func TestOrderSelfReferenceIsNeverACycle(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Add(&Function{
		Name:       Identifier{Name: "factorial"},
		Params:     []Param{{Name: "n", Type: intType()}},
		Returns:    ReturnDescriptor{Scalar: &TypeRef{Name: Identifier{Name: "int"}, Builtin: true}},
		References: []Identifier{{Name: "factorial"}},
	}))
	tab := simpleTable("tab2")
	tab.Columns = append(tab.Columns, Column{
		Name:       "parent_id",
		Type:       intType(),
		References: &ColumnRef{Table: Identifier{Name: "tab2"}, Column: "id"},
	})
	require.NoError(t, m.Add(tab))

	plan, err := m.Plan()
	require.NoError(t, err)
	assert.Len(t, plan.CreateOrder, 2)
	assert.Empty(t, plan.Cycles)
}

func TestOrderFailsOnMutualDependency(t *testing.T) {
	m := NewModel()
	a := simpleTable("taba")
	a.ForeignKeys = []ForeignKey{{Columns: []string{"id"}, RefTable: Identifier{Name: "tabb"}}}
	b := simpleTable("tabb")
	b.ForeignKeys = []ForeignKey{{Columns: []string{"id"}, RefTable: Identifier{Name: "taba"}}}
	require.NoError(t, m.Add(a))
	require.NoError(t, m.Add(b))

	plan, err := m.Plan()
	var ordErr *OrderingError
	require.True(t, errors.As(err, &ordErr))
	require.Len(t, ordErr.Cycles, 1)
	assert.Equal(t, Cycle{Identifier{Name: "taba"}, Identifier{Name: "tabb"}}, ordErr.Cycles[0])

	// The failure is explicit: no partial order is passed off as complete.
	assert.False(t, plan.Complete())
	assert.Empty(t, plan.CreateOrder)
}

func TestOrderUnresolvedBlocksOnlyTheDependentSubset(t *testing.T) {
	m := fixtureModel(t)
	require.NoError(t, m.Add(&Index{
		Name:    Identifier{Name: "index9"},
		Table:   Identifier{Name: "ghost"},
		Columns: []string{"id"},
	}))

	plan, err := m.Plan()
	var ordErr *OrderingError
	require.True(t, errors.As(err, &ordErr))
	require.Len(t, ordErr.Unresolved, 1)
	assert.Equal(t, Identifier{Name: "index9"}, ordErr.Unresolved[0].From)
	assert.Equal(t, Identifier{Name: "ghost"}, ordErr.Unresolved[0].To)
	assert.Empty(t, ordErr.Cycles)

	// Everything except the blocked index still orders.
	assert.Len(t, plan.CreateOrder, m.Len()-1)
	for _, obj := range plan.CreateOrder {
		assert.NotEqual(t, "index9", obj.ObjectName().Name)
	}
}

func TestOrderFixtureScenario(t *testing.T) {
	plan, err := fixtureModel(t).Plan()
	require.NoError(t, err)

	order := plan.CreateOrder
	schema1 := orderIndex(t, order, "schema1")
	domain1 := orderIndex(t, order, "domain1")
	domain2 := orderIndex(t, order, "schema1.domain2")
	func3 := orderIndex(t, order, "func3")
	tab1 := orderIndex(t, order, "tab1")
	tab2 := orderIndex(t, order, "schema1.tab2")
	tab3 := orderIndex(t, order, "schema1.tab3")
	trig1 := orderIndex(t, order, "trig1")
	constr1 := orderIndex(t, order, "constr1")

	assert.Less(t, schema1, domain2)
	assert.Less(t, domain1, func3)
	assert.Less(t, domain1, tab1)
	assert.Less(t, domain2, tab2)
	assert.Less(t, tab2, tab3)
	assert.Less(t, tab2, trig1)
	assert.Less(t, tab1, trig1)
	assert.Less(t, tab1, constr1)
}

func TestOrderKindPriorityBreaksTies(t *testing.T) {
	m := NewModel()
	// Insertion order deliberately scrambled; none of these depend on each
	// other, so kind priority alone decides.
	require.NoError(t, m.Add(simpleTable("tab1")))
	require.NoError(t, m.Add(&Domain{Name: Identifier{Name: "domain1"}, Base: intType()}))
	require.NoError(t, m.Add(&Namespace{Name: Identifier{Name: "schema1"}}))

	plan, err := m.Plan()
	require.NoError(t, err)
	assert.Equal(t, KindNamespace, plan.CreateOrder[0].ObjectKind())
	assert.Equal(t, KindDomain, plan.CreateOrder[1].ObjectKind())
	assert.Equal(t, KindTable, plan.CreateOrder[2].ObjectKind())
}
