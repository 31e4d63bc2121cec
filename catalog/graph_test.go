package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func domainType(name string) TypeRef {
	return TypeRef{Name: ParseIdentifier(name)}
}

func TestGraphEdgesAndAdjacency(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Add(&Domain{Name: Identifier{Name: "domain1"}, Base: intType()}))
	require.NoError(t, m.Add(&Table{
		Name:    Identifier{Name: "tab1"},
		Columns: []Column{{Name: "name", Type: domainType("domain1")}},
	}))

	g := BuildGraph(m)
	deps := g.DependenciesOf(Identifier{Name: "tab1"})
	require.Len(t, deps, 1)
	assert.Equal(t, "domain1", deps[0].ObjectName().Name)

	dependents := g.DependentsOf(Identifier{Name: "domain1"})
	require.Len(t, dependents, 1)
	assert.Equal(t, "tab1", dependents[0].ObjectName().Name)
	assert.Empty(t, g.Unresolved())
}

func TestGraphUnqualifiedReferenceResolvesInOwnNamespace(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Add(&Namespace{Name: Identifier{Name: "schema1"}}))
	require.NoError(t, m.Add(&Domain{Name: ParseIdentifier("schema1.domain2"), Base: intType()}))
	require.NoError(t, m.Add(&Table{
		Name:    ParseIdentifier("schema1.tab2"),
		Columns: []Column{{Name: "name", Type: domainType("domain2")}},
	}))

	g := BuildGraph(m)
	assert.Empty(t, g.Unresolved())

	deps := g.DependenciesOf(ParseIdentifier("schema1.tab2"))
	require.Len(t, deps, 2)
	assert.Equal(t, KindNamespace, deps[0].ObjectKind())
	assert.Equal(t, "domain2", deps[1].ObjectName().Name)
}

func TestGraphQualifiedReferenceResolvesGlobally(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Add(&Namespace{Name: Identifier{Name: "schema1"}}))
	require.NoError(t, m.Add(simpleTable("schema1.tab2")))
	require.NoError(t, m.Add(&Trigger{
		Name:       Identifier{Name: "trig1"},
		Table:      Identifier{Name: "tab1"},
		Events:     []TriggerEvent{EventInsert},
		References: []Identifier{ParseIdentifier("schema1.tab2")},
	}))
	require.NoError(t, m.Add(simpleTable("tab1")))

	g := BuildGraph(m)
	assert.Empty(t, g.Unresolved())

	dependents := g.DependentsOf(ParseIdentifier("schema1.tab2"))
	require.Len(t, dependents, 1)
	assert.Equal(t, "trig1", dependents[0].ObjectName().Name)
}

func TestGraphRecordsUnresolvedReferences(t *testing.T) {
	m := NewModel()
	tab := simpleTable("tab1")
	tab.ForeignKeys = []ForeignKey{{Columns: []string{"id"}, RefTable: Identifier{Name: "missing"}}}
	require.NoError(t, m.Add(tab))

	g := BuildGraph(m)
	unresolved := g.Unresolved()
	require.Len(t, unresolved, 1)
	assert.Equal(t, Identifier{Name: "tab1"}, unresolved[0].From)
	assert.Equal(t, Identifier{Name: "missing"}, unresolved[0].To)
}

func TestGraphSelfReferenceProducesNoEdge(t *testing.T) {
	m := NewModel()
	tab := simpleTable("tab2")
	tab.Columns = append(tab.Columns, Column{
		Name:       "parent_id",
		Type:       intType(),
		References: &ColumnRef{Table: Identifier{Name: "tab2"}, Column: "id"},
	})
	require.NoError(t, m.Add(tab))

	g := BuildGraph(m)
	assert.Empty(t, g.DependenciesOf(Identifier{Name: "tab2"}))
	assert.Empty(t, g.Unresolved())
	assert.Empty(t, g.Cycles())
}

func TestGraphCyclesReportsMutualDependency(t *testing.T) {
	m := NewModel()
	a := simpleTable("taba")
	a.ForeignKeys = []ForeignKey{{Columns: []string{"id"}, RefTable: Identifier{Name: "tabb"}}}
	b := simpleTable("tabb")
	b.ForeignKeys = []ForeignKey{{Columns: []string{"id"}, RefTable: Identifier{Name: "taba"}}}
	require.NoError(t, m.Add(a))
	require.NoError(t, m.Add(b))
	require.NoError(t, m.Add(simpleTable("standalone")))

	g := BuildGraph(m)
	cycles := g.Cycles()
	require.Len(t, cycles, 1)
	require.Len(t, cycles[0], 2)
	assert.Equal(t, "taba", cycles[0][0].Name)
	assert.Equal(t, "tabb", cycles[0][1].Name)
}

func TestGraphDuplicateDeclaredDependenciesCollapse(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Add(&Domain{Name: Identifier{Name: "domain1"}, Base: intType()}))
	require.NoError(t, m.Add(&Table{
		Name: Identifier{Name: "tab1"},
		Columns: []Column{
			{Name: "a", Type: domainType("domain1")},
			{Name: "b", Type: domainType("domain1")},
		},
	}))

	g := BuildGraph(m)
	assert.Len(t, g.DependenciesOf(Identifier{Name: "tab1"}), 1)
}
