package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemakit/ddlplan/catalog"
)

func intType() catalog.TypeRef {
	return catalog.TypeRef{Name: catalog.Identifier{Name: "int"}, Builtin: true}
}

func TestCreateStatements(t *testing.T) {
	tests := []struct {
		name string
		obj  catalog.Object
		want string
	}{
		{
			name: "schema",
			obj:  &catalog.Namespace{Name: catalog.Identifier{Name: "schema1"}},
			want: "create schema schema1;",
		},
		{
			name: "domain",
			obj: &catalog.Domain{
				Name:    catalog.Identifier{Name: "domain1"},
				Base:    catalog.TypeRef{Name: catalog.Identifier{Name: "varchar"}, Args: []int{50}, Builtin: true},
				NotNull: true,
			},
			want: "create type domain1 from varchar(50) not null;",
		},
		{
			name: "table type",
			obj: &catalog.TableType{
				Name:    catalog.Identifier{Schema: "schema1", Name: "ttype1"},
				Columns: []catalog.Column{{Name: "id", Type: intType()}},
			},
			want: "create type schema1.ttype1 as table (id int);",
		},
		{
			name: "scalar function",
			obj: &catalog.Function{
				Name: catalog.Identifier{Name: "func3"},
				Params: []catalog.Param{
					{Name: "arg1", Type: catalog.TypeRef{Name: catalog.Identifier{Name: "domain1"}}},
				},
				Returns:    catalog.ReturnDescriptor{Scalar: &catalog.TypeRef{Name: catalog.Identifier{Name: "int"}, Builtin: true}},
				References: []catalog.Identifier{{Name: "domain1"}},
			},
			want: "create function func3(@arg1 domain1) returns int references (domain1);",
		},
		{
			name: "procedure with out param",
			obj: &catalog.Procedure{
				Name: catalog.Identifier{Name: "proc1"},
				Params: []catalog.Param{
					{Name: "a", Type: intType()},
					{Name: "rows", Type: catalog.TypeRef{Name: catalog.Identifier{Name: "ttype1"}}, Direction: catalog.DirectionOut},
				},
			},
			want: "create procedure proc1(@a int, @rows ttype1 out);",
		},
		{
			name: "table with foreign key",
			obj: &catalog.Table{
				Name: catalog.Identifier{Schema: "schema1", Name: "tab3"},
				Columns: []catalog.Column{
					{Name: "id", Type: intType(), PrimaryKey: true},
					{Name: "tab2_id", Type: intType(), NotNull: true},
				},
				ForeignKeys: []catalog.ForeignKey{
					{Columns: []string{"tab2_id"}, RefTable: catalog.Identifier{Name: "tab2"}, RefColumns: []string{"id"}},
				},
			},
			want: "create table schema1.tab3 (id int primary key, tab2_id int not null, foreign key (tab2_id) references tab2 (id));",
		},
		{
			name: "unique clustered index",
			obj: &catalog.Index{
				Name:      catalog.Identifier{Name: "index1"},
				Table:     catalog.Identifier{Name: "tab1"},
				Columns:   []string{"name", "id"},
				Unique:    true,
				Clustered: true,
			},
			want: "create unique clustered index index1 on tab1 (name, id);",
		},
		{
			name: "trigger",
			obj: &catalog.Trigger{
				Name:       catalog.Identifier{Name: "trig1"},
				Table:      catalog.Identifier{Name: "tab1"},
				Events:     []catalog.TriggerEvent{catalog.EventInsert, catalog.EventUpdate},
				References: []catalog.Identifier{{Schema: "schema1", Name: "tab2"}},
			},
			want: "create trigger trig1 on tab1 after insert, update references (schema1.tab2);",
		},
		{
			name: "check constraint",
			obj: &catalog.Constraint{
				Name:       catalog.Identifier{Name: "constr1"},
				Table:      catalog.Identifier{Name: "tab1"},
				Kind:       catalog.ConstraintCheck,
				Expression: "id > 0",
			},
			want: "alter table tab1 add constraint constr1 check (id > 0);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreateStatement(tt.obj))
		})
	}
}

func TestDropStatements(t *testing.T) {
	index := &catalog.Index{Name: catalog.Identifier{Name: "index1"}, Table: catalog.Identifier{Name: "tab1"}}
	assert.Equal(t, "drop index index1 on tab1;", DropStatement(index))

	constraint := &catalog.Constraint{
		Name:  catalog.Identifier{Schema: "schema1", Name: "constr1"},
		Table: catalog.Identifier{Schema: "schema1", Name: "tab2"},
		Kind:  catalog.ConstraintCheck,
	}
	assert.Equal(t, "alter table schema1.tab2 drop constraint constr1;", DropStatement(constraint))

	table := &catalog.Table{Name: catalog.Identifier{Schema: "schema1", Name: "tab2"}}
	assert.Equal(t, "drop table schema1.tab2;", DropStatement(table))
}

func TestScriptsJoinStatements(t *testing.T) {
	objects := []catalog.Object{
		&catalog.Namespace{Name: catalog.Identifier{Name: "schema1"}},
		&catalog.Table{
			Name:    catalog.Identifier{Schema: "schema1", Name: "tab2"},
			Columns: []catalog.Column{{Name: "id", Type: intType(), PrimaryKey: true}},
		},
	}
	create := CreateScript(objects)
	require.Equal(t, "create schema schema1;\ncreate table schema1.tab2 (id int primary key);\n", create)

	drop := DropScript([]catalog.Object{objects[1], objects[0]})
	require.Equal(t, "drop table schema1.tab2;\ndrop schema schema1;\n", drop)
}
