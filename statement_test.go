package soql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupedConditions(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Builder) *Builder
		want  string
	}{
		{
			name: "group after a condition",
			build: func(b *Builder) *Builder {
				return b.Where("Warranty", "=", "Expired").
					StartWhere().
					OrWhere("Warranty", "=", "Active").
					Where("Days_Left__c", "<=", "60").
					EndWhere()
			},
			want: "SELECT Id FROM Androids__c WHERE Warranty = 'Expired' OR (Warranty = 'Active' AND Days_Left__c <= '60')",
		},
		{
			name: "single condition group",
			build: func(b *Builder) *Builder {
				return b.Where("Warranty", "=", "Expired").
					StartWhere().
					Where("Days_Left__c", "<=", "60").
					EndWhere()
			},
			want: "SELECT Id FROM Androids__c WHERE Warranty = 'Expired' AND (Days_Left__c <= '60')",
		},
		{
			name: "groups in several locations",
			build: func(b *Builder) *Builder {
				return b.StartWhere().
					Where("Warranty", "=", "Active").
					Where("Days_Left__c", "<=", "60").
					EndWhere().
					StartWhere().
					OrWhere("Warranty", "=", "Expired").
					Where("Days_Expired__c", "<=", "30").
					EndWhere()
			},
			want: "SELECT Id FROM Androids__c WHERE (Warranty = 'Active' AND Days_Left__c <= '60') OR (Warranty = 'Expired' AND Days_Expired__c <= '30')",
		},
		{
			name: "nested groups",
			build: func(b *Builder) *Builder {
				return b.StartWhere().
					StartWhere().
					Where("Warranty", "=", "Active").
					Where("Days_Left__c", "<=", "60").
					EndWhere().
					StartWhere().
					OrWhere("Warranty", "=", "Expired").
					Where("Days_Expired__c", "<=", "30").
					EndWhere().
					OrWhere("Select_This_Anyway__c", "=", "true").
					EndWhere()
			},
			want: "SELECT Id FROM Androids__c WHERE ((Warranty = 'Active' AND Days_Left__c <= '60') OR (Warranty = 'Expired' AND Days_Expired__c <= '30') OR Select_This_Anyway__c = 'true')",
		},
		{
			name: "groups closing on the same condition",
			build: func(b *Builder) *Builder {
				return b.Where("A", "=", 1).
					StartWhere().
					Where("B", "=", 2).
					StartWhere().
					OrWhere("C", "=", 3).
					Where("D", "=", 4).
					EndWhere().
					EndWhere()
			},
			want: "SELECT Id FROM Androids__c WHERE A = 1 AND (B = 2 OR (C = 3 AND D = 4))",
		},
		{
			name: "group around a function condition",
			build: func(b *Builder) *Builder {
				return b.Where("A", "=", 1).
					StartWhere().
					OrWhereFunction("Tags__c", "INCLUDES", "x").
					OrWhereIn("Type", "y", "z").
					EndWhere()
			},
			want: "SELECT Id FROM Androids__c WHERE A = 1 OR (Tags__c INCLUDES('x') OR Type IN ('y', 'z'))",
		},
		{
			name: "end before any condition closes after the first",
			build: func(b *Builder) *Builder {
				return b.StartWhere().EndWhere().Where("A", "=", 1).Where("B", "=", 2)
			},
			want: "SELECT Id FROM Androids__c WHERE (A = 1) AND B = 2",
		},
		{
			name: "markers are counted per index, not paired",
			build: func(b *Builder) *Builder {
				return b.Where("A", "=", 1).
					EndWhere().
					StartWhere().
					Where("B", "=", 2)
			},
			want: "SELECT Id FROM Androids__c WHERE A = 1) AND (B = 2",
		},
		{
			name: "start past the last condition has no effect",
			build: func(b *Builder) *Builder {
				return b.Where("A", "=", 1).EndWhere().StartWhere()
			},
			want: "SELECT Id FROM Androids__c WHERE A = 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := tt.build(From("Androids__c").AddSelect("Id")).ToSOQL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}
}

func TestGroupMarkers(t *testing.T) {
	b := New().
		StartWhere().
		EndWhere().
		Where("A", "=", 1).
		StartWhere().
		Where("B", "=", 2).
		Where("C", "=", 3).
		EndWhere()

	assert.Equal(t, []int{0, 1}, b.Statement.GroupStarts)
	assert.Equal(t, []int{0, 2}, b.Statement.GroupEnds)
}

func TestStatementBuildCondition(t *testing.T) {
	stmt := &Statement{
		Conditions: []Condition{
			{Column: "A", Operator: "=", Value: "1", Boolean: Or},
			{Operator: "=", Value: "2", Boolean: And},
			{Column: "C", Value: "f(3)", Boolean: Or},
		},
		GroupStarts: []int{1, 1},
		GroupEnds:   []int{2, 2, 7},
	}

	assert.Equal(t, " WHERE A = 1 AND (( = 2 OR C f(3)))", stmt.BuildCondition())
	assert.Empty(t, (&Statement{}).BuildCondition())
}

func TestStatementClone(t *testing.T) {
	stmt := &Statement{
		Selects:     []string{"Id"},
		Object:      "Account",
		Conditions:  []Condition{{Column: "A", Operator: "=", Value: "1", Boolean: And}},
		GroupStarts: []int{0},
		GroupEnds:   []int{0},
		Orders:      []Order{{Column: "Id", Direction: Asc}},
		LimitVal:    1,
		OffsetVal:   2,
	}

	clone := stmt.Clone()
	assert.Equal(t, stmt, clone)

	clone.Selects[0] = "Name"
	clone.Conditions[0].Value = "2"
	clone.GroupStarts[0] = 5
	clone.GroupEnds = append(clone.GroupEnds, 1)
	clone.Orders[0].Direction = Desc

	assert.Equal(t, "Id", stmt.Selects[0])
	assert.Equal(t, "1", stmt.Conditions[0].Value)
	assert.Equal(t, []int{0}, stmt.GroupStarts)
	assert.Equal(t, []int{0}, stmt.GroupEnds)
	assert.Equal(t, Asc, stmt.Orders[0].Direction)
}
