package soql

// AddSelect appends fields to the select list. Duplicates are dropped when
// the query is rendered.
func (b *Builder) AddSelect(fields ...string) *Builder {
	b.Statement.Selects = append(b.Statement.Selects, fields...)
	return b
}

// SetFrom sets the target object, replacing any previous one.
func (b *Builder) SetFrom(object string) *Builder {
	b.Statement.Object = object
	return b
}

// StartWhere opens a group at the next condition to be added.
func (b *Builder) StartWhere() *Builder {
	b.Statement.GroupStarts = append(b.Statement.GroupStarts, len(b.Statement.Conditions))
	return b
}

// EndWhere closes a group after the most recently added condition. With no
// conditions yet, the group closes after the first condition instead.
func (b *Builder) EndWhere() *Builder {
	b.Statement.GroupEnds = append(b.Statement.GroupEnds, max(len(b.Statement.Conditions)-1, 0))
	return b
}

func (b *Builder) addCondition(column, operator, value string, boolean Boolean) *Builder {
	b.Statement.Conditions = append(b.Statement.Conditions, Condition{
		Column:   column,
		Operator: operator,
		Value:    value,
		Boolean:  boolean,
	})
	return b
}

// Where adds a condition joined with AND.
func (b *Builder) Where(column, operator string, value any) *Builder {
	return b.WhereBool(column, operator, value, And)
}

// OrWhere adds a condition joined with OR.
func (b *Builder) OrWhere(column, operator string, value any) *Builder {
	return b.WhereBool(column, operator, value, Or)
}

// WhereBool adds a condition joined with boolean.
func (b *Builder) WhereBool(column, operator string, value any, boolean Boolean) *Builder {
	return b.addCondition(column, operator, ValueOf(value).Format(), boolean)
}

// WhereDate adds a condition whose value is written unquoted, joined with
// AND. The caller supplies a valid date literal such as 2019-10-10.
func (b *Builder) WhereDate(column, operator string, value any) *Builder {
	return b.WhereDateBool(column, operator, value, And)
}

// OrWhereDate is WhereDate joined with OR.
func (b *Builder) OrWhereDate(column, operator string, value any) *Builder {
	return b.WhereDateBool(column, operator, value, Or)
}

// WhereDateBool is WhereDate joined with boolean.
func (b *Builder) WhereDateBool(column, operator string, value any, boolean Boolean) *Builder {
	return b.addCondition(column, operator, rawOf(value).Format(), boolean)
}

// Clause is a column, operator and value triple for WhereMultiple.
type Clause struct {
	Column   string
	Operator string
	Value    any
}

// WhereMultiple adds each clause joined with boolean.
func (b *Builder) WhereMultiple(boolean Boolean, clauses ...Clause) *Builder {
	for _, c := range clauses {
		b.WhereBool(c.Column, c.Operator, c.Value, boolean)
	}
	return b
}

// WhereIn adds a column IN (...) condition joined with AND.
func (b *Builder) WhereIn(column string, values ...any) *Builder {
	return b.WhereInBool(column, And, false, values...)
}

// WhereNotIn adds a column NOT IN (...) condition joined with AND.
func (b *Builder) WhereNotIn(column string, values ...any) *Builder {
	return b.WhereInBool(column, And, true, values...)
}

// OrWhereIn adds a column IN (...) condition joined with OR.
func (b *Builder) OrWhereIn(column string, values ...any) *Builder {
	return b.WhereInBool(column, Or, false, values...)
}

// OrWhereNotIn adds a column NOT IN (...) condition joined with OR.
func (b *Builder) OrWhereNotIn(column string, values ...any) *Builder {
	return b.WhereInBool(column, Or, true, values...)
}

// WhereInBool adds an IN or, when not is set, NOT IN condition joined with
// boolean. Each value is formatted on its own.
func (b *Builder) WhereInBool(column string, boolean Boolean, not bool, values ...any) *Builder {
	operator := "IN"
	if not {
		operator = "NOT IN"
	}
	return b.addCondition(column, operator, "("+joinValues(valuesOf(values))+")", boolean)
}

// WhereFunction adds a "column function(values)" condition joined with AND,
// e.g. WhereFunction("Tags__c", "INCLUDES", "a", "b").
func (b *Builder) WhereFunction(column, function string, values ...any) *Builder {
	return b.WhereFunctionBool(column, function, And, values...)
}

// OrWhereFunction is WhereFunction joined with OR.
func (b *Builder) OrWhereFunction(column, function string, values ...any) *Builder {
	return b.WhereFunctionBool(column, function, Or, values...)
}

// WhereFunctionBool is WhereFunction joined with boolean.
func (b *Builder) WhereFunctionBool(column, function string, boolean Boolean, values ...any) *Builder {
	return b.addCondition(column, "", function+"("+joinValues(valuesOf(values))+")", boolean)
}

// OrderBy adds an ORDER BY entry. The direction defaults to ASC; only the
// first direction given is used.
func (b *Builder) OrderBy(column string, direction ...Direction) *Builder {
	dir := Asc
	if len(direction) > 0 && direction[0] != "" {
		dir = direction[0]
	}
	b.Statement.Orders = append(b.Statement.Orders, Order{Column: column, Direction: dir})
	return b
}

// OrderByDesc adds a descending ORDER BY entry.
func (b *Builder) OrderByDesc(column string) *Builder {
	return b.OrderBy(column, Desc)
}

// Limit sets the LIMIT. Zero omits the clause.
func (b *Builder) Limit(limit int) *Builder {
	b.Statement.LimitVal = limit
	return b
}

// Offset sets the OFFSET. Zero omits the clause.
func (b *Builder) Offset(offset int) *Builder {
	b.Statement.OffsetVal = offset
	return b
}
