package soql

import "strings"

// Boolean joins a condition to the one before it.
type Boolean string

const (
	And Boolean = "AND"
	Or  Boolean = "OR"
)

// Direction is an ORDER BY direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Condition is one WHERE entry. Column and Operator are empty when the
// condition has no such part, e.g. Operator for function conditions.
// Value holds the formatted right-hand side.
type Condition struct {
	Column   string
	Operator string
	Value    string
	Boolean  Boolean
}

// Order is one ORDER BY entry.
type Order struct {
	Column    string
	Direction Direction
}

// Statement holds everything a Builder has accumulated.
//
// GroupStarts and GroupEnds are indexes into Conditions. Brackets are placed
// by counting the markers recorded at each index, not by pairing them, so
// markers that are interleaved incorrectly still render without error as
// long as both lists have the same length.
type Statement struct {
	Selects     []string
	Object      string
	Conditions  []Condition
	GroupStarts []int
	GroupEnds   []int
	Orders      []Order
	LimitVal    int
	OffsetVal   int
}

func (s *Statement) Clone() *Statement {
	newStmt := *s
	newStmt.Selects = append([]string(nil), s.Selects...)
	newStmt.Conditions = append([]Condition(nil), s.Conditions...)
	newStmt.GroupStarts = append([]int(nil), s.GroupStarts...)
	newStmt.GroupEnds = append([]int(nil), s.GroupEnds...)
	newStmt.Orders = append([]Order(nil), s.Orders...)
	return &newStmt
}

// BuildSelect joins the distinct selected fields in order of first use.
func (s *Statement) BuildSelect() string {
	seen := make(map[string]struct{}, len(s.Selects))
	fields := make([]string, 0, len(s.Selects))
	for _, f := range s.Selects {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		fields = append(fields, f)
	}
	return strings.Join(fields, ", ")
}

// BuildCondition renders the WHERE clause with its leading space, or an
// empty string when there are no conditions.
func (s *Statement) BuildCondition() string {
	if len(s.Conditions) == 0 {
		return ""
	}

	opens := countAt(s.GroupStarts)
	closes := countAt(s.GroupEnds)

	var sb strings.Builder
	sb.WriteString(" WHERE ")
	for i, c := range s.Conditions {
		if i > 0 {
			sb.WriteString(" " + string(c.Boolean) + " ")
		}

		parts := make([]string, 0, 3)
		if left := strings.Repeat("(", opens[i]) + c.Column; left != "" {
			parts = append(parts, left)
		}
		if c.Operator != "" {
			parts = append(parts, c.Operator)
		}
		parts = append(parts, c.Value+strings.Repeat(")", closes[i]))
		sb.WriteString(strings.Join(parts, " "))
	}
	return sb.String()
}

// BuildOrder renders the ORDER BY clause with its leading space.
func (s *Statement) BuildOrder() string {
	if len(s.Orders) == 0 {
		return ""
	}
	orders := make([]string, len(s.Orders))
	for i, o := range s.Orders {
		orders[i] = o.Column + " " + string(o.Direction)
	}
	return " ORDER BY " + strings.Join(orders, ", ")
}

// countAt reports how many markers were recorded at each index.
func countAt(markers []int) map[int]int {
	counts := make(map[int]int, len(markers))
	for _, m := range markers {
		counts[m]++
	}
	return counts
}
