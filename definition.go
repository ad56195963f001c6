package soql

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is a query described in YAML:
//
//	select: [Id, Name]
//	from: Account
//	where:
//	  - {column: Name, operator: "=", value: Mikhail}
//	  - boolean: OR
//	    group:
//	      - {column: Warranty, operator: "=", value: Active}
//	      - {column: Days_Left__c, operator: "<=", value: 60}
//	order_by:
//	  - {column: Name, direction: DESC}
//	limit: 10
type Definition struct {
	Select  []string          `yaml:"select"`
	From    string            `yaml:"from"`
	Where   []WhereDefinition `yaml:"where"`
	OrderBy []OrderDefinition `yaml:"order_by"`
	Limit   int               `yaml:"limit"`
	Offset  int               `yaml:"offset"`
}

// WhereDefinition is a single condition or, when Group is set, a
// parenthesized list of conditions. A group's Boolean joins its first
// condition to whatever precedes the group.
type WhereDefinition struct {
	Column   string            `yaml:"column"`
	Operator string            `yaml:"operator"`
	Value    yaml.Node         `yaml:"value"`
	Boolean  string            `yaml:"boolean"`
	Type     string            `yaml:"type"`
	In       []yaml.Node       `yaml:"in"`
	Not      bool              `yaml:"not"`
	Function string            `yaml:"function"`
	Group    []WhereDefinition `yaml:"group"`
}

// OrderDefinition is one ORDER BY entry.
type OrderDefinition struct {
	Column    string `yaml:"column"`
	Direction string `yaml:"direction"`
}

// ParseDefinition decodes a YAML query definition.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return &def, nil
}

// Builder replays d through a new Builder. Errors wrap ErrInvalidDefinition
// and name the offending entry.
func (d *Definition) Builder(opts ...Option) (*Builder, error) {
	b := New(opts...).AddSelect(d.Select...).SetFrom(d.From)

	for i := range d.Where {
		if err := d.Where[i].apply(b, ""); err != nil {
			return nil, fmt.Errorf("%w: where[%d]%v", ErrInvalidDefinition, i, err)
		}
	}

	for i, o := range d.OrderBy {
		if o.Column == "" {
			return nil, fmt.Errorf("%w: order_by[%d]: column is required", ErrInvalidDefinition, i)
		}
		dir, err := parseDirection(o.Direction)
		if err != nil {
			return nil, fmt.Errorf("%w: order_by[%d]: %v", ErrInvalidDefinition, i, err)
		}
		b.OrderBy(o.Column, dir)
	}

	return b.Limit(d.Limit).Offset(d.Offset), nil
}

// apply adds w to b. inherited, when set, overrides the boolean of the first
// condition reached, which is how a group's boolean reaches its first member.
func (w *WhereDefinition) apply(b *Builder, inherited Boolean) error {
	boolean, err := parseBoolean(w.Boolean)
	if err != nil {
		return fmt.Errorf(": %v", err)
	}

	if len(w.Group) > 0 {
		if w.Column != "" {
			return fmt.Errorf(": column and group are mutually exclusive")
		}
		first := inherited
		if first == "" && w.Boolean != "" {
			first = boolean
		}
		b.StartWhere()
		for i := range w.Group {
			next := Boolean("")
			if i == 0 {
				next = first
			}
			if err := w.Group[i].apply(b, next); err != nil {
				return fmt.Errorf(".group[%d]%v", i, err)
			}
		}
		b.EndWhere()
		return nil
	}

	if inherited != "" {
		boolean = inherited
	}

	if w.Column == "" {
		return fmt.Errorf(": column or a non-empty group is required")
	}

	switch {
	case w.In != nil:
		values := make([]any, len(w.In))
		for i := range w.In {
			v, err := decodeValue(&w.In[i])
			if err != nil {
				return fmt.Errorf(".in[%d]: %v", i, err)
			}
			values[i] = v
		}
		b.WhereInBool(w.Column, boolean, w.Not, values...)
	case w.Function != "":
		values, err := decodeValues(&w.Value)
		if err != nil {
			return fmt.Errorf(".value: %v", err)
		}
		b.WhereFunctionBool(w.Column, w.Function, boolean, values...)
	default:
		if w.Operator == "" {
			return fmt.Errorf(": operator is required")
		}
		switch strings.ToLower(w.Type) {
		case "":
			v, err := decodeValue(&w.Value)
			if err != nil {
				return fmt.Errorf(".value: %v", err)
			}
			b.WhereBool(w.Column, w.Operator, v, boolean)
		case "date":
			if w.Value.Kind != yaml.ScalarNode {
				return fmt.Errorf(".value: a date must be a scalar")
			}
			b.WhereDateBool(w.Column, w.Operator, Raw(w.Value.Value), boolean)
		default:
			return fmt.Errorf(": unknown type %q", w.Type)
		}
	}
	return nil
}

// decodeValue decodes a scalar node. A missing node decodes to nil.
func decodeValue(n *yaml.Node) (any, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("expected a scalar, got %s", nodeKind(n))
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// decodeValues decodes a scalar or a sequence of scalars.
func decodeValues(n *yaml.Node) ([]any, error) {
	if n.Kind != yaml.SequenceNode {
		v, err := decodeValue(n)
		if err != nil {
			return nil, err
		}
		return []any{v}, nil
	}
	values := make([]any, len(n.Content))
	for i, item := range n.Content {
		v, err := decodeValue(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %v", i, err)
		}
		values[i] = v
	}
	return values, nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	}
	return "scalar"
}

func parseBoolean(s string) (Boolean, error) {
	switch strings.ToUpper(s) {
	case "", "AND":
		return And, nil
	case "OR":
		return Or, nil
	}
	return "", fmt.Errorf("unknown boolean %q", s)
}

func parseDirection(s string) (Direction, error) {
	switch strings.ToUpper(s) {
	case "", "ASC":
		return Asc, nil
	case "DESC":
		return Desc, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}
