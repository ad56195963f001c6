package soql

import "errors"

var (
	// ErrInvalidQuery is returned when a Builder cannot be rendered.
	ErrInvalidQuery = errors.New("soql: invalid query state")

	// ErrInvalidDefinition is returned when a YAML definition cannot be
	// replayed into a Builder.
	ErrInvalidDefinition = errors.New("soql: invalid definition")
)

// Reason identifies which render precondition failed.
type Reason int

const (
	ReasonMissingObject Reason = iota + 1
	ReasonMissingFields
	ReasonUnbalancedGrouping
)

func (r Reason) String() string {
	switch r {
	case ReasonMissingObject:
		return "missing object"
	case ReasonMissingFields:
		return "missing fields"
	case ReasonUnbalancedGrouping:
		return "unbalanced grouping"
	}
	return "unknown"
}

// InvalidQueryError describes a failed render.
type InvalidQueryError struct {
	Reason Reason
}

func (e *InvalidQueryError) Error() string {
	switch e.Reason {
	case ReasonMissingObject:
		return "soql: query must contain an object name, use From or SetFrom to set it"
	case ReasonMissingFields:
		return "soql: query must contain fields to select, use Select or AddSelect to set them"
	case ReasonUnbalancedGrouping:
		return "soql: unmatched parenthesis for grouped conditions, every StartWhere needs an EndWhere"
	}
	return ErrInvalidQuery.Error()
}

// Is reports whether target is ErrInvalidQuery.
func (e *InvalidQueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}

// IsInvalidQuery reports whether err is a render failure.
func IsInvalidQuery(err error) bool {
	return errors.Is(err, ErrInvalidQuery)
}
