package soql

import (
	"fmt"
	"log/slog"
)

// ToSOQL renders the query. It fails with an *InvalidQueryError when the
// object or fields are missing, or when StartWhere and EndWhere were called
// a different number of times. Rendering does not change b.
func (b *Builder) ToSOQL() (string, error) {
	stmt := b.Statement

	if err := stmt.validate(); err != nil {
		b.logger.Debug("soql: render failed", slog.String("reason", err.Reason.String()))
		return "", err
	}

	sql := fmt.Sprintf("SELECT %s FROM %s%s%s", stmt.BuildSelect(), stmt.Object, stmt.BuildCondition(), stmt.BuildOrder())

	if stmt.LimitVal != 0 {
		sql += fmt.Sprintf(" LIMIT %d", stmt.LimitVal)
	}

	if stmt.OffsetVal != 0 {
		sql += fmt.Sprintf(" OFFSET %d", stmt.OffsetVal)
	}

	b.logger.Debug("soql: rendered query",
		slog.String("object", stmt.Object),
		slog.Int("conditions", len(stmt.Conditions)),
		slog.String("query", sql),
	)
	return sql, nil
}

// MustSOQL is like ToSOQL but panics on error.
func (b *Builder) MustSOQL() string {
	sql, err := b.ToSOQL()
	if err != nil {
		panic(err)
	}
	return sql
}

// String returns the rendered query, or an empty string if it cannot be
// rendered.
func (b *Builder) String() string {
	sql, err := b.ToSOQL()
	if err != nil {
		return ""
	}
	return sql
}

func (s *Statement) validate() *InvalidQueryError {
	switch {
	case s.Object == "":
		return &InvalidQueryError{Reason: ReasonMissingObject}
	case len(s.Selects) == 0:
		return &InvalidQueryError{Reason: ReasonMissingFields}
	case len(s.GroupStarts) != len(s.GroupEnds):
		return &InvalidQueryError{Reason: ReasonUnbalancedGrouping}
	}
	return nil
}
