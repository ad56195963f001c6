package soql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidQueryError(t *testing.T) {
	tests := []struct {
		reason Reason
		name   string
		msg    string
	}{
		{ReasonMissingObject, "missing object", "soql: query must contain an object name, use From or SetFrom to set it"},
		{ReasonMissingFields, "missing fields", "soql: query must contain fields to select, use Select or AddSelect to set them"},
		{ReasonUnbalancedGrouping, "unbalanced grouping", "soql: unmatched parenthesis for grouped conditions, every StartWhere needs an EndWhere"},
		{Reason(0), "unknown", "soql: invalid query state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &InvalidQueryError{Reason: tt.reason}
			assert.Equal(t, tt.name, tt.reason.String())
			assert.EqualError(t, err, tt.msg)
			assert.ErrorIs(t, err, ErrInvalidQuery)
			assert.True(t, IsInvalidQuery(fmt.Errorf("render: %w", err)))
		})
	}

	assert.False(t, IsInvalidQuery(nil))
	assert.False(t, IsInvalidQuery(errors.New("other")))
	assert.False(t, errors.Is(&InvalidQueryError{}, ErrInvalidDefinition))
}
