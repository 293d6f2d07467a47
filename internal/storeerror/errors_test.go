package storeerror

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionError(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		expected string
	}{
		{
			name:     "out of range",
			err:      &PositionError{Position: 5, Rows: 3},
			expected: "invalid position 5: table has 3 rows",
		},
		{
			name:     "empty table",
			err:      &PositionError{Position: 0, Rows: 0},
			expected: "invalid position 0: table is empty",
		},
		{
			name:     "absent position",
			err:      &PositionError{Position: -1, Rows: 2},
			expected: "invalid position: no position given (table has 2 rows)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}

	assert.ErrorIs(t, &PositionError{Position: -1, Rows: 1}, ErrNoPosition)
	assert.NotErrorIs(t, &PositionError{Position: 1, Rows: 1}, ErrNoPosition)
}

func TestWriteError(t *testing.T) {
	err := &WriteError{FilePath: "expenses.csv", Operation: "append", Err: fs.ErrPermission}
	assert.Equal(t, "append failed for 'expenses.csv': permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "amount", Value: "0", Reason: "must be at least 1.00"}
	assert.Equal(t, "invalid amount '0': must be at least 1.00", err.Error())
}

func TestPredicates(t *testing.T) {
	wrappedPos := fmt.Errorf("delete: %w", &PositionError{Position: 9, Rows: 1})
	wrappedWrite := fmt.Errorf("add: %w", &WriteError{Operation: "append", Err: errors.New("x")})

	assert.True(t, IsPositionError(wrappedPos))
	assert.False(t, IsPositionError(wrappedWrite))
	assert.True(t, IsWriteError(wrappedWrite))
	assert.False(t, IsWriteError(errors.New("other")))
}
