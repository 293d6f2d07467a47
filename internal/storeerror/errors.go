// Package storeerror defines the error types returned by the expense store
// and the entry-time validators.
package storeerror

import (
	"errors"
	"fmt"
)

// ErrNoPosition is wrapped by PositionError when no position was given.
var ErrNoPosition = errors.New("no position given")

// PositionError reports a delete position that does not address a row.
// A negative Position means no position was given.
type PositionError struct {
	Position int
	Rows     int
}

func (e *PositionError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid position: %v (table has %d rows)", ErrNoPosition, e.Rows)
	}
	if e.Rows == 0 {
		return fmt.Sprintf("invalid position %d: table is empty", e.Position)
	}
	return fmt.Sprintf("invalid position %d: table has %d rows", e.Position, e.Rows)
}

func (e *PositionError) Unwrap() error {
	if e.Position < 0 {
		return ErrNoPosition
	}
	return nil
}

// WriteError reports an I/O failure while appending to or rewriting the store.
type WriteError struct {
	FilePath  string
	Operation string
	Err       error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s failed for '%s': %v", e.Operation, e.FilePath, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ValidationError reports user input rejected at entry time.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// IsPositionError reports whether err is or wraps a PositionError.
func IsPositionError(err error) bool {
	var pe *PositionError
	return errors.As(err, &pe)
}

// IsWriteError reports whether err is or wraps a WriteError.
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}
