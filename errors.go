package blockfunc

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBlock is reported when a routine has to invoke a block that was never supplied.
	ErrNilBlock = errors.New("no block given")

	// ErrInvalidArgument is reported for inputs a routine refuses to iterate over.
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvocationError reports a failed attempt to call a block.
type InvocationError struct {
	Routine string
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Routine, ErrNilBlock)
}

func (e *InvocationError) Unwrap() error {
	return ErrNilBlock
}

// ValidationError reports an argument rejected before any block was invoked.
type ValidationError struct {
	Routine string
	Field   string
	Value   any
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", e.Routine, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(routine, field string, value any, reason string) error {
	return &ValidationError{Routine: routine, Field: field, Value: value, Reason: reason}
}
