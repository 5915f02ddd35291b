package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCustomerNotFound is returned when a transaction references a
// customer that does not exist.
var ErrCustomerNotFound = errors.New("customer not found")

// ValidationError reports malformed or missing input. It is always
// raised before any persistence attempt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// ConstraintError reports a value outside an enumerated domain.
type ConstraintError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint: %s must be one of [%s], got %q", e.Field, strings.Join(e.Allowed, ", "), e.Value)
}

// StorageError wraps a store failure raised inside a unit of work. By
// the time it surfaces the unit of work has been fully rolled back.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
