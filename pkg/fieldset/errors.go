package fieldset

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when a rule receives a value of the wrong kind.
	ErrTypeMismatch = errors.New("fieldset: value type mismatch")
	// ErrOutOfRange is returned when an integer value falls outside its inclusive bounds.
	ErrOutOfRange = errors.New("fieldset: value out of range")
	// ErrNotInSet is returned when a value is not one of the permitted options.
	ErrNotInSet = errors.New("fieldset: value not in allowed set")
	// ErrAttributeNotSet is returned when a field is read before it was ever written.
	ErrAttributeNotSet = errors.New("fieldset: attribute not set")
	// ErrUnknownField is returned when a field name is not defined by the schema.
	ErrUnknownField = errors.New("fieldset: unknown field")
	// ErrInvalidSchema is returned when a schema definition is malformed.
	ErrInvalidSchema = errors.New("fieldset: invalid schema")
)

// FieldError wraps a rule or storage failure with the name of the field it
// occurred on. It unwraps to one of the package sentinel errors, so callers
// can branch on the failure kind with errors.Is and recover the field name
// with errors.As.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
