// Package apperrors defines the failure kinds shared by the command, query and
// handler layers.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every NotFoundError through errors.Is.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned when no user matches an email/PIN pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError signals client-supplied data that fails a precondition.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError signals that a referenced entity id does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ConstraintError signals that the store rejected a write. Message is the
// store's own text and is safe to hand back to the client verbatim.
type ConstraintError struct {
	Code    string
	Message string
	Err     error
}

func (e *ConstraintError) Error() string { return e.Message }

func (e *ConstraintError) Unwrap() error { return e.Err }

// StoreError wraps an unexpected storage backend failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("failed to %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
