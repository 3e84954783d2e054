package domain

import (
	"errors"
	"fmt"
)

var (
	// Auth errors
	ErrDuplicateEmail = errors.New("user with this email already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so a caller cannot tell which one occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not authenticated")

	// Catalog errors
	ErrFlightNotFound = errors.New("flight not found")

	// Ledger errors
	ErrInvalidReference = errors.New("booking references unknown user or flight")

	// Remote search errors
	ErrRemoteUnavailable = errors.New("journey search backend unavailable")
)

// StorageError wraps a failure of the durable local store. Store operations
// are expected to always succeed barring exhaustion or corruption; when they
// do fail the workflow surfaces this instead of crashing.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// ValidationError reports malformed or missing fields. Field-level problems
// (card number format, empty name) surface here rather than aborting the
// workflow.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
