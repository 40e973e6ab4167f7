package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service.
var (
	// ErrInvalidRequest indicates malformed or missing request parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStoreUnavailable indicates that the baggage or flight store could not be read.
	ErrStoreUnavailable = errors.New("data store unavailable")
)

// Store operation names used in errors, logs and metrics.
const (
	OperationListBags    = "list_bags"
	OperationListFlights = "list_flights"
	OperationPing        = "ping"
)

// StoreError describes a failed read against the external store.
// It matches both ErrStoreUnavailable and the underlying driver error.
type StoreError struct {
	// Operation names the failed read (e.g., "list_bags")
	Operation string

	// Err is the underlying error
	Err error
}

// NewStoreError wraps err as a store failure for the given operation.
func NewStoreError(operation string, err error) *StoreError {
	return &StoreError{Operation: operation, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Operation, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{ErrStoreUnavailable, e.Err}
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// IsInvalidRequest reports whether err is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsStoreUnavailable reports whether err is a store failure.
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
