package errs

import (
	"errors"
	"fmt"
)

var (
	ErrUpstream    = errors.New("upstream failure")
	ErrPersistence = errors.New("persistence failure")
)

// UpstreamError wraps a failure returned by an external service such as the
// payment gateway. It is fatal to the current request only.
type UpstreamError struct {
	Service string
	Cause   error
}

func NewUpstreamError(service string, cause error) *UpstreamError {
	return &UpstreamError{Service: service, Cause: cause}
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrUpstream, e.Service, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUpstream, e.Service)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.Cause}
}

// PersistenceError wraps a storage driver failure with the operation that hit it.
type PersistenceError struct {
	Operation string
	Cause     error
}

func NewPersistenceError(operation string, cause error) *PersistenceError {
	return &PersistenceError{Operation: operation, Cause: cause}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPersistence, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPersistence, e.Operation)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Cause}
}
