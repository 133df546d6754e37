package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common application errors
var (
	ErrNotFound   = NewNotFoundError("resource", "resource not found")
	ErrBadRequest = NewBadRequestError("", "invalid request")
)

// BadRequestError represents a malformed or incomplete request body
type BadRequestError struct {
	Field   string
	Message string
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(field, message string) *BadRequestError {
	return &BadRequestError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *BadRequestError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("bad request: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("bad request: %s", e.Message)
}

// HTTPStatus returns the HTTP status for this error
func (e *BadRequestError) HTTPStatus() int {
	return http.StatusBadRequest
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// StoreError represents a failure reported by the backing database:
// connection loss, rejected query or constraint violation.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError creates a new store error for the given operation
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{
		Op:  op,
		Err: err,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store: %s failed", e.Op)
}

// Unwrap returns the wrapped error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *StoreError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// StartupError is fatal: the process must not begin serving.
type StartupError struct {
	Reason string
	Err    error
}

// NewStartupError creates a new startup error
func NewStartupError(reason string, err error) *StartupError {
	return &StartupError{
		Reason: reason,
		Err:    err,
	}
}

// Error implements the error interface
func (e *StartupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("startup: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("startup: %s", e.Reason)
}

// Unwrap returns the wrapped error
func (e *StartupError) Unwrap() error {
	return e.Err
}

// HTTPStatuser is implemented by errors that map onto an HTTP status code
type HTTPStatuser interface {
	HTTPStatus() int
}

// HTTPStatus walks the error chain and returns the first status found.
// Unclassified errors map to 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var s HTTPStatuser
	if errors.As(err, &s) {
		return s.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// IsStartup reports whether err is, or wraps, a StartupError
func IsStartup(err error) bool {
	var se *StartupError
	return errors.As(err, &se)
}
