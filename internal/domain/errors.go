package domain

import "fmt"

// ValidationError reports malformed or conflicting input. It carries the
// field the problem belongs to so handlers can key the response on it.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError covers a referenced record that is absent or not owned by
// the caller. Both cases answer 404 so ownership is not probeable.
type NotFoundError struct {
	Resource string
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// StateConflictError means the operation is not allowed in the record's
// current status (cancel a confirmed booking, double proof submission).
type StateConflictError struct {
	Message string
}

func NewStateConflictError(message string) *StateConflictError {
	return &StateConflictError{Message: message}
}

func (e *StateConflictError) Error() string {
	return e.Message
}

// GatewayError wraps a payment provider failure; it is reported to the
// caller with the provider message and never crashes the request.
type GatewayError struct {
	Message string
	Err     error
}

func NewGatewayError(message string, err error) *GatewayError {
	return &GatewayError{Message: message, Err: err}
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment gateway: %s: %v", e.Message, e.Err)
	}
	return "payment gateway: " + e.Message
}

func (e *GatewayError) Unwrap() error { return e.Err }
