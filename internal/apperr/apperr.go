// Package apperr defines the error taxonomy the service layer speaks.
// Handlers branch on the kind to pick the HTTP status and envelope shape;
// nothing below the handler layer knows about HTTP.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a service-layer failure.
type Kind int

const (
	// KindInternal is the fallback for unexpected failures.
	KindInternal Kind = iota
	// KindNotFound marks a lookup whose target does not exist.
	KindNotFound
	// KindValidation marks rejected input, with per-field messages.
	KindValidation
	// KindConflict marks a request that contradicts current state
	// (duplicate unique value, incompatible comparison, rule violation).
	KindConflict
)

// Error is the typed error services return. Message is user-facing (Spanish,
// matching the API contract); Fields is populated for validation errors only.
type Error struct {
	Kind     Kind
	Message  string
	Resource string
	Fields   map[string]string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports that resource with the given identifier does not exist.
func NotFound(resource, message string) *Error {
	return &Error{Kind: KindNotFound, Resource: resource, Message: message}
}

// NotFoundf is NotFound with a formatted message.
func NotFoundf(resource, format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Resource: resource, Message: fmt.Sprintf(format, args...)}
}

// Validation reports rejected input with per-field messages.
func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// Conflict reports a request contradicting current state.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Conflictf is Conflict with a formatted message.
func Conflictf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure with a user-facing message.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// As extracts an *Error from err, or wraps err as internal when it isn't one.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return &Error{Kind: KindInternal, Message: "Error interno del servidor", Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
