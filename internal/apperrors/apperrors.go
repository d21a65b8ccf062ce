// Package apperrors defines the client-facing error taxonomy and its
// mapping onto HTTP status codes. Anything that is not an *Error renders
// as a generic 500 at the API boundary.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a client-facing failure.
type Kind int

const (
	// KindInternal is the fallback for unexpected failures.
	KindInternal Kind = iota
	// KindValidation covers malformed or missing input.
	KindValidation
	// KindConflict covers uniqueness violations.
	KindConflict
	// KindAuthentication covers missing/invalid tokens and bad credentials.
	KindAuthentication
	// KindNotFound covers lookups with no matching owned record.
	KindNotFound
)

// Error is a client-facing failure with a stable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// HTTPStatus returns the status code the error renders with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a 400-class error.
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// Conflict builds a 409-class error.
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

// Authentication builds a 401-class error.
func Authentication(msg string) *Error { return &Error{Kind: KindAuthentication, Message: msg} }

// NotFound builds a 404-class error.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// FromError unwraps err into an *Error, or nil when it is not one.
func FromError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
