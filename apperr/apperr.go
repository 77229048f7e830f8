// Package apperr carries typed application errors from the engines to the
// HTTP boundary, where they are rendered as the JSON error envelope.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status  int    // HTTP status the boundary should respond with
	Message string // human-readable, safe to show to the client
	Err     error  // underlying cause, logged for 5xx, never serialized
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Something went wrong", Err: err}
}

// From extracts the *Error from err, wrapping anything unexpected as Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
