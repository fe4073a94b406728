package apperrors

import (
	"fmt"
	"net/http"
)

// Error represents an application error carrying the HTTP status it maps to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation marks malformed or missing input fields.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound marks an absent user, product or cart item.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Forbidden marks a role mismatch or a non-owner mutation.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message, nil)
}

// Conflict marks a duplicate unique key.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message, nil)
}
