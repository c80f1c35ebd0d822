// Package errors provides coded domain errors for the reader core.
//
// Usage:
//
//	// In the store - return typed errors
//	if !index.InBounds(book, page) {
//	    return errors.OutOfRange("page %d outside %s", page, book)
//	}
//
//	// At the UI edge - check with errors.Is
//	if errors.Is(err, errors.ErrOutOfRange) {
//	    return v, nil // stay on the current page
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	CodeNotFound   Code = "NOT_FOUND"
	CodeOutOfRange Code = "OUT_OF_RANGE"
	CodeValidation Code = "VALIDATION"
	CodeCorrupt    Code = "CORRUPT"
	CodeInternal   Code = "INTERNAL"
)

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithDetails returns a new error with additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrNotFound   = &Error{Code: CodeNotFound, Message: "not found"}
	ErrOutOfRange = &Error{Code: CodeOutOfRange, Message: "out of range"}
	ErrValidation = &Error{Code: CodeValidation, Message: "validation failed"}
	ErrCorrupt    = &Error{Code: CodeCorrupt, Message: "corrupt data"}
	ErrInternal   = &Error{Code: CodeInternal, Message: "internal error"}
)

// New creates an error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error with the given code that wraps cause.
func Wrap(cause error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: cause}
}

// NotFound creates a NOT_FOUND error.
func NotFound(format string, args ...any) *Error {
	return New(CodeNotFound, format, args...)
}

// OutOfRange creates an OUT_OF_RANGE error.
func OutOfRange(format string, args ...any) *Error {
	return New(CodeOutOfRange, format, args...)
}

// Validation creates a VALIDATION error.
func Validation(format string, args ...any) *Error {
	return New(CodeValidation, format, args...)
}

// Corrupt wraps a decoding failure of persisted data.
func Corrupt(cause error, format string, args ...any) *Error {
	return Wrap(cause, CodeCorrupt, format, args...)
}

// Internal wraps an unexpected failure.
func Internal(cause error, format string, args ...any) *Error {
	return Wrap(cause, CodeInternal, format, args...)
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
