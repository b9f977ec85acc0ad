// Package apperror defines the error kinds surfaced by services and hooks.
//
// Every failure leaving a service call is an *Error carrying a Kind. Kinds
// map onto HTTP-style status codes so callers that render errors have a
// stable code to report, even though nothing here speaks HTTP.
package apperror

import (
	"errors"
	"fmt"
)

// Kind categorizes an error
type Kind string

const (
	KindBadRequest Kind = "BadRequest"
	KindNotFound   Kind = "NotFound"
	KindGeneral    Kind = "GeneralError"

	// KindMethodNotAllowed is returned when a service lacks the called method
	KindMethodNotAllowed Kind = "MethodNotAllowed"
)

// Code returns the status code associated with the kind
func (k Kind) Code() int {
	switch k {
	case KindBadRequest:
		return 400
	case KindNotFound:
		return 404
	case KindMethodNotAllowed:
		return 405
	default:
		return 500
	}
}

// Sentinels for errors.Is checks against a kind
var (
	ErrBadRequest = &Error{Kind: KindBadRequest}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrGeneral    = &Error{Kind: KindGeneral}

	ErrMethodNotAllowed = &Error{Kind: KindMethodNotAllowed}
)

// Error is a typed service error
type Error struct {
	Kind    Kind
	Message string

	// Data carries optional structured details (e.g. the offending field)
	Data map[string]any

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Code returns the status code for the error's kind
func (e *Error) Code() int {
	return e.Kind.Code()
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NotFound builds a NotFound error
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequest builds a BadRequest error
func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// MethodNotAllowed builds a MethodNotAllowed error
func MethodNotAllowed(format string, args ...any) *Error {
	return &Error{Kind: KindMethodNotAllowed, Message: fmt.Sprintf(format, args...)}
}

// General wraps cause as a GeneralError
func General(cause error) *Error {
	return &Error{Kind: KindGeneral, Message: cause.Error(), cause: cause}
}

// Wrap builds an error of kind around cause
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// WithData returns a copy of e carrying data
func (e *Error) WithData(data map[string]any) *Error {
	c := *e
	c.Data = data
	return &c
}

// Convert returns err as an *Error, wrapping unknown errors as GeneralError.
// A nil err stays nil.
func Convert(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return General(err)
}

// KindOf returns the kind of err, or KindGeneral for foreign errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindGeneral
}
