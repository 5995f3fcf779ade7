package domain

import (
	"errors"
	"net/http"
)

// ErrorKind discriminates the closed set of operational error variants.
type ErrorKind string

const (
	KindBadRequest      ErrorKind = "bad_request"
	KindValidation      ErrorKind = "validation"
	KindCast            ErrorKind = "cast"
	KindDuplicate       ErrorKind = "duplicate"
	KindNotFound        ErrorKind = "not_found"
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindUnauthorized    ErrorKind = "unauthorized"
	KindInternal        ErrorKind = "internal"
)

// kindStatus fixes the HTTP status per kind.
var kindStatus = map[ErrorKind]int{
	KindBadRequest:      http.StatusBadRequest,
	KindValidation:      http.StatusUnprocessableEntity,
	KindCast:            http.StatusBadRequest,
	KindDuplicate:       http.StatusConflict,
	KindNotFound:        http.StatusNotFound,
	KindUnauthenticated: http.StatusUnauthorized,
	KindUnauthorized:    http.StatusForbidden,
	KindInternal:        http.StatusInternalServerError,
}

// kindMessage is the default user-facing message per kind, used when a
// constructor is given an empty message.
var kindMessage = map[ErrorKind]string{
	KindBadRequest:      "bad request",
	KindValidation:      "validation error",
	KindCast:            "invalid path",
	KindDuplicate:       "duplicate document",
	KindNotFound:        "document not found",
	KindUnauthenticated: "unauthenticated user",
	KindUnauthorized:    "unauthorized user",
	KindInternal:        "unhandled server error",
}

// Error is an operational error: classified, carrying an HTTP status, and safe
// to disclose to the client. Errors are built once at the point of failure and
// never mutated; the HTTP error handler is their single consumer.
type Error struct {
	Kind    ErrorKind
	Code    int
	Message string
	Err     error // optional wrapped cause, never disclosed
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Status derives the envelope status field: "fail" for 4xx, "error" otherwise.
func (e *Error) Status() string {
	if e.Code >= 400 && e.Code < 500 {
		return "fail"
	}
	return "error"
}

func newError(kind ErrorKind, message string) *Error {
	if message == "" {
		message = kindMessage[kind]
	}
	return &Error{Kind: kind, Code: kindStatus[kind], Message: message}
}

func NewBadRequest(message string) *Error      { return newError(KindBadRequest, message) }
func NewValidation(message string) *Error      { return newError(KindValidation, message) }
func NewCast(message string) *Error            { return newError(KindCast, message) }
func NewDuplicate(message string) *Error       { return newError(KindDuplicate, message) }
func NewNotFound(message string) *Error        { return newError(KindNotFound, message) }
func NewUnauthenticated(message string) *Error { return newError(KindUnauthenticated, message) }
func NewUnauthorized(message string) *Error    { return newError(KindUnauthorized, message) }
func NewInternal(message string) *Error        { return newError(KindInternal, message) }

// AsError unwraps err to an operational *Error if one is in the chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsOperational reports whether err belongs to the error taxonomy and its
// message is therefore safe to disclose to the client.
func IsOperational(err error) bool {
	_, ok := AsError(err)
	return ok
}

// IsKind reports whether err is an operational error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}
