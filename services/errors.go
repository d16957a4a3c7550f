package services

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindInvalidInput
	KindForbidden
	KindConflict
)

// AppError is a validation failure surfaced to the caller as-is. Nothing is
// retried or recovered; the operation aborts with no partial mutation.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string { return e.Message }

// Status maps the error kind to the HTTP status controllers respond with.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func ErrNotFound(msg string) *AppError     { return &AppError{Kind: KindNotFound, Message: msg} }
func ErrInvalidInput(msg string) *AppError { return &AppError{Kind: KindInvalidInput, Message: msg} }
func ErrForbidden(msg string) *AppError    { return &AppError{Kind: KindForbidden, Message: msg} }
func ErrConflict(msg string) *AppError     { return &AppError{Kind: KindConflict, Message: msg} }

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
