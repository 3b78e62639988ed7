// Package apperr defines the error taxonomy the HTTP layer speaks: a
// machine-readable code, an HTTP status and optional per-field messages in
// the `field -> ["message"]` shape the admin console consumes.
package apperr

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

const (
	CodeNotFound      = "not_found"
	CodeAlreadyExists = "already_exists"
	CodeValidation    = "validation_error"
	CodeUnauthorized  = "unauthorized"
	CodeForbidden     = "forbidden"
	CodeDatabase      = "database_error"
	CodeInternal      = "internal_error"
)

var statusByCode = map[string]int{
	CodeNotFound:      http.StatusNotFound,
	CodeAlreadyExists: http.StatusConflict,
	CodeValidation:    http.StatusBadRequest,
	CodeUnauthorized:  http.StatusUnauthorized,
	CodeForbidden:     http.StatusForbidden,
	CodeDatabase:      http.StatusInternalServerError,
	CodeInternal:      http.StatusInternalServerError,
}

// Error is the application-level error carried from storage and services up
// to the handlers.
type Error struct {
	Code        string
	Message     string
	FieldErrors map[string][]string
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error code to a response status.
func (e *Error) HTTPStatus() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// New builds an Error with a code and user-facing message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// WithField adds a per-field message, keeping earlier ones.
func (e *Error) WithField(field, message string) *Error {
	if e.FieldErrors == nil {
		e.FieldErrors = make(map[string][]string)
	}
	e.FieldErrors[field] = append(e.FieldErrors[field], message)
	return e
}

// NotFound reports whether err is a not-found application error.
func NotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == CodeNotFound
}

// From extracts the application error from err, wrapping foreign errors as
// internal ones so handlers always have a status and message to render.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Code: CodeInternal, Message: "internal error", Err: err}
}
