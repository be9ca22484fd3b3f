package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the single tagged error services return. Status is the HTTP
// status the boundary answers with; Message is what the client sees.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap attaches an underlying cause without changing what the client sees.
func (e *AppError) Wrap(err error) *AppError {
	return &AppError{Status: e.Status, Message: e.Message, Err: err}
}

func New(status int, msg string) *AppError {
	return &AppError{Status: status, Message: msg}
}

func BadRequest(msg string) *AppError   { return New(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *AppError { return New(http.StatusUnauthorized, msg) }
func Forbidden(msg string) *AppError    { return New(http.StatusForbidden, msg) }
func NotFound(msg string) *AppError     { return New(http.StatusNotFound, msg) }
func Conflict(msg string) *AppError     { return New(http.StatusConflict, msg) }
func Internal(msg string) *AppError     { return New(http.StatusInternalServerError, msg) }

// BadRequestf formats a validation message.
func BadRequestf(format string, args ...any) *AppError {
	return BadRequest(fmt.Sprintf(format, args...))
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// StatusOf returns the HTTP status for err, 500 for anything untagged.
func StatusOf(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// IsStatus reports whether err is tagged with the given status.
func IsStatus(err error, status int) bool {
	appErr, ok := As(err)
	return ok && appErr.Status == status
}
