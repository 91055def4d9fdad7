package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an operational error: its message is safe to show to clients.
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

func newAppError(status int, format string, args ...any) *AppError {
	return &AppError{Status: status, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...any) *AppError {
	return newAppError(http.StatusBadRequest, format, args...)
}

func NotFound(format string, args ...any) *AppError {
	return newAppError(http.StatusNotFound, format, args...)
}

func Conflict(format string, args ...any) *AppError {
	return newAppError(http.StatusConflict, format, args...)
}

func MethodNotAllowed(format string, args ...any) *AppError {
	return newAppError(http.StatusMethodNotAllowed, format, args...)
}

// Internal wraps err as a 500. The message is replaced outside development.
func Internal(err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
}

// AsAppError reports whether err carries an AppError somewhere in its chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
