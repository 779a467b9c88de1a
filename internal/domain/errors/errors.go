package errors

import (
	"fmt"
	"net/http"

	"leafcare/internal/errors"
)

// AppError is an error that knows how it should be presented to an API client.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is the concrete AppError used across leafcare.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error returns the details when present so that logs and wrapped chains read naturally.
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of e carrying details. The predefined values are never mutated.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithDetailsf is WithDetails with a format string.
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// Is matches any BaseError with the same business code, so a detailed copy still
// satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrServiceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"Service unavailable",
		"",
	)
)

// Validation returns ErrValidationFailed carrying a formatted detail message.
func Validation(format string, args ...any) error {
	return ErrValidationFailed.WithDetailsf(format, args...)
}

// NotFound returns ErrNotFound carrying a formatted detail message.
func NotFound(format string, args ...any) error {
	return ErrNotFound.WithDetailsf(format, args...)
}

// Conflict returns ErrConflict carrying a formatted detail message.
func Conflict(format string, args ...any) error {
	return ErrConflict.WithDetailsf(format, args...)
}

// Unexpected re-surfaces a failure that is not already an AppError as a validation
// error whose details end with the underlying message. AppErrors pass through untouched.
func Unexpected(err error, action string) error {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.WithStack(ErrValidationFailed.WithDetailsf("%s: %s", action, err.Error()))
}
