package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// --- Common Error Constructors ---

// Configuration creates an error for missing or invalid auth configuration.
func Configuration(message string) *AppError {
	return &AppError{
		Code: ErrCodeConfiguration, Message: message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Hashing creates an error for a failed hashing primitive call.
func Hashing(cause error) *AppError {
	return &AppError{
		Code: ErrCodeHashing, Message: "password hashing failed",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// InvalidHashFormat creates an error for a malformed stored hash.
func InvalidHashFormat(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInvalidHashFormat, Message: "stored hash is malformed",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// InvalidTokenKind creates an error for an unsupported token kind.
func InvalidTokenKind(kind string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidTokenKind, Message: fmt.Sprintf("invalid token kind: %q", kind),
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"kind": kind},
	}
}

// Signing creates an error for a failed token signing attempt.
func Signing(cause error) *AppError {
	return &AppError{
		Code: ErrCodeSigning, Message: "token signing failed",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// Unauthorized creates an error for a failed authentication attempt.
func Unauthorized(message string) *AppError {
	return &AppError{
		Code: ErrCodeUnauthorized, Message: message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Validation creates an error for invalid input.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Canceled creates an error for a request canceled mid-operation.
func Canceled(cause error) *AppError {
	return &AppError{
		Code: ErrCodeCanceled, Message: "request canceled",
		HTTPStatus: http.StatusRequestTimeout, Cause: cause,
	}
}

// Internal creates an error for an unexpected internal failure.
func Internal(message string) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// --- Inspection helpers ---

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// Code returns the error code carried by err, or ErrCodeInternal if err is
// not an AppError.
func Code(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}
