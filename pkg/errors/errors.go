// Package errors provides structured error handling for the application.
// Errors carry a code that maps to an HTTP status so handlers can translate
// any failure into one response at the boundary.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an application error
type ErrorCode string

const (
	// Client errors (4xx)
	CodeInputValidation   ErrorCode = "INPUT_VALIDATION"
	CodeStorageValidation ErrorCode = "STORAGE_VALIDATION"
	CodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	CodeNotFound          ErrorCode = "NOT_FOUND"

	// Server errors (5xx)
	CodeResponseParse ErrorCode = "RESPONSE_PARSE"
	CodeUpstream      ErrorCode = "UPSTREAM"
	CodeStorage       ErrorCode = "STORAGE"
	CodeInternal      ErrorCode = "INTERNAL"
)

// AppError represents an application error with structured information
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	// FieldErrors holds per-field validation messages for storage validation failures
	FieldErrors []string `json:"errors,omitempty"`
	// Raw carries diagnostic payload (e.g. unparseable model output); never sent to clients
	Raw   string `json:"-"`
	Cause error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status for the error code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeInputValidation, CodeStorageValidation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WithCause attaches a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewInputValidationError reports a missing or malformed request field
func NewInputValidationError(message string) *AppError {
	return &AppError{Code: CodeInputValidation, Message: message}
}

// NewResponseParseError reports model output that could not be parsed as JSON.
// The raw text is kept for server-side diagnostics only.
func NewResponseParseError(raw string, cause error) *AppError {
	return &AppError{
		Code:    CodeResponseParse,
		Message: "failed to parse recipe data from AI",
		Raw:     raw,
		Cause:   cause,
	}
}

// NewUpstreamError reports a failed call to the AI provider
func NewUpstreamError(message string, cause error) *AppError {
	return &AppError{Code: CodeUpstream, Message: message, Cause: cause}
}

// NewStorageValidationError reports documents that fail schema constraints,
// with one message per offending field
func NewStorageValidationError(fieldErrors []string) *AppError {
	return &AppError{
		Code:        CodeStorageValidation,
		Message:     "Recipe validation failed",
		FieldErrors: fieldErrors,
	}
}

// NewStorageError reports a generic database failure
func NewStorageError(cause error) *AppError {
	return &AppError{Code: CodeStorage, Message: "Server error", Cause: cause}
}

// NewUnauthorizedError reports a missing or invalid credential
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Not authorized to access this route"
	}
	return &AppError{Code: CodeUnauthorized, Message: message}
}

// NewNotFoundError reports an unknown identifier
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found"}
}

// AsAppError extracts an *AppError from err, wrapping unclassified errors as internal
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: CodeInternal, Message: "Internal server error", Cause: err}
}
