package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an error for HTTP status mapping.
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeIO            ErrorType = "io"
	ErrorTypeSerialization ErrorType = "serialization"
	ErrorTypeInternal      ErrorType = "internal"
)

// ErrorCode identifies a specific failure.
type ErrorCode string

const (
	CodeInvalidInput     ErrorCode = "invalid_input"
	CodeInvalidFilename  ErrorCode = "invalid_filename"
	CodeWorkflowNotFound ErrorCode = "workflow_not_found"
	CodeFileNotFound     ErrorCode = "file_not_found"
	CodeFileWrite        ErrorCode = "file_write"
	CodeFileRead         ErrorCode = "file_read"
	CodeSerialization    ErrorCode = "serialization"
	CodeDatabaseQuery    ErrorCode = "database_query"
	CodeInternal         ErrorCode = "internal_error"
)

// AppError is a structured application error.
type AppError struct {
	Type    ErrorType              `json:"type"`
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details string                 `json:"details,omitempty"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s - %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds a key/value pair to the error context.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails adds additional details.
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError.
func New(errorType ErrorType, code ErrorCode, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
	}
}

// Newf creates a new AppError with a formatted message.
func Newf(errorType ErrorType, code ErrorCode, format string, args ...interface{}) *AppError {
	return New(errorType, code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error, preserving it as the cause.
func Wrap(err error, errorType ErrorType, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, errorType ErrorType, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, errorType, code, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetAppError extracts an AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFound reports whether the error is a not-found AppError.
func IsNotFound(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// Common constructors.

// NewValidationError creates a validation error.
func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, CodeInvalidInput, message)
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, CodeWorkflowNotFound, message)
}

// InternalError creates an internal error.
func InternalError(message string) *AppError {
	return New(ErrorTypeInternal, CodeInternal, message)
}

// IOError wraps a filesystem failure.
func IOError(operation string, err error) *AppError {
	return Wrap(err, ErrorTypeIO, CodeFileWrite, fmt.Sprintf("%s failed", operation))
}

// SerializationError wraps an encode/decode failure.
func SerializationError(what string, err error) *AppError {
	return Wrap(err, ErrorTypeSerialization, CodeSerialization, fmt.Sprintf("failed to serialize %s", what))
}

// DatabaseError wraps a database failure.
func DatabaseError(operation string, err error) *AppError {
	return Wrap(err, ErrorTypeInternal, CodeDatabaseQuery, fmt.Sprintf("database operation %s failed", operation))
}

// HTTPStatus maps the error type to an HTTP status code.
func (e *AppError) HTTPStatus() int {
	switch e.Type {
	case ErrorTypeValidation:
		return 400
	case ErrorTypeNotFound:
		return 404
	case ErrorTypeIO, ErrorTypeSerialization, ErrorTypeInternal:
		return 500
	default:
		return 500
	}
}
