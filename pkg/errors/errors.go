// Package errors provides standardized error types for pushkit payload validation.
package errors

import (
	"fmt"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Notification errors
	CodeEmptyNotification ErrorCode = "EMPTY_NOTIFICATION"
	CodeInvalidAlert      ErrorCode = "INVALID_ALERT"
	CodeInvalidBadge      ErrorCode = "INVALID_BADGE"
	CodeInvalidNoticeType ErrorCode = "INVALID_NOTICE_TYPE"

	// Selector errors
	CodeInvalidPlatform ErrorCode = "INVALID_PLATFORM"
	CodeInvalidAudience ErrorCode = "INVALID_AUDIENCE"

	// Push composition errors
	CodeMissingPlatform ErrorCode = "MISSING_PLATFORM"
	CodeMissingAudience ErrorCode = "MISSING_AUDIENCE"
	CodeEmptyPush       ErrorCode = "EMPTY_PUSH"
)

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	// CategoryInvalidArgument covers every validation failure the payload
	// layer can produce. There is no other category: the layer does no I/O.
	CategoryInvalidArgument ErrorCategory = "INVALID_ARGUMENT"
)

// PushError represents a standardized error with category and code
type PushError struct {
	Code     ErrorCode     `json:"code"`
	Category ErrorCategory `json:"category"`
	Field    string        `json:"field,omitempty"`
	Message  string        `json:"message"`
	Cause    error         `json:"-"`
}

// Error implements the error interface
func (e *PushError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s:%s] %s (field: %s)", e.Category, e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *PushError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison
func (e *PushError) Is(target error) bool {
	if t, ok := target.(*PushError); ok {
		return e.Code == t.Code && e.Category == t.Category
	}
	return false
}

// New creates a new PushError
func New(code ErrorCode, message string) *PushError {
	return &PushError{
		Code:     code,
		Category: CategoryInvalidArgument,
		Message:  message,
	}
}

// Newf creates a new PushError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PushError {
	return New(code, fmt.Sprintf(format, args...))
}

// NewWithField creates a new PushError naming the offending field
func NewWithField(code ErrorCode, field, message string) *PushError {
	return &PushError{
		Code:     code,
		Category: CategoryInvalidArgument,
		Field:    field,
		Message:  message,
	}
}

// Wrap wraps an existing error with a PushError
func Wrap(code ErrorCode, message string, cause error) *PushError {
	return &PushError{
		Code:     code,
		Category: CategoryInvalidArgument,
		Message:  message,
		Cause:    cause,
	}
}

// IsInvalidArgument checks if error is an argument validation failure
func IsInvalidArgument(err error) bool {
	if perr, ok := err.(*PushError); ok {
		return perr.Category == CategoryInvalidArgument
	}
	return false
}
