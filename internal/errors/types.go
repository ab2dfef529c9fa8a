package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeStorageUnavailable
	ErrorTypeReadFailed
	ErrorTypeWriteFailed
	ErrorTypeInvalidPosition
	ErrorTypePositionNotFound
	ErrorTypeMissingArgument
	ErrorTypeUsage
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeStorageUnavailable:
		return "storage_unavailable"
	case ErrorTypeReadFailed:
		return "read_failed"
	case ErrorTypeWriteFailed:
		return "write_failed"
	case ErrorTypeInvalidPosition:
		return "invalid_position"
	case ErrorTypePositionNotFound:
		return "position_not_found"
	case ErrorTypeMissingArgument:
		return "missing_argument"
	case ErrorTypeUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error type
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}
