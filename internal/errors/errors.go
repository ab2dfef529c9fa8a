package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewStorageUnavailableError creates an error for a store that cannot be opened or migrated
func NewStorageUnavailableError(path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorageUnavailable,
		Message: fmt.Sprintf("cannot open todo store: %s", path),
		Code:    "STORAGE_UNAVAILABLE",
		Cause:   cause,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewReadFailedError creates a new read error
func NewReadFailedError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeReadFailed,
		Message: fmt.Sprintf("read failed: %s", operation),
		Code:    "READ_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewWriteFailedError creates a new write error
func NewWriteFailedError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeWriteFailed,
		Message: fmt.Sprintf("write failed: %s", operation),
		Code:    "WRITE_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidPositionError creates an error for a position that is not a positive integer
func NewInvalidPositionError(raw string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidPosition,
		Message: fmt.Sprintf("invalid todo position %q: must be a positive integer", raw),
		Code:    "INVALID_POSITION",
		Context: map[string]interface{}{
			"value": raw,
		},
	}
}

// NewPositionNotFoundError creates an error for a position beyond the current list
func NewPositionNotFoundError(position int, count int) *AppError {
	return &AppError{
		Type:    ErrorTypePositionNotFound,
		Message: fmt.Sprintf("no todo at position %d (list has %d)", position, count),
		Code:    "POSITION_NOT_FOUND",
		Context: map[string]interface{}{
			"position": position,
			"count":    count,
		},
	}
}

// NewMissingArgumentError creates an error for a command verb without its argument
func NewMissingArgumentError(command string, argument string) *AppError {
	return &AppError{
		Type:    ErrorTypeMissingArgument,
		Message: fmt.Sprintf("%s of the %s argument needed", argument, command),
		Code:    "MISSING_ARGUMENT",
		Context: map[string]interface{}{
			"command":  command,
			"argument": argument,
		},
	}
}

// NewUsageError creates an error that ends the run after usage has been shown
func NewUsageError(reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeUsage,
		Message: reason,
		Code:    "USAGE",
		Context: make(map[string]interface{}),
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeInvalidPosition, ErrorTypePositionNotFound,
			ErrorTypeMissingArgument, ErrorTypeUsage:
			return appErr.Message
		case ErrorTypeStorageUnavailable, ErrorTypeReadFailed, ErrorTypeWriteFailed:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		default:
			return "An unexpected error occurred."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeInvalidPosition, ErrorTypePositionNotFound,
			ErrorTypeMissingArgument, ErrorTypeUsage:
			return false // user errors
		default:
			return true
		}
	}
	return true
}
