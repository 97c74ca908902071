package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Exit codes reported to the shell, one per error category.
const (
	ExitCodeUsage         = 2
	ExitCodeConfiguration = 3
	ExitCodeAPI           = 4
	ExitCodeNetwork       = 5
	ExitCodeUnknown       = 1
)

// NewConfigurationError creates a new configuration error
func NewConfigurationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: message,
		Code:    "CONFIGURATION_ERROR",
		Context: make(map[string]interface{}),
	}
}

// NewUsageError creates a new usage error for invalid command-line input
func NewUsageError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeUsage,
		Message: message,
		Code:    "USAGE_ERROR",
		Context: make(map[string]interface{}),
	}
}

// NewAPIError creates a new error for a request the remote service rejected.
// The HTTP status and request coordinates are kept in the error context.
func NewAPIError(method string, path string, status int, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeAPI,
		Message: fmt.Sprintf("API %s %s failed with status %d: %s", method, path, status, message),
		Code:    "API_ERROR",
		Context: map[string]interface{}{
			"method": method,
			"path":   path,
			"status": status,
		},
	}
}

// NewNetworkError creates a new error for a transport-level failure
func NewNetworkError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeNetwork,
		Message: fmt.Sprintf("network failure during %s", operation),
		Code:    "NETWORK_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
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

// StatusCode returns the HTTP status carried by an API error
func StatusCode(err error) (int, bool) {
	appErr, ok := AsAppError(err)
	if !ok || !appErr.IsType(ErrorTypeAPI) {
		return 0, false
	}
	status, ok := appErr.GetContext("status")
	if !ok {
		return 0, false
	}
	code, ok := status.(int)
	return code, ok
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeConfiguration, ErrorTypeUsage:
			return appErr.Message
		case ErrorTypeAPI:
			if status, ok := StatusCode(err); ok && status == http.StatusUnauthorized {
				return "authentication failed: the service rejected the API key (check CLOCKIFY_API_KEY)"
			}
			return appErr.Message
		case ErrorTypeNetwork:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		default:
			return appErr.Message
		}
	}
	return err.Error()
}

// ExitCode maps an error to the process exit status for that category
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	appErr, ok := AsAppError(err)
	if !ok {
		return ExitCodeUnknown
	}
	switch appErr.Type {
	case ErrorTypeUsage:
		return ExitCodeUsage
	case ErrorTypeConfiguration:
		return ExitCodeConfiguration
	case ErrorTypeAPI:
		return ExitCodeAPI
	case ErrorTypeNetwork:
		return ExitCodeNetwork
	default:
		return ExitCodeUnknown
	}
}
