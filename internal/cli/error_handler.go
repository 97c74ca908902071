package cli

import (
	"fmt"
	"net/http"

	"cloclify/internal/errors"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle passes structured errors through unchanged so the top level can
// map them to exit codes, and wraps anything else with operation context.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleStop rewrites the 404 the service answers when nothing is running
// into a friendly message; everything else goes through Handle.
func (eh *ErrorHandler) HandleStop(err error) error {
	if status, ok := errors.StatusCode(err); ok && status == http.StatusNotFound {
		return errors.NewAPIError("PATCH", "time-entries", status,
			"no time entry is currently running")
	}
	return eh.Handle("stop time entry", err)
}
