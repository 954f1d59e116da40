package cli

import (
	"fmt"

	"task-planner/internal/errors"
	"task-planner/internal/logging"
	"task-planner/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	eh.log(operation, err)

	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	return err
}

// IsFatal reports whether err must end an interactive session. Storage
// failures and unexpected errors are fatal. Validation, not-found, conflict,
// bad input and timeouts are reported and the session goes on.
func (eh *ErrorHandler) IsFatal(err error) bool {
	if eh.IsStorageError(err) {
		return true
	}
	if eh.IsValidationError(err) || errors.IsErrorType(err, errors.ErrorTypeTimeout) {
		return false
	}
	return !errors.IsDomainFailure(err)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

func (eh *ErrorHandler) log(operation string, err error) {
	if errors.ShouldLogError(err) {
		logging.Debugf("cli: %s failed [%s]: %v\n", operation, errors.GetErrorCode(err), err)
	}
}
