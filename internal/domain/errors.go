package domain

import (
	apperrors "task-planner/internal/errors"
	"task-planner/internal/validation"
)

// invalid lifts a field-level validation failure into the application error
// taxonomy, keeping the field errors as the cause.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*validation.ValidationError); ok {
		return apperrors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}
	return apperrors.NewValidationError(err.Error(), err)
}

// violation reports a rule broken by the current state of an entity.
func violation(field, message string) error {
	ve := validation.NewValidationError()
	ve.AddError(field, validation.ErrorTypeInvalidState, message, nil)
	return invalid(ve)
}
