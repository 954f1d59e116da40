package validation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MinNameLength is the shortest accepted project or member name.
const MinNameLength = 3

var defaultValidator = NewValidator()

// ValidateName checks a project or member name and returns the trimmed value.
// label is the human-facing prefix, e.g. "project name".
func ValidateName(field, label, name string) (string, error) {
	ve := NewValidationError()
	if !defaultValidator.IsNonEmptyString(name) {
		ve.AddError(field, ErrorTypeRequired, fmt.Sprintf("%s must be specified", label), name)
		return "", ve
	}

	trimmed := defaultValidator.TrimAndValidateString(name)
	if !defaultValidator.HasMinLength(trimmed, MinNameLength) {
		ve.AddError(field, ErrorTypeInvalidLength,
			fmt.Sprintf("%s must contain at least three characters", label), trimmed)
		return "", ve
	}
	return trimmed, nil
}

// ValidateTitle checks a task title and returns the trimmed value.
func ValidateTitle(title string) (string, error) {
	if !defaultValidator.IsNonEmptyString(title) {
		ve := NewValidationError()
		ve.AddError("title", ErrorTypeRequired, "task title must be specified", title)
		return "", ve
	}
	return defaultValidator.TrimAndValidateString(title), nil
}

// ValidateDueDate rejects due dates whose calendar date precedes createdAt's.
// The returned value is the due date truncated to midnight UTC.
func ValidateDueDate(dueDate, createdAt time.Time) (time.Time, error) {
	if !defaultValidator.IsOnOrAfterDate(dueDate, createdAt) {
		ve := NewValidationError()
		ve.AddError("due_date", ErrorTypeInvalidRange, "task due date cannot be in the past", dueDate)
		return time.Time{}, ve
	}
	return TruncateToDate(dueDate), nil
}

// ValidateID rejects the nil UUID.
func ValidateID(field, message string, id uuid.UUID) error {
	if !defaultValidator.IsValidID(id) {
		ve := NewValidationError()
		ve.AddError(field, ErrorTypeRequired, message, id)
		return ve
	}
	return nil
}

// ValidateEmail checks a raw address and returns its trimmed form.
func ValidateEmail(raw string) (string, error) {
	ve := NewValidationError()
	if !defaultValidator.IsNonEmptyString(raw) {
		ve.AddError("email", ErrorTypeRequired, "email address must be provided", raw)
		return "", ve
	}

	normalized := defaultValidator.TrimAndValidateString(raw)
	if !defaultValidator.IsValidEmail(normalized) {
		ve.AddError("email", ErrorTypeInvalidFormat, fmt.Sprintf("'%s' is not a valid email address", raw), raw)
		return "", ve
	}
	return normalized, nil
}
