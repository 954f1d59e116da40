package cli

import (
	"context"
	"errors"
	"testing"

	apperrors "task-planner/internal/errors"
	"task-planner/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "create project",
			err:       apperrors.NewValidationError("project name must be specified", nil),
			expected:  "failed to create project: project name must be specified",
		},
		{
			name:      "Not found error",
			operation: "show task",
			err:       apperrors.NewNotFoundError("task", "123"),
			expected:  "failed to show task: task '123' does not exist",
		},
		{
			name:      "Conflict error",
			operation: "assign task",
			err:       apperrors.NewConflictError("member must belong to the project before assignment"),
			expected:  "failed to assign task: member must belong to the project before assignment",
		},
		{
			name:      "Storage error",
			operation: "list projects",
			err:       apperrors.NewStorageError("load document", errors.New("disk full")),
			expected:  "failed to list projects: A storage error occurred: storage operation failed: load document",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      apperrors.NewValidationError("invalid input", nil),
			expected: "invalid input",
		},
		{
			name:     "Not found error",
			err:      apperrors.NewNotFoundError("member", "123"),
			expected: "member '123' does not exist",
		},
		{
			name:     "Timeout error",
			err:      apperrors.NewTimeoutError("load", nil),
			expected: "The operation timed out. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_IsFatal(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"validation", apperrors.NewValidationError("bad", nil), false},
		{"not found", apperrors.NewNotFoundError("task", "1"), false},
		{"conflict", apperrors.NewConflictError("taken"), false},
		{"invalid input", apperrors.NewInvalidInputError("status", "x", "unknown"), false},
		{"field validation", &validation.ValidationError{Errors: []validation.FieldError{{Field: "name"}}}, false},
		{"storage", apperrors.NewStorageError("save", nil), true},
		{"timeout", apperrors.NewTimeoutError("save", context.DeadlineExceeded), false},
		{"plain", errors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eh.IsFatal(tt.err); got != tt.expected {
				t.Errorf("ErrorHandler.IsFatal() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorHandler_IsValidationError(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "AppError validation",
			err:      apperrors.NewValidationError("invalid input", nil),
			expected: true,
		},
		{
			name: "Field validation error",
			err: &validation.ValidationError{
				Errors: []validation.FieldError{
					{Field: "test", Message: "invalid"},
				},
			},
			expected: true,
		},
		{
			name:     "Storage error",
			err:      apperrors.NewStorageError("insert", nil),
			expected: false,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.IsValidationError(tt.err)
			if result != tt.expected {
				t.Errorf("ErrorHandler.IsValidationError() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestErrorHandler_IsStorageError(t *testing.T) {
	eh := NewErrorHandler()

	if !eh.IsStorageError(apperrors.NewStorageError("load", nil)) {
		t.Errorf("IsStorageError() = false for a storage error")
	}
	if eh.IsStorageError(apperrors.NewNotFoundError("project", "1")) {
		t.Errorf("IsStorageError() = true for a not found error")
	}
	if eh.IsStorageError(errors.New("plain")) {
		t.Errorf("IsStorageError() = true for a plain error")
	}
}

func TestErrorHandler_HandleValidationError(t *testing.T) {
	eh := NewErrorHandler()

	validationErr := &validation.ValidationError{
		Errors: []validation.FieldError{
			{Field: "test", Message: "test validation error"},
		},
	}

	result := eh.Handle("test operation", validationErr)
	expected := "failed to test operation: test validation error"

	if result.Error() != expected {
		t.Errorf("ErrorHandler.Handle() with validation error = %v, want %v", result.Error(), expected)
	}
}
