package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"Conflict", ErrorTypeConflict, "conflict"},
		{"Storage", ErrorTypeStorage, "storage"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Timeout", ErrorTypeTimeout, "timeout"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeValidation,
				Message: "invalid input",
			},
			expected: "validation: invalid input",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeStorage,
				Message: "write failed",
				Cause:   errors.New("disk full"),
			},
			expected: "storage: write failed (caused by: disk full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_UnwrapAndIs(t *testing.T) {
	cause := errors.New("root cause")
	err := NewStorageError("save document", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !errors.Is(err, &AppError{Type: ErrorTypeStorage, Code: "STORAGE_ERROR"}) {
		t.Error("errors.Is should match an AppError with the same type and code")
	}
	if errors.Is(err, &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}) {
		t.Error("errors.Is should not match an AppError of another type")
	}
}

func TestAppError_Context(t *testing.T) {
	err := &AppError{Type: ErrorTypeConflict}
	err.WithContext("email", "a@x.com")
	value, ok := err.Context["email"]
	if !ok || value != "a@x.com" {
		t.Errorf("WithContext(email) stored %v, %v", value, ok)
	}
}
