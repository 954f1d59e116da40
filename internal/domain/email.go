package domain

import (
	"task-planner/internal/validation"
)

// Email is an immutable, validated email address. The zero value is not a
// valid address; obtain one through NewEmail.
type Email struct {
	value string
}

// NewEmail trims raw and validates it against the address pattern.
func NewEmail(raw string) (Email, error) {
	normalized, err := validation.ValidateEmail(raw)
	if err != nil {
		return Email{}, invalid(err)
	}
	return Email{value: normalized}, nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}

// Equal compares two addresses by their normalized value.
func (e Email) Equal(other Email) bool {
	return e.value == other.value
}
