package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// emailPattern: non-space non-@ run, '@', non-space non-@ run, '.', non-space non-@ run.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator provides common validation utilities
type Validator struct {
	emailRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		emailRegex: emailPattern,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// HasMinLength checks that the trimmed string has at least min characters.
// Length is counted in runes so non-latin names are measured correctly.
func (v *Validator) HasMinLength(s string, min int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= min
}

// IsValidEmail checks an already trimmed address against the email pattern
func (v *Validator) IsValidEmail(s string) bool {
	return v.emailRegex.MatchString(s)
}

// IsValidID reports whether id is set (not the nil UUID)
func (v *Validator) IsValidID(id uuid.UUID) bool {
	return id != uuid.Nil
}

// IsOnOrAfterDate compares calendar dates only: the time of day of either
// value is ignored.
func (v *Validator) IsOnOrAfterDate(date, reference time.Time) bool {
	return !TruncateToDate(date).Before(TruncateToDate(reference))
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TruncateToDate takes the year, month and day as seen in t's location and
// returns midnight of that date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
