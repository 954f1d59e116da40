package cli

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"task-planner/internal/errors"
)

// parseID parses a command line identifier
func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, errors.NewInvalidInputError(field, raw, "not a valid identifier")
	}
	return id, nil
}

// parseDate parses a command line due date as midnight UTC
func parseDate(field, raw, layout string) (time.Time, error) {
	date, err := time.ParseInLocation(layout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError(field, raw, "expected a date formatted as "+layout)
	}
	return date, nil
}
