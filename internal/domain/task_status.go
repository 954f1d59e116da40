package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TaskStatus is the lifecycle state of a task. The numeric values are the
// persisted status codes.
type TaskStatus int

const (
	StatusPlanned TaskStatus = iota
	StatusInProgress
	StatusCompleted
	StatusArchived
)

// AllStatuses lists every status in code order.
var AllStatuses = []TaskStatus{StatusPlanned, StatusInProgress, StatusCompleted, StatusArchived}

// String returns the display name of the status.
func (s TaskStatus) String() string {
	switch s {
	case StatusPlanned:
		return "Planned"
	case StatusInProgress:
		return "InProgress"
	case StatusCompleted:
		return "Completed"
	case StatusArchived:
		return "Archived"
	default:
		return fmt.Sprintf("TaskStatus(%d)", int(s))
	}
}

// IsValid reports whether s is one of the defined statuses.
func (s TaskStatus) IsValid() bool {
	return s >= StatusPlanned && s <= StatusArchived
}

// IsOpen reports whether work on a task in this status is still pending.
func (s TaskStatus) IsOpen() bool {
	return s == StatusPlanned || s == StatusInProgress
}

// ParseTaskStatus accepts a status name (case-insensitive, with or without
// an underscore or dash in "in progress") or its numeric code.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	trimmed := strings.TrimSpace(raw)
	if code, err := strconv.Atoi(trimmed); err == nil {
		s := TaskStatus(code)
		if !s.IsValid() {
			return 0, fmt.Errorf("unknown task status code: %d", code)
		}
		return s, nil
	}

	normalized := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(trimmed))
	switch normalized {
	case "planned":
		return StatusPlanned, nil
	case "inprogress":
		return StatusInProgress, nil
	case "completed":
		return StatusCompleted, nil
	case "archived":
		return StatusArchived, nil
	default:
		return 0, fmt.Errorf("unknown task status: %q", raw)
	}
}
