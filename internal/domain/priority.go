package domain

import (
	"strings"

	"task-tracker/internal/errors"
)

// Priority is the urgency label of a bug fix. Values can only be obtained
// from the predefined levels or ParsePriority. The zero value is
// PriorityMedium, which is also the default for new bug fixes.
//
// Priority carries no ordering policy; it is display metadata only.
type Priority struct {
	rank int8
}

var (
	PriorityLow      = Priority{rank: -1}
	PriorityMedium   = Priority{}
	PriorityHigh     = Priority{rank: 1}
	PriorityCritical = Priority{rank: 2}
)

// Priorities returns every priority level from lowest to highest.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

// String returns the display name of the priority.
func (p Priority) String() string {
	switch p.rank {
	case -1:
		return "Low"
	case 1:
		return "High"
	case 2:
		return "Critical"
	default:
		return "Medium"
	}
}

// ParsePriority converts a case-insensitive level name into a Priority.
// An empty name yields PriorityMedium.
func ParsePriority(name string) (Priority, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return PriorityMedium, nil
	}
	for _, p := range Priorities() {
		if strings.EqualFold(p.String(), trimmed) {
			return p, nil
		}
	}
	return PriorityMedium, errors.NewInvalidInputError("priority", name, "must be one of low, medium, high, critical")
}
