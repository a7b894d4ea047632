package task

import (
	"fmt"

	"github.com/MariuszKam/Organizer/internal/domain"
)

// Priority represents the urgency of a Task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// DefaultPriority applies when a task is constructed without an explicit
// priority.
const DefaultPriority = PriorityMedium

// ParsePriority converts raw text to a Priority. Matching is exact; returns
// an error wrapping domain.ErrInvalidFormat for unknown values.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(raw)
	if !p.IsValid() {
		return "", fmt.Errorf("task priority %q: %w", raw, domain.ErrInvalidFormat)
	}
	return p, nil
}

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string { return string(p) }
