package task

import (
	"fmt"

	"github.com/MariuszKam/Organizer/internal/domain"
)

// Status represents the completion state of a Task.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// DefaultStatus applies when a task is constructed without an explicit
// status.
const DefaultStatus = StatusTodo

// ParseStatus converts raw text to a Status. Matching is exact; returns an
// error wrapping domain.ErrInvalidFormat for unknown values.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("task status %q: %w", raw, domain.ErrInvalidFormat)
	}
	return s, nil
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string { return string(s) }
