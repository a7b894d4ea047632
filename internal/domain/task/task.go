package task

import (
	"errors"
	"fmt"

	"github.com/MariuszKam/Organizer/internal/domain/user"
)

// Task is the task aggregate. Identity is immutable after construction.
// Unlike User, the Change* operations replace field values unconditionally:
// a replacement equal to the current value is accepted. The assignee is a
// non-owning reference held by user ID; the task does not track the user's
// lifecycle, and deleting a user leaves the reference dangling.
type Task struct {
	id          ID
	name        Name
	description Description
	priority    Priority
	status      Status
	assignee    *user.ID
}

// New constructs a Task with the default priority (MEDIUM), default status
// (TODO), and no assignee. Zero-valued arguments are programmer errors and
// fail construction.
func New(id ID, name Name, description Description) (*Task, error) {
	if id.IsZero() {
		return nil, errors.New("task: id must not be zero")
	}
	if name.IsZero() {
		return nil, errors.New("task: name must not be zero")
	}
	if description.IsZero() {
		return nil, errors.New("task: description must not be zero")
	}
	return &Task{
		id:          id,
		name:        name,
		description: description,
		priority:    DefaultPriority,
		status:      DefaultStatus,
	}, nil
}

// NewFull constructs a Task with explicit priority, status, and assignee.
func NewFull(id ID, name Name, description Description, priority Priority, status Status, assignee user.ID) (*Task, error) {
	t, err := New(id, name, description)
	if err != nil {
		return nil, err
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("task: invalid priority %q", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("task: invalid status %q", status)
	}
	if assignee.IsZero() {
		return nil, errors.New("task: assignee must not be zero")
	}
	t.priority = priority
	t.status = status
	t.assignee = &assignee
	return t, nil
}

// ID returns the immutable identity.
func (t *Task) ID() ID { return t.id }

// Name returns the current task name.
func (t *Task) Name() Name { return t.name }

// Description returns the current description.
func (t *Task) Description() Description { return t.description }

// Priority returns the current priority.
func (t *Task) Priority() Priority { return t.priority }

// Status returns the current status.
func (t *Task) Status() Status { return t.status }

// Assignee returns the assigned user's ID, or nil when unassigned. The
// returned pointer is a copy; mutating it does not affect the task.
func (t *Task) Assignee() *user.ID {
	if t.assignee == nil {
		return nil
	}
	id := *t.assignee
	return &id
}

// ChangeName replaces the task name unconditionally.
func (t *Task) ChangeName(name Name) error {
	if name.IsZero() {
		return errors.New("task: name must not be zero")
	}
	t.name = name
	return nil
}

// ChangeDescription replaces the description unconditionally.
func (t *Task) ChangeDescription(description Description) error {
	if description.IsZero() {
		return errors.New("task: description must not be zero")
	}
	t.description = description
	return nil
}

// ChangePriority replaces the priority unconditionally.
func (t *Task) ChangePriority(priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("task: invalid priority %q", priority)
	}
	t.priority = priority
	return nil
}

// ChangeStatus replaces the status unconditionally.
func (t *Task) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("task: invalid status %q", status)
	}
	t.status = status
	return nil
}

// AssignUser sets the assignee reference unconditionally.
func (t *Task) AssignUser(id user.ID) error {
	if id.IsZero() {
		return errors.New("task: assignee must not be zero")
	}
	t.assignee = &id
	return nil
}

// Clone returns an independent copy, including the assignee reference.
// Mutating the copy does not affect the original; stores exchange clones so
// callers never share aggregate state.
func (t *Task) Clone() *Task {
	c := *t
	if t.assignee != nil {
		id := *t.assignee
		c.assignee = &id
	}
	return &c
}

// Equal reports identity equality.
func (t *Task) Equal(other *Task) bool {
	return other != nil && t.id == other.id
}

func (t *Task) String() string {
	return fmt.Sprintf("Task{id=%s, name=%s, priority=%s, status=%s}", t.id, t.name, t.priority, t.status)
}
