package project

import (
	"errors"
	"fmt"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/task"
)

// ErrDuplicateTask is returned when a task ID is added to a project that
// already contains it.
var ErrDuplicateTask = fmt.Errorf("task already in project: %w", domain.ErrConflict)

// Project is the project aggregate: an identity, a name, and an ordered
// list of task references held by ID. A task ID appears at most once; the
// list preserves insertion order and is only ever exposed as a copy.
type Project struct {
	id    ID
	name  Name
	tasks []task.ID
}

// New constructs an empty Project. Zero-valued arguments are programmer
// errors and fail construction.
func New(id ID, name Name) (*Project, error) {
	if id.IsZero() {
		return nil, errors.New("project: id must not be zero")
	}
	if name.IsZero() {
		return nil, errors.New("project: name must not be zero")
	}
	return &Project{id: id, name: name}, nil
}

// ID returns the immutable identity.
func (p *Project) ID() ID { return p.id }

// Name returns the current project name.
func (p *Project) Name() Name { return p.name }

// Rename replaces the project name unconditionally.
func (p *Project) Rename(name Name) error {
	if name.IsZero() {
		return errors.New("project: name must not be zero")
	}
	p.name = name
	return nil
}

// AddTask appends a task reference, preserving insertion order. Adding an
// ID already present fails with ErrDuplicateTask and leaves the list
// untouched.
func (p *Project) AddTask(id task.ID) error {
	if id.IsZero() {
		return errors.New("project: task id must not be zero")
	}
	if p.Contains(id) {
		return ErrDuplicateTask
	}
	p.tasks = append(p.tasks, id)
	return nil
}

// Contains reports whether the project references the given task.
func (p *Project) Contains(id task.ID) bool {
	for _, t := range p.tasks {
		if t == id {
			return true
		}
	}
	return false
}

// Tasks returns a defensive copy of the task reference list in insertion
// order. Mutating the returned slice does not affect the project.
func (p *Project) Tasks() []task.ID {
	out := make([]task.ID, len(p.tasks))
	copy(out, p.tasks)
	return out
}

// Clone returns an independent copy with its own task list. Mutating the
// copy does not affect the original; stores exchange clones so callers never
// share aggregate state.
func (p *Project) Clone() *Project {
	c := *p
	if p.tasks != nil {
		c.tasks = make([]task.ID, len(p.tasks))
		copy(c.tasks, p.tasks)
	}
	return &c
}

// Equal reports identity equality.
func (p *Project) Equal(other *Project) bool {
	return other != nil && p.id == other.id
}

func (p *Project) String() string {
	return fmt.Sprintf("Project{id=%s, name=%s, tasks=%d}", p.id, p.name, len(p.tasks))
}
