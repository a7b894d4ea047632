package ports

import (
	"context"
	"fmt"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/project"
	"github.com/MariuszKam/Organizer/internal/domain/task"
	"github.com/MariuszKam/Organizer/internal/domain/user"
)

// Uniqueness violations reported by UserStore.Save.
var (
	// ErrUsernameTaken means another user (different ID) owns the username.
	ErrUsernameTaken = fmt.Errorf("username already exists: %w", domain.ErrConflict)

	// ErrEmailTaken means another user (different ID) owns the email.
	ErrEmailTaken = fmt.Errorf("email already exists: %w", domain.ErrConflict)
)

// UserStore is the persistence boundary for users. Implementations must keep
// the by-id, by-username, and by-email indices consistent on every write: a
// reader never observes the indices partially updated relative to each other.
type UserStore interface {
	// Save upserts by identity. Re-saving a user whose username and email
	// are unchanged is a no-op. When either value changed, the stale index
	// entries are removed before the new ones are inserted. Fails with
	// ErrUsernameTaken or ErrEmailTaken when a different user owns the
	// incoming value, leaving the store untouched.
	Save(ctx context.Context, u *user.User) error

	// Remove deletes the user from all indices by identity. Removing an
	// absent user is a no-op.
	Remove(ctx context.Context, u *user.User) error

	// FindByID returns the user or domain.ErrNotFound.
	FindByID(ctx context.Context, id user.ID) (*user.User, error)

	// FindByUsername returns the user or domain.ErrNotFound.
	FindByUsername(ctx context.Context, username user.Username) (*user.User, error)

	// FindByEmail returns the user or domain.ErrNotFound.
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)

	// ExistsByUsername reports whether any user owns the username.
	ExistsByUsername(ctx context.Context, username user.Username) (bool, error)

	// ExistsByEmail reports whether any user owns the email.
	ExistsByEmail(ctx context.Context, email user.Email) (bool, error)

	// FindAll returns a snapshot of all users. Mutating the returned slice
	// does not affect the store.
	FindAll(ctx context.Context) ([]*user.User, error)
}

// TaskStore is the persistence boundary for tasks, keyed by identity only.
type TaskStore interface {
	// Save upserts by identity.
	Save(ctx context.Context, t *task.Task) error

	// Remove deletes by identity; removing an absent task is a no-op.
	Remove(ctx context.Context, t *task.Task) error

	// FindByID returns the task or domain.ErrNotFound.
	FindByID(ctx context.Context, id task.ID) (*task.Task, error)

	// FindAll returns a snapshot of all tasks.
	FindAll(ctx context.Context) ([]*task.Task, error)
}

// ProjectStore is the persistence boundary for projects, keyed by identity
// only.
type ProjectStore interface {
	// Save upserts by identity.
	Save(ctx context.Context, p *project.Project) error

	// Remove deletes by identity; removing an absent project is a no-op.
	Remove(ctx context.Context, p *project.Project) error

	// FindByID returns the project or domain.ErrNotFound.
	FindByID(ctx context.Context, id project.ID) (*project.Project, error)

	// FindAll returns a snapshot of all projects.
	FindAll(ctx context.Context) ([]*project.Project, error)
}
