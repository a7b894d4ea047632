package ports

import (
	"context"

	"github.com/MariuszKam/Organizer/internal/domain/project"
	"github.com/MariuszKam/Organizer/internal/domain/task"
	"github.com/MariuszKam/Organizer/internal/domain/user"
)

// Use-case ports, one per (entity, operation). Implemented by the
// application layer; called by inbound adapters. Every method returns
// either its success payload or exactly one error from the closed set
// documented in internal/app; failures never leave the store partially
// updated.

// CreateUserUseCase handles user creation.
type CreateUserUseCase interface {
	Handle(ctx context.Context, cmd *CreateUserCommand) (user.ID, error)
}

// ReadUserUseCase handles user lookups.
type ReadUserUseCase interface {
	// ByID resolves a user by identity.
	ByID(ctx context.Context, cmd *ReadUserByIDCommand) (*user.User, error)

	// ForLogin requires both username and email, resolves each, and
	// fails unless both identify the same user.
	ForLogin(ctx context.Context, cmd *ReadUserForLoginCommand) (*user.User, error)

	// List returns a snapshot of all users.
	List(ctx context.Context) ([]*user.User, error)
}

// UpdateUserUseCase handles field-wise optional user updates.
type UpdateUserUseCase interface {
	Handle(ctx context.Context, cmd *UpdateUserCommand) (user.ID, error)
}

// DeleteUserUseCase handles idempotency-checked user deletion.
type DeleteUserUseCase interface {
	Handle(ctx context.Context, cmd *DeleteUserCommand) (user.ID, error)
}

// CreateTaskUseCase handles task creation in its basic and full variants.
type CreateTaskUseCase interface {
	HandleBasic(ctx context.Context, cmd *CreateBasicTaskCommand) (task.ID, error)
	HandleFull(ctx context.Context, cmd *CreateFullTaskCommand) (task.ID, error)
}

// ReadTaskUseCase handles task lookups.
type ReadTaskUseCase interface {
	ByID(ctx context.Context, cmd *ReadTaskCommand) (*task.Task, error)
	List(ctx context.Context) ([]*task.Task, error)
}

// UpdateTaskUseCase handles field-wise optional task updates.
type UpdateTaskUseCase interface {
	Handle(ctx context.Context, cmd *UpdateTaskCommand) (task.ID, error)
}

// DeleteTaskUseCase handles task deletion.
type DeleteTaskUseCase interface {
	Handle(ctx context.Context, cmd *DeleteTaskCommand) (task.ID, error)
}

// CreateProjectUseCase handles project creation.
type CreateProjectUseCase interface {
	Handle(ctx context.Context, cmd *CreateProjectCommand) (project.ID, error)
}

// ReadProjectUseCase handles project lookups.
type ReadProjectUseCase interface {
	ByID(ctx context.Context, cmd *ReadProjectCommand) (*project.Project, error)
	List(ctx context.Context) ([]*project.Project, error)
}

// UpdateProjectUseCase handles project renames.
type UpdateProjectUseCase interface {
	Handle(ctx context.Context, cmd *UpdateProjectCommand) (project.ID, error)
}

// DeleteProjectUseCase handles project deletion.
type DeleteProjectUseCase interface {
	Handle(ctx context.Context, cmd *DeleteProjectCommand) (project.ID, error)
}

// AddTaskToProjectUseCase references an existing task from a project.
type AddTaskToProjectUseCase interface {
	Handle(ctx context.Context, cmd *AddTaskToProjectCommand) (project.ID, error)
}
