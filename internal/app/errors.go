// Package app hosts the use-case services that orchestrate the domain
// aggregates behind the ports layer. Every service validates its command
// before touching a store, and every failure it can produce is one of the
// sentinel errors declared here. Each sentinel wraps a domain category, so
// callers can match a specific outcome with errors.Is(err, app.ErrEmailNotFound)
// or a whole class with errors.Is(err, domain.ErrNotFound).
package app

import (
	"fmt"

	"github.com/MariuszKam/Organizer/internal/domain"
)

var (
	// ErrMissingCommand is returned when a service receives a nil command.
	ErrMissingCommand = fmt.Errorf("missing command: %w", domain.ErrMissing)

	// ErrNoFieldsProvided is returned by update services when the command
	// carries no updatable fields at all.
	ErrNoFieldsProvided = fmt.Errorf("no fields provided: %w", domain.ErrMissing)

	// ErrNoChanges is returned when an update supplies only values equal to
	// the current state of the aggregate.
	ErrNoChanges = fmt.Errorf("no changes: %w", domain.ErrNoChange)
)

// User outcomes.
var (
	ErrMissingUserID   = fmt.Errorf("missing user id: %w", domain.ErrMissing)
	ErrMissingUsername = fmt.Errorf("missing username: %w", domain.ErrMissing)
	ErrMissingEmail    = fmt.Errorf("missing email: %w", domain.ErrMissing)

	ErrInvalidUserIDFormat   = fmt.Errorf("invalid user id format: %w", domain.ErrInvalidFormat)
	ErrInvalidUsernameFormat = fmt.Errorf("invalid username format: %w", domain.ErrInvalidFormat)
	ErrInvalidEmailFormat    = fmt.Errorf("invalid email format: %w", domain.ErrInvalidFormat)

	ErrUsernameAlreadyExists = fmt.Errorf("username already exists: %w", domain.ErrConflict)
	ErrEmailAlreadyExists    = fmt.Errorf("email already exists: %w", domain.ErrConflict)

	ErrUserNotFound     = fmt.Errorf("user not found: %w", domain.ErrNotFound)
	ErrUsernameNotFound = fmt.Errorf("username not found: %w", domain.ErrNotFound)
	ErrEmailNotFound    = fmt.Errorf("email not found: %w", domain.ErrNotFound)

	// ErrNoParametersProvided is the login-specific variant of a fully empty
	// command: neither username nor email was supplied.
	ErrNoParametersProvided = fmt.Errorf("no parameters provided: %w", domain.ErrMissing)

	// ErrLoginMismatch is returned when the username and email of a login
	// lookup resolve to two different users.
	ErrLoginMismatch = fmt.Errorf("username and email belong to different users: %w", domain.ErrMismatch)
)

// Task outcomes.
var (
	ErrMissingTaskID          = fmt.Errorf("missing task id: %w", domain.ErrMissing)
	ErrMissingTaskName        = fmt.Errorf("missing task name: %w", domain.ErrMissing)
	ErrMissingTaskDescription = fmt.Errorf("missing task description: %w", domain.ErrMissing)
	ErrMissingTaskPriority    = fmt.Errorf("missing task priority: %w", domain.ErrMissing)
	ErrMissingTaskStatus      = fmt.Errorf("missing task status: %w", domain.ErrMissing)

	ErrInvalidTaskIDFormat          = fmt.Errorf("invalid task id format: %w", domain.ErrInvalidFormat)
	ErrInvalidTaskNameFormat        = fmt.Errorf("invalid task name format: %w", domain.ErrInvalidFormat)
	ErrInvalidTaskDescriptionFormat = fmt.Errorf("invalid task description format: %w", domain.ErrInvalidFormat)
	ErrInvalidTaskPriorityFormat    = fmt.Errorf("invalid task priority format: %w", domain.ErrInvalidFormat)
	ErrInvalidTaskStatusFormat      = fmt.Errorf("invalid task status format: %w", domain.ErrInvalidFormat)

	ErrTaskNotFound = fmt.Errorf("task not found: %w", domain.ErrNotFound)
)

// Project outcomes.
var (
	ErrMissingProjectID   = fmt.Errorf("missing project id: %w", domain.ErrMissing)
	ErrMissingProjectName = fmt.Errorf("missing project name: %w", domain.ErrMissing)

	ErrInvalidProjectIDFormat   = fmt.Errorf("invalid project id format: %w", domain.ErrInvalidFormat)
	ErrInvalidProjectNameFormat = fmt.Errorf("invalid project name format: %w", domain.ErrInvalidFormat)

	ErrProjectNotFound = fmt.Errorf("project not found: %w", domain.ErrNotFound)

	ErrTaskAlreadyInProject = fmt.Errorf("task already in project: %w", domain.ErrConflict)
)
