package ports

// Commands are the plain-data inputs of the use-case boundary. Fields are
// pointers so an absent input (nil) is distinguishable from a present but
// malformed one; use cases report the two differently.

// CreateUserCommand creates a user from raw username and email text.
type CreateUserCommand struct {
	Username *string
	Email    *string
}

// ReadUserByIDCommand looks a user up by identity.
type ReadUserByIDCommand struct {
	ID *string
}

// ReadUserForLoginCommand resolves username and email independently and
// requires both to identify the same user.
type ReadUserForLoginCommand struct {
	Username *string
	Email    *string
}

// UpdateUserCommand replaces any provided fields of an existing user.
// Absent fields are carried over unchanged.
type UpdateUserCommand struct {
	ID       *string
	Username *string
	Email    *string
}

// DeleteUserCommand deletes a user by identity.
type DeleteUserCommand struct {
	ID *string
}

// CreateBasicTaskCommand creates a task with default priority and status
// and no assignee.
type CreateBasicTaskCommand struct {
	Name        *string
	Description *string
}

// CreateFullTaskCommand creates a task with explicit priority, status, and
// an assignee resolved by username.
type CreateFullTaskCommand struct {
	Name        *string
	Description *string
	Priority    *string
	Status      *string
	Username    *string
}

// ReadTaskCommand looks a task up by identity.
type ReadTaskCommand struct {
	ID *string
}

// UpdateTaskCommand replaces any provided fields of an existing task.
// Absent fields are carried over unchanged.
type UpdateTaskCommand struct {
	ID          *string
	Name        *string
	Description *string
	Priority    *string
	Status      *string
	Username    *string
}

// DeleteTaskCommand deletes a task by identity.
type DeleteTaskCommand struct {
	ID *string
}

// CreateProjectCommand creates an empty project from a raw name.
type CreateProjectCommand struct {
	Name *string
}

// ReadProjectCommand looks a project up by identity.
type ReadProjectCommand struct {
	ID *string
}

// UpdateProjectCommand renames an existing project. The name is optional to
// keep the field-wise update shape; an absent name fails with the
// no-fields-provided error.
type UpdateProjectCommand struct {
	ID   *string
	Name *string
}

// DeleteProjectCommand deletes a project by identity.
type DeleteProjectCommand struct {
	ID *string
}

// AddTaskToProjectCommand references an existing task into a project's
// ordered task list.
type AddTaskToProjectCommand struct {
	ProjectID *string
	TaskID    *string
}
