package dto

import "github.com/MariuszKam/Organizer/internal/ports"

// Request DTOs use pointer fields so that a field omitted from the JSON body
// stays nil all the way into the use-case command. The services report absent
// and malformed input differently, so the distinction must survive decoding.

// CreateUserRequest represents the JSON body for registering a new user.
type CreateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// Command converts the request to a use-case command.
func (r *CreateUserRequest) Command() *ports.CreateUserCommand {
	return &ports.CreateUserCommand{Username: r.Username, Email: r.Email}
}

// UpdateUserRequest represents the JSON body for updating an existing user.
// All fields are optional; nil means "do not change this field".
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Command converts the request to a use-case command for the given path id.
func (r *UpdateUserRequest) Command(id string) *ports.UpdateUserCommand {
	return &ports.UpdateUserCommand{ID: &id, Username: r.Username, Email: r.Email}
}

// LoginRequest represents the JSON body for resolving a user by credentials.
// Both fields are required and must identify the same user.
type LoginRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Command converts the request to a use-case command.
func (r *LoginRequest) Command() *ports.ReadUserForLoginCommand {
	return &ports.ReadUserForLoginCommand{Username: r.Username, Email: r.Email}
}

// CreateTaskRequest represents the JSON body for creating a new task.
// Priority, status, and username together select the creation variant: when
// all three are omitted the task starts with defaults and no assignee.
type CreateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	Username    *string `json:"username,omitempty"`
}

// IsBasic reports whether the request selects the defaulted creation variant.
func (r *CreateTaskRequest) IsBasic() bool {
	return r.Priority == nil && r.Status == nil && r.Username == nil
}

// BasicCommand converts the request to the defaulted creation command.
func (r *CreateTaskRequest) BasicCommand() *ports.CreateBasicTaskCommand {
	return &ports.CreateBasicTaskCommand{Name: r.Name, Description: r.Description}
}

// FullCommand converts the request to the explicit creation command.
func (r *CreateTaskRequest) FullCommand() *ports.CreateFullTaskCommand {
	return &ports.CreateFullTaskCommand{
		Name:        r.Name,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		Username:    r.Username,
	}
}

// UpdateTaskRequest represents the JSON body for updating an existing task.
// All fields are optional; nil means "do not change this field".
type UpdateTaskRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	Username    *string `json:"username,omitempty"`
}

// Command converts the request to a use-case command for the given path id.
func (r *UpdateTaskRequest) Command(id string) *ports.UpdateTaskCommand {
	return &ports.UpdateTaskCommand{
		ID:          &id,
		Name:        r.Name,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		Username:    r.Username,
	}
}

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Name *string `json:"name"`
}

// Command converts the request to a use-case command.
func (r *CreateProjectRequest) Command() *ports.CreateProjectCommand {
	return &ports.CreateProjectCommand{Name: r.Name}
}

// UpdateProjectRequest represents the JSON body for renaming a project.
type UpdateProjectRequest struct {
	Name *string `json:"name,omitempty"`
}

// Command converts the request to a use-case command for the given path id.
func (r *UpdateProjectRequest) Command(id string) *ports.UpdateProjectCommand {
	return &ports.UpdateProjectCommand{ID: &id, Name: r.Name}
}

// AddProjectTaskRequest represents the JSON body for referencing an existing
// task from a project.
type AddProjectTaskRequest struct {
	TaskID *string `json:"task_id"`
}

// Command converts the request to a use-case command for the given project id.
func (r *AddProjectTaskRequest) Command(projectID string) *ports.AddTaskToProjectCommand {
	return &ports.AddTaskToProjectCommand{ProjectID: &projectID, TaskID: r.TaskID}
}
