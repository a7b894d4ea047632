// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/MariuszKam/Organizer/internal/domain/project"
	"github.com/MariuszKam/Organizer/internal/domain/task"
	"github.com/MariuszKam/Organizer/internal/domain/user"
)

// IDResponse carries the identity of a created, updated, or deleted entity.
type IDResponse struct {
	ID string `json:"id"`
}

// UserResponse represents a single user in HTTP responses. The email is the
// full canonical address; masking applies to logs, not API payloads.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserListResponse represents a list of users in HTTP responses.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:       u.ID().String(),
		Username: u.Username().String(),
		Email:    u.Email().Address(),
	}
}

// ToUserListResponse converts a slice of domain Users to an HTTP list
// response DTO.
func ToUserListResponse(users []*user.User) UserListResponse {
	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = ToUserResponse(u)
	}
	return UserListResponse{Users: items, Count: len(items)}
}

// TaskResponse represents a single task in HTTP responses. AssigneeID is
// omitted for unassigned tasks.
type TaskResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID().String(),
		Name:        t.Name().String(),
		Description: t.Description().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
	}
	if assignee := t.Assignee(); assignee != nil {
		s := assignee.String()
		resp.AssigneeID = &s
	}
	return resp
}

// ToTaskListResponse converts a slice of domain Tasks to an HTTP list
// response DTO.
func ToTaskListResponse(tasks []*task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = ToTaskResponse(t)
	}
	return TaskListResponse{Tasks: items, Count: len(items)}
}

// ProjectResponse represents a single project in HTTP responses. TaskIDs
// preserves insertion order.
type ProjectResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	TaskIDs []string `json:"task_ids"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	taskIDs := make([]string, len(p.Tasks()))
	for i, id := range p.Tasks() {
		taskIDs[i] = id.String()
	}
	return ProjectResponse{
		ID:      p.ID().String(),
		Name:    p.Name().String(),
		TaskIDs: taskIDs,
	}
}

// ToProjectListResponse converts a slice of domain Projects to an HTTP list
// response DTO.
func ToProjectListResponse(projects []*project.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		items[i] = ToProjectResponse(p)
	}
	return ProjectListResponse{Projects: items, Count: len(items)}
}
