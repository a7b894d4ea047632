// Package handlers provides the HTTP handlers of the inbound adapter. Each
// handler decodes the request into a use-case command, delegates to the
// application layer, and maps the result to a JSON response.
package handlers

import (
	"net/http"

	"github.com/MariuszKam/Organizer/internal/adapters/http/dto"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// ProjectHandler handles HTTP requests for project CRUD operations and
// project-task membership.
type ProjectHandler struct {
	create  ports.CreateProjectUseCase
	read    ports.ReadProjectUseCase
	update  ports.UpdateProjectUseCase
	delete  ports.DeleteProjectUseCase
	addTask ports.AddTaskToProjectUseCase
}

// NewProjectHandler creates a new ProjectHandler with the given use-case ports.
func NewProjectHandler(create ports.CreateProjectUseCase, read ports.ReadProjectUseCase, update ports.UpdateProjectUseCase, del ports.DeleteProjectUseCase, addTask ports.AddTaskToProjectUseCase) *ProjectHandler {
	return &ProjectHandler{create: create, read: read, update: update, delete: del, addTask: addTask}
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.read.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	id, err := h.create.Handle(r.Context(), req.Command())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.IDResponse{ID: id.String()})
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	p, err := h.read.ByID(r.Context(), &ports.ReadProjectCommand{ID: &id})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToProjectResponse(p))
}

// UpdateProject handles PATCH /api/v1/projects/{id}.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	var req dto.UpdateProjectRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.update.Handle(r.Context(), req.Command(id))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.IDResponse{ID: updated.String()})
}

// DeleteProject handles DELETE /api/v1/projects/{id}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	if _, err := h.delete.Handle(r.Context(), &ports.DeleteProjectCommand{ID: &id}); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddProjectTask handles POST /api/v1/projects/{id}/tasks. It references an
// existing task from the project's ordered task list.
func (h *ProjectHandler) AddProjectTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	var req dto.AddProjectTaskRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.addTask.Handle(r.Context(), req.Command(id))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.IDResponse{ID: updated.String()})
}
