package handlers

import (
	"net/http"

	"github.com/MariuszKam/Organizer/internal/adapters/http/dto"
	"github.com/MariuszKam/Organizer/internal/domain/task"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// TaskHandler handles HTTP requests for task CRUD operations.
type TaskHandler struct {
	create ports.CreateTaskUseCase
	read   ports.ReadTaskUseCase
	update ports.UpdateTaskUseCase
	delete ports.DeleteTaskUseCase
}

// NewTaskHandler creates a new TaskHandler with the given use-case ports.
func NewTaskHandler(create ports.CreateTaskUseCase, read ports.ReadTaskUseCase, update ports.UpdateTaskUseCase, del ports.DeleteTaskUseCase) *TaskHandler {
	return &TaskHandler{create: create, read: read, update: update, delete: del}
}

// ListTasks handles GET /api/v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.read.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// CreateTask handles POST /api/v1/tasks. A body without priority, status,
// and username creates a defaulted unassigned task; otherwise all three are
// required and the assignee is resolved by username.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	var (
		id  task.ID
		err error
	)
	if req.IsBasic() {
		id, err = h.create.HandleBasic(r.Context(), req.BasicCommand())
	} else {
		id, err = h.create.HandleFull(r.Context(), req.FullCommand())
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.IDResponse{ID: id.String()})
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	t, err := h.read.ByID(r.Context(), &ports.ReadTaskCommand{ID: &id})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	var req dto.UpdateTaskRequest
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

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	if _, err := h.delete.Handle(r.Context(), &ports.DeleteTaskCommand{ID: &id}); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
