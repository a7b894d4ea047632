package handlers

import (
	"net/http"

	"github.com/MariuszKam/Organizer/internal/adapters/http/dto"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// UserHandler handles HTTP requests for user CRUD and login resolution.
type UserHandler struct {
	create ports.CreateUserUseCase
	read   ports.ReadUserUseCase
	update ports.UpdateUserUseCase
	delete ports.DeleteUserUseCase
}

// NewUserHandler creates a new UserHandler with the given use-case ports.
func NewUserHandler(create ports.CreateUserUseCase, read ports.ReadUserUseCase, update ports.UpdateUserUseCase, del ports.DeleteUserUseCase) *UserHandler {
	return &UserHandler{create: create, read: read, update: update, delete: del}
}

// ListUsers handles GET /api/v1/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.read.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// CreateUser handles POST /api/v1/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
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

// GetUser handles GET /api/v1/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	u, err := h.read.ByID(r.Context(), &ports.ReadUserByIDCommand{ID: &id})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// Login handles POST /api/v1/users/login. It resolves the username/email
// pair and returns the user both credentials identify.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	u, err := h.read.ForLogin(r.Context(), req.Command())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// UpdateUser handles PATCH /api/v1/users/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	var req dto.UpdateUserRequest
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

// DeleteUser handles DELETE /api/v1/users/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")

	if _, err := h.delete.Handle(r.Context(), &ports.DeleteUserCommand{ID: &id}); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
