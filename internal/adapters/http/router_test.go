package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	adapthttp "github.com/MariuszKam/Organizer/internal/adapters/http"
	"github.com/MariuszKam/Organizer/internal/adapters/http/dto"
	"github.com/MariuszKam/Organizer/internal/adapters/http/handlers"
	"github.com/MariuszKam/Organizer/internal/adapters/storage/memory"
	"github.com/MariuszKam/Organizer/internal/app"
	"github.com/MariuszKam/Organizer/internal/platform/health"
)

// newTestRouter wires real services over fresh in-memory stores so requests
// exercise the full stack from routing down to storage.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	users := memory.NewUserStore()
	tasks := memory.NewTaskStore()
	projects := memory.NewProjectStore()

	createUser, err := app.NewCreateUserService(users, memory.UserIDGenerator{}, nil)
	if err != nil {
		t.Fatalf("NewCreateUserService: %v", err)
	}
	readUser, err := app.NewReadUserService(users, nil)
	if err != nil {
		t.Fatalf("NewReadUserService: %v", err)
	}
	updateUser, err := app.NewUpdateUserService(users, nil)
	if err != nil {
		t.Fatalf("NewUpdateUserService: %v", err)
	}
	deleteUser, err := app.NewDeleteUserService(users, nil)
	if err != nil {
		t.Fatalf("NewDeleteUserService: %v", err)
	}

	createTask, err := app.NewCreateTaskService(tasks, users, memory.TaskIDGenerator{}, nil)
	if err != nil {
		t.Fatalf("NewCreateTaskService: %v", err)
	}
	readTask, err := app.NewReadTaskService(tasks, nil)
	if err != nil {
		t.Fatalf("NewReadTaskService: %v", err)
	}
	updateTask, err := app.NewUpdateTaskService(tasks, users, nil)
	if err != nil {
		t.Fatalf("NewUpdateTaskService: %v", err)
	}
	deleteTask, err := app.NewDeleteTaskService(tasks, nil)
	if err != nil {
		t.Fatalf("NewDeleteTaskService: %v", err)
	}

	createProject, err := app.NewCreateProjectService(projects, memory.ProjectIDGenerator{}, nil)
	if err != nil {
		t.Fatalf("NewCreateProjectService: %v", err)
	}
	readProject, err := app.NewReadProjectService(projects, nil)
	if err != nil {
		t.Fatalf("NewReadProjectService: %v", err)
	}
	updateProject, err := app.NewUpdateProjectService(projects, nil)
	if err != nil {
		t.Fatalf("NewUpdateProjectService: %v", err)
	}
	deleteProject, err := app.NewDeleteProjectService(projects, nil)
	if err != nil {
		t.Fatalf("NewDeleteProjectService: %v", err)
	}
	addTask, err := app.NewAddTaskToProjectService(projects, tasks, nil)
	if err != nil {
		t.Fatalf("NewAddTaskToProjectService: %v", err)
	}

	registry := health.New()
	registry.Register(users)
	registry.Register(tasks)
	registry.Register(projects)

	uh := handlers.NewUserHandler(createUser, readUser, updateUser, deleteUser)
	th := handlers.NewTaskHandler(createTask, readTask, updateTask, deleteTask)
	ph := handlers.NewProjectHandler(createProject, readProject, updateProject, deleteProject, addTask)
	hh := handlers.NewHealthHandler(registry)

	return adapthttp.NewRouter(uh, th, ph, hh)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func decodeID(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp dto.IDResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode id response: %v (body %q)", err, rec.Body.String())
	}
	if resp.ID == "" {
		t.Fatal("id response has empty id")
	}
	return resp.ID
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/users"},
		{http.MethodPost, "/api/v1/users"},
		{http.MethodPost, "/api/v1/users/login"},
		{http.MethodGet, "/api/v1/users/{id}"},
		{http.MethodPatch, "/api/v1/users/{id}"},
		{http.MethodDelete, "/api/v1/users/{id}"},
		{http.MethodGet, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks"},
		{http.MethodGet, "/api/v1/tasks/{id}"},
		{http.MethodPatch, "/api/v1/tasks/{id}"},
		{http.MethodDelete, "/api/v1/tasks/{id}"},
		{http.MethodGet, "/api/v1/projects"},
		{http.MethodPost, "/api/v1/projects"},
		{http.MethodGet, "/api/v1/projects/{id}"},
		{http.MethodPatch, "/api/v1/projects/{id}"},
		{http.MethodDelete, "/api/v1/projects/{id}"},
		{http.MethodPost, "/api/v1/projects/{id}/tasks"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	users := memory.NewUserStore()
	createUser, err := app.NewCreateUserService(users, memory.UserIDGenerator{}, nil)
	if err != nil {
		t.Fatalf("NewCreateUserService: %v", err)
	}
	readUser, _ := app.NewReadUserService(users, nil)
	updateUser, _ := app.NewUpdateUserService(users, nil)
	deleteUser, _ := app.NewDeleteUserService(users, nil)
	tasks := memory.NewTaskStore()
	projects := memory.NewProjectStore()
	createTask, _ := app.NewCreateTaskService(tasks, users, memory.TaskIDGenerator{}, nil)
	readTask, _ := app.NewReadTaskService(tasks, nil)
	updateTask, _ := app.NewUpdateTaskService(tasks, users, nil)
	deleteTask, _ := app.NewDeleteTaskService(tasks, nil)
	createProject, _ := app.NewCreateProjectService(projects, memory.ProjectIDGenerator{}, nil)
	readProject, _ := app.NewReadProjectService(projects, nil)
	updateProject, _ := app.NewUpdateProjectService(projects, nil)
	deleteProject, _ := app.NewDeleteProjectService(projects, nil)
	addTask, _ := app.NewAddTaskToProjectService(projects, tasks, nil)

	uh := handlers.NewUserHandler(createUser, readUser, updateUser, deleteUser)
	th := handlers.NewTaskHandler(createTask, readTask, updateTask, deleteTask)
	ph := handlers.NewProjectHandler(createProject, readProject, updateProject, deleteProject, addTask)
	hh := handlers.NewHealthHandler(health.New())

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(uh, th, ph, hh, testMW)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_HealthEndpoints(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health/live", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("liveness status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = doJSON(t, router, http.MethodGet, "/health/ready", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("readiness status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_UserLifecycle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// Create.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/users", map[string]string{
		"username": "johny",
		"email":    "johny@org.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d (body %q)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	id := decodeID(t, rec)

	// Read back.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/users/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want %d", rec.Code, http.StatusOK)
	}
	var user dto.UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.Username != "johny" || user.Email != "johny@org.com" {
		t.Errorf("user = %+v, want johny/johny@org.com", user)
	}

	// Login requires both credentials.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/users/login", map[string]string{
		"username": "johny",
		"email":    "johny@org.com",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("login status = %d, want %d (body %q)", rec.Code, http.StatusOK, rec.Body.String())
	}

	// A single credential is rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/users/login", map[string]string{
		"username": "johny",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("partial login status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// Update email.
	rec = doJSON(t, router, http.MethodPatch, "/api/v1/users/"+id, map[string]string{
		"email": "johny@corp.com",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("update status = %d, want %d (body %q)", rec.Code, http.StatusOK, rec.Body.String())
	}

	// Delete.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/users/"+id, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	// Gone afterwards.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/users/"+id, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_UserErrorMapping(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/users", map[string]string{
		"username": "johny",
		"email":    "johny@org.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed create status = %d", rec.Code)
	}

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{
			name:   "missing email is a bad request",
			method: http.MethodPost,
			path:   "/api/v1/users",
			body:   map[string]string{"username": "other"},
			want:   http.StatusBadRequest,
		},
		{
			name:   "malformed email is a bad request",
			method: http.MethodPost,
			path:   "/api/v1/users",
			body:   map[string]string{"username": "other", "email": "not-an-email"},
			want:   http.StatusBadRequest,
		},
		{
			name:   "duplicate username is a conflict",
			method: http.MethodPost,
			path:   "/api/v1/users",
			body:   map[string]string{"username": "johny", "email": "second@org.com"},
			want:   http.StatusConflict,
		},
		{
			name:   "unknown id is not found",
			method: http.MethodGet,
			path:   "/api/v1/users/1b4e28ba-2fa1-11d2-883f-0016d3cca427",
			body:   nil,
			want:   http.StatusNotFound,
		},
		{
			name:   "malformed id is a bad request",
			method: http.MethodGet,
			path:   "/api/v1/users/not-a-uuid",
			body:   nil,
			want:   http.StatusBadRequest,
		},
		{
			name:   "invalid JSON body is a bad request",
			method: http.MethodPost,
			path:   "/api/v1/users",
			body:   "{broken",
			want:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, tt.method, tt.path, tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %q)", rec.Code, tt.want, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
		})
	}
}

func TestRouter_TaskLifecycle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// Assignee for the full variant.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/users", map[string]string{
		"username": "kasia",
		"email":    "kasia@org.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed user status = %d", rec.Code)
	}

	// Basic create applies defaults.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/tasks", map[string]string{
		"name":        "Write report",
		"description": "Quarterly report for the board",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("basic create status = %d (body %q)", rec.Code, rec.Body.String())
	}
	basicID := decodeID(t, rec)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/tasks/"+basicID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got dto.TaskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	if got.Priority != "MEDIUM" || got.Status != "TODO" || got.AssigneeID != nil {
		t.Errorf("basic task = %+v, want MEDIUM/TODO/unassigned", got)
	}

	// Full create resolves the assignee.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/tasks", map[string]string{
		"name":        "Review report",
		"description": "Second pair of eyes",
		"priority":    "HIGH",
		"status":      "IN_PROGRESS",
		"username":    "kasia",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("full create status = %d (body %q)", rec.Code, rec.Body.String())
	}
	fullID := decodeID(t, rec)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/tasks/"+fullID, nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	if got.Priority != "HIGH" || got.Status != "IN_PROGRESS" || got.AssigneeID == nil {
		t.Errorf("full task = %+v, want HIGH/IN_PROGRESS/assigned", got)
	}

	// Unknown priority is rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/tasks", map[string]string{
		"name":        "Bad task",
		"description": "Unknown priority",
		"priority":    "URGENT",
		"status":      "TODO",
		"username":    "kasia",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown priority status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// Partial update flips status only.
	rec = doJSON(t, router, http.MethodPatch, "/api/v1/tasks/"+basicID, map[string]string{
		"status": "DONE",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d (body %q)", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodGet, "/api/v1/tasks/"+basicID, nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	if got.Status != "DONE" || got.Name != "Write report" {
		t.Errorf("updated task = %+v, want DONE with name preserved", got)
	}

	// Delete.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/tasks/"+fullID, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestRouter_ProjectLifecycle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", map[string]string{
		"name": "Launch",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d (body %q)", rec.Code, rec.Body.String())
	}
	projectID := decodeID(t, rec)

	// Two tasks to reference.
	var taskIDs []string
	for i := 0; i < 2; i++ {
		rec = doJSON(t, router, http.MethodPost, "/api/v1/tasks", map[string]string{
			"name":        fmt.Sprintf("Step %d", i+1),
			"description": "Launch checklist item",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("task create status = %d", rec.Code)
		}
		taskIDs = append(taskIDs, decodeID(t, rec))
	}

	for _, taskID := range taskIDs {
		rec = doJSON(t, router, http.MethodPost, "/api/v1/projects/"+projectID+"/tasks", map[string]string{
			"task_id": taskID,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("add task status = %d (body %q)", rec.Code, rec.Body.String())
		}
	}

	// Re-adding the same task is a conflict.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/projects/"+projectID+"/tasks", map[string]string{
		"task_id": taskIDs[0],
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate add status = %d, want %d", rec.Code, http.StatusConflict)
	}

	// Read back preserves insertion order.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/"+projectID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var proj dto.ProjectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &proj); err != nil {
		t.Fatalf("decode project: %v", err)
	}
	if len(proj.TaskIDs) != 2 || proj.TaskIDs[0] != taskIDs[0] || proj.TaskIDs[1] != taskIDs[1] {
		t.Errorf("project task ids = %v, want %v in order", proj.TaskIDs, taskIDs)
	}

	// Rename.
	rec = doJSON(t, router, http.MethodPatch, "/api/v1/projects/"+projectID, map[string]string{
		"name": "Launch v2",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("rename status = %d (body %q)", rec.Code, rec.Body.String())
	}

	// Delete.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/projects/"+projectID, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
