package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/task"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// Compile-time checks.
var (
	_ ports.TaskStore     = (*TaskStore)(nil)
	_ ports.HealthChecker = (*TaskStore)(nil)
)

// TaskStore keeps tasks in a single id-keyed map.
type TaskStore struct {
	mu   sync.RWMutex
	byID map[task.ID]*task.Task
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{byID: make(map[task.ID]*task.Task)}
}

// Save upserts a task by identity. The store keeps its own snapshot; later
// mutations of the caller's object do not change stored state.
func (s *TaskStore) Save(_ context.Context, t *task.Task) error {
	if t == nil {
		return errors.New("memory: task must not be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[t.ID()] = t.Clone()
	return nil
}

// Remove deletes by identity. Removing an absent task is a no-op.
func (s *TaskStore) Remove(_ context.Context, t *task.Task) error {
	if t == nil {
		return errors.New("memory: task must not be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, t.ID())
	return nil
}

// FindByID returns the task or domain.ErrNotFound.
func (s *TaskStore) FindByID(_ context.Context, id task.ID) (*task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t.Clone(), nil
}

// FindAll returns a snapshot slice of all tasks.
func (s *TaskStore) FindAll(_ context.Context) ([]*task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*task.Task, 0, len(s.byID))
	for _, t := range s.byID {
		out = append(out, t.Clone())
	}
	return out, nil
}

// Name implements ports.HealthChecker.
func (s *TaskStore) Name() string { return "task-store" }

// HealthCheck implements ports.HealthChecker.
func (s *TaskStore) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
