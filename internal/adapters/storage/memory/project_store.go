package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/project"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// Compile-time checks.
var (
	_ ports.ProjectStore  = (*ProjectStore)(nil)
	_ ports.HealthChecker = (*ProjectStore)(nil)
)

// ProjectStore keeps projects in a single id-keyed map.
type ProjectStore struct {
	mu   sync.RWMutex
	byID map[project.ID]*project.Project
}

// NewProjectStore creates an empty project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{byID: make(map[project.ID]*project.Project)}
}

// Save upserts a project by identity. The store keeps its own snapshot; later
// mutations of the caller's object do not change stored state.
func (s *ProjectStore) Save(_ context.Context, p *project.Project) error {
	if p == nil {
		return errors.New("memory: project must not be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[p.ID()] = p.Clone()
	return nil
}

// Remove deletes by identity. Removing an absent project is a no-op.
func (s *ProjectStore) Remove(_ context.Context, p *project.Project) error {
	if p == nil {
		return errors.New("memory: project must not be nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, p.ID())
	return nil
}

// FindByID returns the project or domain.ErrNotFound.
func (s *ProjectStore) FindByID(_ context.Context, id project.ID) (*project.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p.Clone(), nil
}

// FindAll returns a snapshot slice of all projects.
func (s *ProjectStore) FindAll(_ context.Context) ([]*project.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*project.Project, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, p.Clone())
	}
	return out, nil
}

// Name implements ports.HealthChecker.
func (s *ProjectStore) Name() string { return "project-store" }

// HealthCheck implements ports.HealthChecker.
func (s *ProjectStore) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
