// Package memory provides in-memory store adapters for the organizer's
// persistence ports. Each store guards its maps with a single mutex so the
// read-check-write sequence in Save runs as one critical section; a durable
// backend can replace any store by implementing the same port.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/user"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// Compile-time checks.
var (
	_ ports.UserStore     = (*UserStore)(nil)
	_ ports.HealthChecker = (*UserStore)(nil)
)

// UserStore keeps users in three index maps (by id, by username, by email)
// that are updated together under one lock. The uniqueness invariant holds
// at all times: every stored user has exactly one entry in each index, and
// no two users share a username or email.
type UserStore struct {
	mu         sync.RWMutex
	byID       map[user.ID]*user.User
	byUsername map[user.Username]*user.User
	byEmail    map[user.Email]*user.User
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:       make(map[user.ID]*user.User),
		byUsername: make(map[user.Username]*user.User),
		byEmail:    make(map[user.Email]*user.User),
	}
}

// Save upserts a user by identity. The store keeps its own snapshot of the
// user, so the stored state only changes through Save; later mutations of
// the caller's object never leak into the indices.
//
// The write follows the port contract step by step: a username or email
// owned by a different ID fails before anything changes; re-saving an
// identical user returns without touching the indices; a changed username
// or email has its stale index entries removed before the new entries go
// in. All of it happens under one lock, so readers never see the indices
// disagree.
func (s *UserStore) Save(_ context.Context, u *user.User) error {
	if u == nil {
		return errors.New("memory: user must not be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if owner, ok := s.byUsername[u.Username()]; ok && owner.ID() != u.ID() {
		return ports.ErrUsernameTaken
	}
	if owner, ok := s.byEmail[u.Email()]; ok && owner.ID() != u.ID() {
		return ports.ErrEmailTaken
	}

	if existing, ok := s.byID[u.ID()]; ok {
		if existing.Username() == u.Username() && existing.Email() == u.Email() {
			// Idempotent re-save.
			return nil
		}
		delete(s.byUsername, existing.Username())
		delete(s.byEmail, existing.Email())
	}

	snapshot := u.Clone()
	s.byUsername[snapshot.Username()] = snapshot
	s.byEmail[snapshot.Email()] = snapshot
	s.byID[snapshot.ID()] = snapshot
	return nil
}

// Remove deletes the user from all three indices. Removing an absent user
// is a no-op.
func (s *UserStore) Remove(_ context.Context, u *user.User) error {
	if u == nil {
		return errors.New("memory: user must not be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.byID[u.ID()]
	if !ok {
		return nil
	}
	delete(s.byUsername, existing.Username())
	delete(s.byEmail, existing.Email())
	delete(s.byID, existing.ID())
	return nil
}

// FindByID returns the user or domain.ErrNotFound.
func (s *UserStore) FindByID(_ context.Context, id user.ID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u.Clone(), nil
}

// FindByUsername returns the user or domain.ErrNotFound.
func (s *UserStore) FindByUsername(_ context.Context, username user.Username) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byUsername[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u.Clone(), nil
}

// FindByEmail returns the user or domain.ErrNotFound.
func (s *UserStore) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u.Clone(), nil
}

// ExistsByUsername reports whether any user owns the username.
func (s *UserStore) ExistsByUsername(_ context.Context, username user.Username) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byUsername[username]
	return ok, nil
}

// ExistsByEmail reports whether any user owns the email.
func (s *UserStore) ExistsByEmail(_ context.Context, email user.Email) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byEmail[email]
	return ok, nil
}

// FindAll returns a snapshot slice of all users.
func (s *UserStore) FindAll(_ context.Context) ([]*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*user.User, 0, len(s.byID))
	for _, u := range s.byID {
		out = append(out, u.Clone())
	}
	return out, nil
}

// Name implements ports.HealthChecker.
func (s *UserStore) Name() string { return "user-store" }

// HealthCheck implements ports.HealthChecker. An in-memory store is healthy
// as long as the process is; only context cancellation is reported.
func (s *UserStore) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
