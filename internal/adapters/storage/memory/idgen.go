package memory

import (
	"github.com/MariuszKam/Organizer/internal/domain/project"
	"github.com/MariuszKam/Organizer/internal/domain/task"
	"github.com/MariuszKam/Organizer/internal/domain/user"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// UUID-backed generator adapters for the identity ports.

// Compile-time checks.
var (
	_ ports.UserIDGenerator    = UserIDGenerator{}
	_ ports.TaskIDGenerator    = TaskIDGenerator{}
	_ ports.ProjectIDGenerator = ProjectIDGenerator{}
)

// UserIDGenerator generates random user IDs.
type UserIDGenerator struct{}

// Generate implements ports.UserIDGenerator.
func (UserIDGenerator) Generate() user.ID { return user.NewID() }

// TaskIDGenerator generates random task IDs.
type TaskIDGenerator struct{}

// Generate implements ports.TaskIDGenerator.
func (TaskIDGenerator) Generate() task.ID { return task.NewID() }

// ProjectIDGenerator generates random project IDs.
type ProjectIDGenerator struct{}

// Generate implements ports.ProjectIDGenerator.
func (ProjectIDGenerator) Generate() project.ID { return project.NewID() }
