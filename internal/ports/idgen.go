package ports

import (
	"github.com/MariuszKam/Organizer/internal/domain/project"
	"github.com/MariuszKam/Organizer/internal/domain/task"
	"github.com/MariuszKam/Organizer/internal/domain/user"
)

// ID generator ports. Randomness is an injected capability so use cases stay
// deterministic under test.

// UserIDGenerator produces fresh user identities.
type UserIDGenerator interface {
	Generate() user.ID
}

// TaskIDGenerator produces fresh task identities.
type TaskIDGenerator interface {
	Generate() task.ID
}

// ProjectIDGenerator produces fresh project identities.
type ProjectIDGenerator interface {
	Generate() project.ID
}
