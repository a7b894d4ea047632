package ports

import "context"

// HealthChecker is implemented by any component that can report its health.
// In this service the in-memory stores register themselves so the readiness
// endpoint reflects the state of the persistence layer.
type HealthChecker interface {
	// Name returns a human-readable identifier for the component
	// (e.g., "user-store", "task-store").
	Name() string

	// HealthCheck returns nil if healthy, or an error describing the
	// failure. Implementations should respect context cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll executes all registered checks and returns results keyed by
	// checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
