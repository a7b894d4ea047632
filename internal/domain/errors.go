package domain

import "errors"

// Sentinel error categories for errors.Is() checking. Use-case errors in
// internal/app wrap exactly one of these so adapters can map a failure to a
// transport-level outcome without enumerating every variant.
var (
	// ErrMissing marks a required input that was not provided at all,
	// as opposed to one that was provided but malformed.
	ErrMissing = errors.New("missing")

	// ErrInvalidFormat marks an input that failed value-object construction
	// after normalization.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNotFound marks a lookup whose subject does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a write that would violate a uniqueness constraint.
	ErrConflict = errors.New("conflict")

	// ErrNoChange marks a mutation whose effective result equals the
	// current state.
	ErrNoChange = errors.New("no change")

	// ErrMismatch marks a compound lookup whose keys resolve to different
	// entities.
	ErrMismatch = errors.New("mismatch")
)
