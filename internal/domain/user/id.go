// Package user contains the user aggregate and its value objects.
package user

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MariuszKam/Organizer/internal/domain"
)

// ID uniquely identifies a user. It wraps a random 128-bit UUID; the nil
// (all-zero) UUID is never a valid ID. Using a distinct type per entity
// prevents mixing up identifier kinds across aggregates.
type ID struct {
	value uuid.UUID
}

// NewID returns a freshly generated user ID.
func NewID() ID {
	return ID{value: uuid.New()}
}

// ParseID parses a user ID from its textual form. Surrounding whitespace is
// trimmed before parsing. The nil UUID and malformed input fail with an
// error wrapping domain.ErrInvalidFormat.
func ParseID(s string) (ID, error) {
	v, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return ID{}, fmt.Errorf("user id %q: %w", s, domain.ErrInvalidFormat)
	}
	if v == uuid.Nil {
		return ID{}, fmt.Errorf("user id is nil: %w", domain.ErrInvalidFormat)
	}
	return ID{value: v}, nil
}

// String returns the canonical textual form of the ID.
func (id ID) String() string { return id.value.String() }

// IsZero reports whether the ID is the zero value (never produced by
// NewID or ParseID).
func (id ID) IsZero() bool { return id.value == uuid.Nil }
