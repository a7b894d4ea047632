// Package project contains the project aggregate and its value objects.
package project

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MariuszKam/Organizer/internal/domain"
)

// ID uniquely identifies a project. The nil (all-zero) UUID is never valid.
type ID struct {
	value uuid.UUID
}

// NewID returns a freshly generated project ID.
func NewID() ID {
	return ID{value: uuid.New()}
}

// ParseID parses a project ID from its textual form, trimming surrounding
// whitespace first. Malformed input and the nil UUID fail with an error
// wrapping domain.ErrInvalidFormat.
func ParseID(s string) (ID, error) {
	v, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return ID{}, fmt.Errorf("project id %q: %w", s, domain.ErrInvalidFormat)
	}
	if v == uuid.Nil {
		return ID{}, fmt.Errorf("project id is nil: %w", domain.ErrInvalidFormat)
	}
	return ID{value: v}, nil
}

// String returns the canonical textual form of the ID.
func (id ID) String() string { return id.value.String() }

// IsZero reports whether the ID is the zero value.
func (id ID) IsZero() bool { return id.value == uuid.Nil }
