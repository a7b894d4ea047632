package task

import (
	"fmt"
	"unicode/utf8"

	"github.com/MariuszKam/Organizer/internal/domain"
)

// Description length bounds in characters. Any content is allowed,
// including newlines.
const (
	minDescriptionLen = 1
	maxDescriptionLen = 500
)

// Description is a validated task description. Unlike names it is not
// trimmed: the content is free-form and preserved verbatim.
type Description struct {
	value string
}

// NewDescription validates the length bounds (1-500 characters). Returns an
// error wrapping domain.ErrInvalidFormat on violation.
func NewDescription(raw string) (Description, error) {
	n := utf8.RuneCountInString(raw)
	if n < minDescriptionLen || n > maxDescriptionLen {
		return Description{}, fmt.Errorf("task description must be %d-%d characters, got %d: %w",
			minDescriptionLen, maxDescriptionLen, n, domain.ErrInvalidFormat)
	}
	return Description{value: raw}, nil
}

// String returns the description content.
func (d Description) String() string { return d.value }

// IsZero reports whether the Description was never constructed via
// NewDescription.
func (d Description) IsZero() bool { return d.value == "" }
