package project

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MariuszKam/Organizer/internal/domain"
)

const maxNameLen = 50

// Name is a validated, trimmed project name, 1-50 characters with no
// charset restriction.
type Name struct {
	value string
}

// NewName trims raw input and validates the length bounds. Returns an error
// wrapping domain.ErrInvalidFormat on violation.
func NewName(raw string) (Name, error) {
	name := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(name); n < 1 || n > maxNameLen {
		return Name{}, fmt.Errorf("project name must be 1-%d characters, got %d: %w",
			maxNameLen, n, domain.ErrInvalidFormat)
	}
	return Name{value: name}, nil
}

// String returns the canonical form.
func (n Name) String() string { return n.value }

// IsZero reports whether the Name was never constructed via NewName.
func (n Name) IsZero() bool { return n.value == "" }
