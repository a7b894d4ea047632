package task

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MariuszKam/Organizer/internal/domain"
)

// namePattern restricts task names to letters, digits, underscore, hyphen,
// and space, 1-50 characters after trimming.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_\- ]{1,50}$`)

// Name is a validated, trimmed task name.
type Name struct {
	value string
}

// NewName trims raw input and validates it against the task name rules.
// Returns an error wrapping domain.ErrInvalidFormat on violation.
func NewName(raw string) (Name, error) {
	name := strings.TrimSpace(raw)
	if !namePattern.MatchString(name) {
		return Name{}, fmt.Errorf("task name %q: %w", name, domain.ErrInvalidFormat)
	}
	return Name{value: name}, nil
}

// String returns the canonical form.
func (n Name) String() string { return n.value }

// IsZero reports whether the Name was never constructed via NewName.
func (n Name) IsZero() bool { return n.value == "" }
