package user

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MariuszKam/Organizer/internal/domain"
)

// usernamePattern matches the canonical (trimmed, lower-cased) form.
var usernamePattern = regexp.MustCompile(`^[a-z]{4,10}$`)

// Username is a validated, normalized user handle. The canonical form is
// trimmed and lower-cased; equality and storage use the canonical form only.
type Username struct {
	value string
}

// NewUsername normalizes raw input and validates it against the username
// rules (4-10 ASCII letters). Returns an error wrapping
// domain.ErrInvalidFormat when the normalized input does not conform.
func NewUsername(raw string) (Username, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if !usernamePattern.MatchString(name) {
		return Username{}, fmt.Errorf("username %q: %w", name, domain.ErrInvalidFormat)
	}
	return Username{value: name}, nil
}

// String returns the canonical form.
func (u Username) String() string { return u.value }

// IsZero reports whether the Username was never constructed via NewUsername.
func (u Username) IsZero() bool { return u.value == "" }
