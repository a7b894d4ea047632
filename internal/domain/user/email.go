package user

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/MariuszKam/Organizer/internal/domain"
)

// emailPattern matches the canonical (trimmed, lower-cased) local@domain.tld
// form.
var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email is a validated, normalized email address. The canonical form
// (trimmed, lower-cased) is what equality, hashing, and storage use; the
// display form produced by String masks the local part so addresses do not
// leak into logs or error messages.
type Email struct {
	value string
}

// NewEmail normalizes raw input and validates it as local@domain.tld.
// Returns an error wrapping domain.ErrInvalidFormat when the normalized
// input does not conform.
func NewEmail(raw string) (Email, error) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(addr) {
		return Email{}, fmt.Errorf("email address: %w", domain.ErrInvalidFormat)
	}
	return Email{value: addr}, nil
}

// Address returns the full canonical address. Callers that only need a
// human-readable representation should use String instead.
func (e Email) Address() string { return e.value }

// String returns the masked display form: the first character of the local
// part followed by "***" and the domain (e.g. "e***@org.com").
func (e Email) String() string {
	if e.value == "" {
		return ""
	}
	at := strings.IndexByte(e.value, '@')
	return e.value[:1] + "***" + e.value[at:]
}

// LogValue implements slog.LogValuer so structured logs always carry the
// masked form even when the Email is logged as a raw attribute value.
func (e Email) LogValue() slog.Value { return slog.StringValue(e.String()) }

// IsZero reports whether the Email was never constructed via NewEmail.
func (e Email) IsZero() bool { return e.value == "" }
