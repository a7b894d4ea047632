package user

import (
	"errors"
	"fmt"

	"github.com/MariuszKam/Organizer/internal/domain"
)

// Aggregate-level errors.
var (
	// ErrUnchangedUsername is returned when a username change would replace
	// the current value with an equal one.
	ErrUnchangedUsername = fmt.Errorf("username equals current value: %w", domain.ErrNoChange)

	// ErrUnchangedEmail is returned when an email change would replace the
	// current value with an equal one.
	ErrUnchangedEmail = fmt.Errorf("email equals current value: %w", domain.ErrNoChange)
)

// User is the user aggregate. Its identity is immutable after construction;
// username and email are mutable only through the Change* operations, which
// reject no-op changes as a usage error.
type User struct {
	id       ID
	username Username
	email    Email
}

// New constructs a User from already-validated value objects. Passing a zero
// value for any field is a programmer error and fails construction; it is
// not part of any use-case result set.
func New(id ID, username Username, email Email) (*User, error) {
	if id.IsZero() {
		return nil, errors.New("user: id must not be zero")
	}
	if username.IsZero() {
		return nil, errors.New("user: username must not be zero")
	}
	if email.IsZero() {
		return nil, errors.New("user: email must not be zero")
	}
	return &User{id: id, username: username, email: email}, nil
}

// ID returns the immutable identity.
func (u *User) ID() ID { return u.id }

// Username returns the current username.
func (u *User) Username() Username { return u.username }

// Email returns the current email.
func (u *User) Email() Email { return u.email }

// ChangeUsername replaces the username. Equality is checked on the canonical
// value; an equal replacement fails with ErrUnchangedUsername.
func (u *User) ChangeUsername(username Username) error {
	if username.IsZero() {
		return errors.New("user: username must not be zero")
	}
	if username == u.username {
		return ErrUnchangedUsername
	}
	u.username = username
	return nil
}

// ChangeEmail replaces the email. Equality is checked on the canonical
// address, not the masked display form; an equal replacement fails with
// ErrUnchangedEmail.
func (u *User) ChangeEmail(email Email) error {
	if email.IsZero() {
		return errors.New("user: email must not be zero")
	}
	if email == u.email {
		return ErrUnchangedEmail
	}
	u.email = email
	return nil
}

// Clone returns an independent copy. Mutating the copy does not affect the
// original; stores exchange clones so callers never share aggregate state.
func (u *User) Clone() *User {
	c := *u
	return &c
}

// Equal reports identity equality: two users are the same entity when their
// IDs match, regardless of field values.
func (u *User) Equal(other *User) bool {
	return other != nil && u.id == other.id
}

func (u *User) String() string {
	return fmt.Sprintf("User{id=%s, username=%s, email=%s}", u.id, u.username, u.email)
}
