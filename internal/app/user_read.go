package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/user"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// ReadUserService answers user lookups by id and resolves login credentials.
type ReadUserService struct {
	users  ports.UserStore
	logger *slog.Logger
}

var _ ports.ReadUserUseCase = (*ReadUserService)(nil)

func NewReadUserService(users ports.UserStore, logger *slog.Logger) (*ReadUserService, error) {
	if users == nil {
		return nil, errors.New("app: user store is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ReadUserService{users: users, logger: logger}, nil
}

func (s *ReadUserService) ByID(ctx context.Context, cmd *ports.ReadUserByIDCommand) (*user.User, error) {
	if cmd == nil {
		return nil, ErrMissingCommand
	}
	if cmd.ID == nil {
		return nil, ErrMissingUserID
	}
	id, err := user.ParseID(*cmd.ID)
	if err != nil {
		return nil, ErrInvalidUserIDFormat
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.ErrorContext(ctx, "user lookup failed", slog.String("operation", "read_user"), slog.Any("error", err))
		return nil, err
	}
	return u, nil
}

// ForLogin resolves a username/email pair to a single user. This is a
// compound-key read: both parameters are required, and they must point at
// the same user.
func (s *ReadUserService) ForLogin(ctx context.Context, cmd *ports.ReadUserForLoginCommand) (*user.User, error) {
	if cmd == nil {
		return nil, ErrMissingCommand
	}
	if cmd.Username == nil && cmd.Email == nil {
		return nil, ErrNoParametersProvided
	}
	if cmd.Username == nil {
		return nil, ErrMissingUsername
	}
	if cmd.Email == nil {
		return nil, ErrMissingEmail
	}

	username, err := user.NewUsername(*cmd.Username)
	if err != nil {
		return nil, ErrInvalidUsernameFormat
	}
	byUsername, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUsernameNotFound
		}
		s.logger.ErrorContext(ctx, "username lookup failed", slog.String("operation", "login_user"), slog.Any("error", err))
		return nil, err
	}

	email, err := user.NewEmail(*cmd.Email)
	if err != nil {
		return nil, ErrInvalidEmailFormat
	}
	byEmail, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEmailNotFound
		}
		s.logger.ErrorContext(ctx, "email lookup failed", slog.String("operation", "login_user"), slog.Any("error", err))
		return nil, err
	}

	if !byUsername.Equal(byEmail) {
		return nil, ErrLoginMismatch
	}
	return byUsername, nil
}

func (s *ReadUserService) List(ctx context.Context) ([]*user.User, error) {
	all, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing users failed", slog.String("operation", "list_users"), slog.Any("error", err))
		return nil, err
	}
	return all, nil
}
