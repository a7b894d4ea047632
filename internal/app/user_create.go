package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain/user"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// CreateUserService registers new users, enforcing username and email
// uniqueness through the user store's indices.
type CreateUserService struct {
	users  ports.UserStore
	ids    ports.UserIDGenerator
	logger *slog.Logger
}

var _ ports.CreateUserUseCase = (*CreateUserService)(nil)

func NewCreateUserService(users ports.UserStore, ids ports.UserIDGenerator, logger *slog.Logger) (*CreateUserService, error) {
	if users == nil {
		return nil, errors.New("app: user store is required")
	}
	if ids == nil {
		return nil, errors.New("app: user id generator is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CreateUserService{users: users, ids: ids, logger: logger}, nil
}

func (s *CreateUserService) Handle(ctx context.Context, cmd *ports.CreateUserCommand) (user.ID, error) {
	if cmd == nil {
		return user.ID{}, ErrMissingCommand
	}
	if cmd.Username == nil {
		return user.ID{}, ErrMissingUsername
	}
	username, err := user.NewUsername(*cmd.Username)
	if err != nil {
		return user.ID{}, ErrInvalidUsernameFormat
	}
	if cmd.Email == nil {
		return user.ID{}, ErrMissingEmail
	}
	email, err := user.NewEmail(*cmd.Email)
	if err != nil {
		return user.ID{}, ErrInvalidEmailFormat
	}

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		s.logger.ErrorContext(ctx, "username lookup failed", slog.String("operation", "create_user"), slog.Any("error", err))
		return user.ID{}, err
	}
	if taken {
		return user.ID{}, ErrUsernameAlreadyExists
	}
	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.ErrorContext(ctx, "email lookup failed", slog.String("operation", "create_user"), slog.Any("error", err))
		return user.ID{}, err
	}
	if taken {
		return user.ID{}, ErrEmailAlreadyExists
	}

	id := s.ids.Generate()
	u, err := user.New(id, username, email)
	if err != nil {
		return user.ID{}, err
	}
	if err := s.users.Save(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "saving user failed", slog.String("operation", "create_user"), slog.Any("error", err))
		return user.ID{}, err
	}
	s.logger.InfoContext(ctx, "user created",
		slog.String("operation", "create_user"),
		slog.String("user_id", id.String()),
		slog.String("username", username.String()),
	)
	return id, nil
}
