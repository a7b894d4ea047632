package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/user"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// UpdateUserService applies partial updates to a user. Absent fields keep
// their current value; supplying only current values is rejected.
type UpdateUserService struct {
	users  ports.UserStore
	logger *slog.Logger
}

var _ ports.UpdateUserUseCase = (*UpdateUserService)(nil)

func NewUpdateUserService(users ports.UserStore, logger *slog.Logger) (*UpdateUserService, error) {
	if users == nil {
		return nil, errors.New("app: user store is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UpdateUserService{users: users, logger: logger}, nil
}

func (s *UpdateUserService) Handle(ctx context.Context, cmd *ports.UpdateUserCommand) (user.ID, error) {
	if cmd == nil {
		return user.ID{}, ErrMissingCommand
	}
	if cmd.Username == nil && cmd.Email == nil {
		return user.ID{}, ErrNoFieldsProvided
	}
	if cmd.ID == nil {
		return user.ID{}, ErrMissingUserID
	}
	id, err := user.ParseID(*cmd.ID)
	if err != nil {
		return user.ID{}, ErrInvalidUserIDFormat
	}
	current, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return user.ID{}, ErrUserNotFound
		}
		s.logger.ErrorContext(ctx, "user lookup failed", slog.String("operation", "update_user"), slog.Any("error", err))
		return user.ID{}, err
	}

	username := current.Username()
	if cmd.Username != nil {
		username, err = user.NewUsername(*cmd.Username)
		if err != nil {
			return user.ID{}, ErrInvalidUsernameFormat
		}
	}
	email := current.Email()
	if cmd.Email != nil {
		email, err = user.NewEmail(*cmd.Email)
		if err != nil {
			return user.ID{}, ErrInvalidEmailFormat
		}
	}
	if username == current.Username() && email == current.Email() {
		return user.ID{}, ErrNoChanges
	}

	if username != current.Username() {
		taken, err := s.users.ExistsByUsername(ctx, username)
		if err != nil {
			s.logger.ErrorContext(ctx, "username lookup failed", slog.String("operation", "update_user"), slog.Any("error", err))
			return user.ID{}, err
		}
		if taken {
			return user.ID{}, ErrUsernameAlreadyExists
		}
	}
	if email != current.Email() {
		taken, err := s.users.ExistsByEmail(ctx, email)
		if err != nil {
			s.logger.ErrorContext(ctx, "email lookup failed", slog.String("operation", "update_user"), slog.Any("error", err))
			return user.ID{}, err
		}
		if taken {
			return user.ID{}, ErrEmailAlreadyExists
		}
	}

	updated, err := user.New(id, username, email)
	if err != nil {
		return user.ID{}, err
	}
	if err := s.users.Save(ctx, updated); err != nil {
		s.logger.ErrorContext(ctx, "saving user failed", slog.String("operation", "update_user"), slog.Any("error", err))
		return user.ID{}, err
	}
	s.logger.InfoContext(ctx, "user updated",
		slog.String("operation", "update_user"),
		slog.String("user_id", id.String()),
	)
	return id, nil
}
