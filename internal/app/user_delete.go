package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/user"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// DeleteUserService removes a user from the store. Tasks assigned to the
// deleted user keep their assignee reference; the link simply dangles.
type DeleteUserService struct {
	users  ports.UserStore
	logger *slog.Logger
}

var _ ports.DeleteUserUseCase = (*DeleteUserService)(nil)

func NewDeleteUserService(users ports.UserStore, logger *slog.Logger) (*DeleteUserService, error) {
	if users == nil {
		return nil, errors.New("app: user store is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DeleteUserService{users: users, logger: logger}, nil
}

func (s *DeleteUserService) Handle(ctx context.Context, cmd *ports.DeleteUserCommand) (user.ID, error) {
	if cmd == nil {
		return user.ID{}, ErrMissingCommand
	}
	if cmd.ID == nil {
		return user.ID{}, ErrMissingUserID
	}
	id, err := user.ParseID(*cmd.ID)
	if err != nil {
		return user.ID{}, ErrInvalidUserIDFormat
	}
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return user.ID{}, ErrUserNotFound
		}
		s.logger.ErrorContext(ctx, "user lookup failed", slog.String("operation", "delete_user"), slog.Any("error", err))
		return user.ID{}, err
	}
	if err := s.users.Remove(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "removing user failed", slog.String("operation", "delete_user"), slog.Any("error", err))
		return user.ID{}, err
	}
	s.logger.InfoContext(ctx, "user deleted",
		slog.String("operation", "delete_user"),
		slog.String("user_id", id.String()),
	)
	return id, nil
}
