package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/task"
	"github.com/MariuszKam/Organizer/internal/domain/user"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// UpdateTaskService applies partial updates to a task. Absent fields keep
// their current value. Unlike user updates, resubmitting the current values
// succeeds; task updates carry no no-change check.
type UpdateTaskService struct {
	tasks  ports.TaskStore
	users  ports.UserStore
	logger *slog.Logger
}

var _ ports.UpdateTaskUseCase = (*UpdateTaskService)(nil)

func NewUpdateTaskService(tasks ports.TaskStore, users ports.UserStore, logger *slog.Logger) (*UpdateTaskService, error) {
	if tasks == nil {
		return nil, errors.New("app: task store is required")
	}
	if users == nil {
		return nil, errors.New("app: user store is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UpdateTaskService{tasks: tasks, users: users, logger: logger}, nil
}

func (s *UpdateTaskService) Handle(ctx context.Context, cmd *ports.UpdateTaskCommand) (task.ID, error) {
	if cmd == nil {
		return task.ID{}, ErrMissingCommand
	}
	if cmd.ID == nil {
		return task.ID{}, ErrMissingTaskID
	}
	if cmd.Name == nil && cmd.Description == nil && cmd.Priority == nil && cmd.Status == nil && cmd.Username == nil {
		return task.ID{}, ErrNoFieldsProvided
	}
	id, err := task.ParseID(*cmd.ID)
	if err != nil {
		return task.ID{}, ErrInvalidTaskIDFormat
	}
	current, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return task.ID{}, ErrTaskNotFound
		}
		s.logger.ErrorContext(ctx, "task lookup failed", slog.String("operation", "update_task"), slog.Any("error", err))
		return task.ID{}, err
	}

	name := current.Name()
	if cmd.Name != nil {
		name, err = task.NewName(*cmd.Name)
		if err != nil {
			return task.ID{}, ErrInvalidTaskNameFormat
		}
	}
	description := current.Description()
	if cmd.Description != nil {
		description, err = task.NewDescription(*cmd.Description)
		if err != nil {
			return task.ID{}, ErrInvalidTaskDescriptionFormat
		}
	}
	priority := current.Priority()
	if cmd.Priority != nil {
		priority, err = task.ParsePriority(*cmd.Priority)
		if err != nil {
			return task.ID{}, ErrInvalidTaskPriorityFormat
		}
	}
	status := current.Status()
	if cmd.Status != nil {
		status, err = task.ParseStatus(*cmd.Status)
		if err != nil {
			return task.ID{}, ErrInvalidTaskStatusFormat
		}
	}
	assignee := current.Assignee()
	if cmd.Username != nil {
		username, err := user.NewUsername(*cmd.Username)
		if err != nil {
			return task.ID{}, ErrInvalidUsernameFormat
		}
		owner, err := s.users.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return task.ID{}, ErrUserNotFound
			}
			s.logger.ErrorContext(ctx, "assignee lookup failed", slog.String("operation", "update_task"), slog.Any("error", err))
			return task.ID{}, err
		}
		ownerID := owner.ID()
		assignee = &ownerID
	}

	updated, err := task.New(id, name, description)
	if err != nil {
		return task.ID{}, err
	}
	if err := updated.ChangePriority(priority); err != nil {
		return task.ID{}, err
	}
	if err := updated.ChangeStatus(status); err != nil {
		return task.ID{}, err
	}
	if assignee != nil {
		if err := updated.AssignUser(*assignee); err != nil {
			return task.ID{}, err
		}
	}
	if err := s.tasks.Save(ctx, updated); err != nil {
		s.logger.ErrorContext(ctx, "saving task failed", slog.String("operation", "update_task"), slog.Any("error", err))
		return task.ID{}, err
	}
	s.logger.InfoContext(ctx, "task updated",
		slog.String("operation", "update_task"),
		slog.String("task_id", id.String()),
	)
	return id, nil
}
