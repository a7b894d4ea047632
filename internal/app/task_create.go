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

// CreateTaskService creates tasks in two shapes: a basic task that starts
// with default priority and status and no assignee, and a full task whose
// priority, status, and assignee come from the command. The full variant
// resolves the assignee by username before anything is written.
type CreateTaskService struct {
	tasks  ports.TaskStore
	users  ports.UserStore
	ids    ports.TaskIDGenerator
	logger *slog.Logger
}

var _ ports.CreateTaskUseCase = (*CreateTaskService)(nil)

func NewCreateTaskService(tasks ports.TaskStore, users ports.UserStore, ids ports.TaskIDGenerator, logger *slog.Logger) (*CreateTaskService, error) {
	if tasks == nil {
		return nil, errors.New("app: task store is required")
	}
	if users == nil {
		return nil, errors.New("app: user store is required")
	}
	if ids == nil {
		return nil, errors.New("app: task id generator is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CreateTaskService{tasks: tasks, users: users, ids: ids, logger: logger}, nil
}

func (s *CreateTaskService) HandleBasic(ctx context.Context, cmd *ports.CreateBasicTaskCommand) (task.ID, error) {
	if cmd == nil {
		return task.ID{}, ErrMissingCommand
	}
	name, description, err := s.parseCore(cmd.Name, cmd.Description)
	if err != nil {
		return task.ID{}, err
	}

	id := s.ids.Generate()
	t, err := task.New(id, name, description)
	if err != nil {
		return task.ID{}, err
	}
	if err := s.tasks.Save(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "saving task failed", slog.String("operation", "create_task"), slog.Any("error", err))
		return task.ID{}, err
	}
	s.logger.InfoContext(ctx, "task created",
		slog.String("operation", "create_task"),
		slog.String("task_id", id.String()),
	)
	return id, nil
}

func (s *CreateTaskService) HandleFull(ctx context.Context, cmd *ports.CreateFullTaskCommand) (task.ID, error) {
	if cmd == nil {
		return task.ID{}, ErrMissingCommand
	}
	name, description, err := s.parseCore(cmd.Name, cmd.Description)
	if err != nil {
		return task.ID{}, err
	}
	if cmd.Priority == nil {
		return task.ID{}, ErrMissingTaskPriority
	}
	priority, err := task.ParsePriority(*cmd.Priority)
	if err != nil {
		return task.ID{}, ErrInvalidTaskPriorityFormat
	}
	if cmd.Status == nil {
		return task.ID{}, ErrMissingTaskStatus
	}
	status, err := task.ParseStatus(*cmd.Status)
	if err != nil {
		return task.ID{}, ErrInvalidTaskStatusFormat
	}
	if cmd.Username == nil {
		return task.ID{}, ErrMissingUsername
	}
	username, err := user.NewUsername(*cmd.Username)
	if err != nil {
		return task.ID{}, ErrInvalidUsernameFormat
	}
	assignee, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return task.ID{}, ErrUserNotFound
		}
		s.logger.ErrorContext(ctx, "assignee lookup failed", slog.String("operation", "create_task"), slog.Any("error", err))
		return task.ID{}, err
	}

	id := s.ids.Generate()
	t, err := task.NewFull(id, name, description, priority, status, assignee.ID())
	if err != nil {
		return task.ID{}, err
	}
	if err := s.tasks.Save(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "saving task failed", slog.String("operation", "create_task"), slog.Any("error", err))
		return task.ID{}, err
	}
	s.logger.InfoContext(ctx, "task created",
		slog.String("operation", "create_task"),
		slog.String("task_id", id.String()),
		slog.String("assignee_id", assignee.ID().String()),
	)
	return id, nil
}

func (s *CreateTaskService) parseCore(rawName, rawDescription *string) (task.Name, task.Description, error) {
	if rawName == nil {
		return task.Name{}, task.Description{}, ErrMissingTaskName
	}
	name, err := task.NewName(*rawName)
	if err != nil {
		return task.Name{}, task.Description{}, ErrInvalidTaskNameFormat
	}
	if rawDescription == nil {
		return task.Name{}, task.Description{}, ErrMissingTaskDescription
	}
	description, err := task.NewDescription(*rawDescription)
	if err != nil {
		return task.Name{}, task.Description{}, ErrInvalidTaskDescriptionFormat
	}
	return name, description, nil
}
