package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/task"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// DeleteTaskService removes a task from the store. Projects referencing the
// deleted task keep the stale id in their task list.
type DeleteTaskService struct {
	tasks  ports.TaskStore
	logger *slog.Logger
}

var _ ports.DeleteTaskUseCase = (*DeleteTaskService)(nil)

func NewDeleteTaskService(tasks ports.TaskStore, logger *slog.Logger) (*DeleteTaskService, error) {
	if tasks == nil {
		return nil, errors.New("app: task store is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DeleteTaskService{tasks: tasks, logger: logger}, nil
}

func (s *DeleteTaskService) Handle(ctx context.Context, cmd *ports.DeleteTaskCommand) (task.ID, error) {
	if cmd == nil {
		return task.ID{}, ErrMissingCommand
	}
	if cmd.ID == nil {
		return task.ID{}, ErrMissingTaskID
	}
	id, err := task.ParseID(*cmd.ID)
	if err != nil {
		return task.ID{}, ErrInvalidTaskIDFormat
	}
	existing, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return task.ID{}, ErrTaskNotFound
		}
		s.logger.ErrorContext(ctx, "task lookup failed", slog.String("operation", "delete_task"), slog.Any("error", err))
		return task.ID{}, err
	}
	if err := s.tasks.Remove(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "removing task failed", slog.String("operation", "delete_task"), slog.Any("error", err))
		return task.ID{}, err
	}
	s.logger.InfoContext(ctx, "task deleted",
		slog.String("operation", "delete_task"),
		slog.String("task_id", id.String()),
	)
	return id, nil
}
