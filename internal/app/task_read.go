package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/task"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// ReadTaskService answers task lookups.
type ReadTaskService struct {
	tasks  ports.TaskStore
	logger *slog.Logger
}

var _ ports.ReadTaskUseCase = (*ReadTaskService)(nil)

func NewReadTaskService(tasks ports.TaskStore, logger *slog.Logger) (*ReadTaskService, error) {
	if tasks == nil {
		return nil, errors.New("app: task store is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ReadTaskService{tasks: tasks, logger: logger}, nil
}

func (s *ReadTaskService) ByID(ctx context.Context, cmd *ports.ReadTaskCommand) (*task.Task, error) {
	if cmd == nil {
		return nil, ErrMissingCommand
	}
	if cmd.ID == nil {
		return nil, ErrMissingTaskID
	}
	id, err := task.ParseID(*cmd.ID)
	if err != nil {
		return nil, ErrInvalidTaskIDFormat
	}
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.ErrorContext(ctx, "task lookup failed", slog.String("operation", "read_task"), slog.Any("error", err))
		return nil, err
	}
	return t, nil
}

func (s *ReadTaskService) List(ctx context.Context) ([]*task.Task, error) {
	all, err := s.tasks.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing tasks failed", slog.String("operation", "list_tasks"), slog.Any("error", err))
		return nil, err
	}
	return all, nil
}
