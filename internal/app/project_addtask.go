package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/project"
	"github.com/MariuszKam/Organizer/internal/domain/task"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// AddTaskToProjectService references an existing task from a project. Both
// sides are resolved before the project is touched, so a failed call leaves
// the task list exactly as it was.
type AddTaskToProjectService struct {
	projects ports.ProjectStore
	tasks    ports.TaskStore
	logger   *slog.Logger
}

var _ ports.AddTaskToProjectUseCase = (*AddTaskToProjectService)(nil)

func NewAddTaskToProjectService(projects ports.ProjectStore, tasks ports.TaskStore, logger *slog.Logger) (*AddTaskToProjectService, error) {
	if projects == nil {
		return nil, errors.New("app: project store is required")
	}
	if tasks == nil {
		return nil, errors.New("app: task store is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AddTaskToProjectService{projects: projects, tasks: tasks, logger: logger}, nil
}

func (s *AddTaskToProjectService) Handle(ctx context.Context, cmd *ports.AddTaskToProjectCommand) (project.ID, error) {
	if cmd == nil {
		return project.ID{}, ErrMissingCommand
	}
	if cmd.ProjectID == nil {
		return project.ID{}, ErrMissingProjectID
	}
	projectID, err := project.ParseID(*cmd.ProjectID)
	if err != nil {
		return project.ID{}, ErrInvalidProjectIDFormat
	}
	if cmd.TaskID == nil {
		return project.ID{}, ErrMissingTaskID
	}
	taskID, err := task.ParseID(*cmd.TaskID)
	if err != nil {
		return project.ID{}, ErrInvalidTaskIDFormat
	}

	p, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return project.ID{}, ErrProjectNotFound
		}
		s.logger.ErrorContext(ctx, "project lookup failed", slog.String("operation", "add_task_to_project"), slog.Any("error", err))
		return project.ID{}, err
	}
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return project.ID{}, ErrTaskNotFound
		}
		s.logger.ErrorContext(ctx, "task lookup failed", slog.String("operation", "add_task_to_project"), slog.Any("error", err))
		return project.ID{}, err
	}

	if err := p.AddTask(taskID); err != nil {
		if errors.Is(err, project.ErrDuplicateTask) {
			return project.ID{}, ErrTaskAlreadyInProject
		}
		return project.ID{}, err
	}
	if err := s.projects.Save(ctx, p); err != nil {
		s.logger.ErrorContext(ctx, "saving project failed", slog.String("operation", "add_task_to_project"), slog.Any("error", err))
		return project.ID{}, err
	}
	s.logger.InfoContext(ctx, "task added to project",
		slog.String("operation", "add_task_to_project"),
		slog.String("project_id", projectID.String()),
		slog.String("task_id", taskID.String()),
	)
	return projectID, nil
}
