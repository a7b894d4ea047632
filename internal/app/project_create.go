package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain/project"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// CreateProjectService creates empty projects.
type CreateProjectService struct {
	projects ports.ProjectStore
	ids      ports.ProjectIDGenerator
	logger   *slog.Logger
}

var _ ports.CreateProjectUseCase = (*CreateProjectService)(nil)

func NewCreateProjectService(projects ports.ProjectStore, ids ports.ProjectIDGenerator, logger *slog.Logger) (*CreateProjectService, error) {
	if projects == nil {
		return nil, errors.New("app: project store is required")
	}
	if ids == nil {
		return nil, errors.New("app: project id generator is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CreateProjectService{projects: projects, ids: ids, logger: logger}, nil
}

func (s *CreateProjectService) Handle(ctx context.Context, cmd *ports.CreateProjectCommand) (project.ID, error) {
	if cmd == nil {
		return project.ID{}, ErrMissingCommand
	}
	if cmd.Name == nil {
		return project.ID{}, ErrMissingProjectName
	}
	name, err := project.NewName(*cmd.Name)
	if err != nil {
		return project.ID{}, ErrInvalidProjectNameFormat
	}

	id := s.ids.Generate()
	p, err := project.New(id, name)
	if err != nil {
		return project.ID{}, err
	}
	if err := s.projects.Save(ctx, p); err != nil {
		s.logger.ErrorContext(ctx, "saving project failed", slog.String("operation", "create_project"), slog.Any("error", err))
		return project.ID{}, err
	}
	s.logger.InfoContext(ctx, "project created",
		slog.String("operation", "create_project"),
		slog.String("project_id", id.String()),
		slog.String("name", name.String()),
	)
	return id, nil
}
