package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/project"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// DeleteProjectService removes a project from the store. Tasks referenced by
// the project are untouched; membership lives only in the project.
type DeleteProjectService struct {
	projects ports.ProjectStore
	logger   *slog.Logger
}

var _ ports.DeleteProjectUseCase = (*DeleteProjectService)(nil)

func NewDeleteProjectService(projects ports.ProjectStore, logger *slog.Logger) (*DeleteProjectService, error) {
	if projects == nil {
		return nil, errors.New("app: project store is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DeleteProjectService{projects: projects, logger: logger}, nil
}

func (s *DeleteProjectService) Handle(ctx context.Context, cmd *ports.DeleteProjectCommand) (project.ID, error) {
	if cmd == nil {
		return project.ID{}, ErrMissingCommand
	}
	if cmd.ID == nil {
		return project.ID{}, ErrMissingProjectID
	}
	id, err := project.ParseID(*cmd.ID)
	if err != nil {
		return project.ID{}, ErrInvalidProjectIDFormat
	}
	existing, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return project.ID{}, ErrProjectNotFound
		}
		s.logger.ErrorContext(ctx, "project lookup failed", slog.String("operation", "delete_project"), slog.Any("error", err))
		return project.ID{}, err
	}
	if err := s.projects.Remove(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "removing project failed", slog.String("operation", "delete_project"), slog.Any("error", err))
		return project.ID{}, err
	}
	s.logger.InfoContext(ctx, "project deleted",
		slog.String("operation", "delete_project"),
		slog.String("project_id", id.String()),
	)
	return id, nil
}
