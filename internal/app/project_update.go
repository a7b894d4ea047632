package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/project"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// UpdateProjectService renames existing projects.
type UpdateProjectService struct {
	projects ports.ProjectStore
	logger   *slog.Logger
}

var _ ports.UpdateProjectUseCase = (*UpdateProjectService)(nil)

func NewUpdateProjectService(projects ports.ProjectStore, logger *slog.Logger) (*UpdateProjectService, error) {
	if projects == nil {
		return nil, errors.New("app: project store is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UpdateProjectService{projects: projects, logger: logger}, nil
}

func (s *UpdateProjectService) Handle(ctx context.Context, cmd *ports.UpdateProjectCommand) (project.ID, error) {
	if cmd == nil {
		return project.ID{}, ErrMissingCommand
	}
	if cmd.Name == nil {
		return project.ID{}, ErrNoFieldsProvided
	}
	if cmd.ID == nil {
		return project.ID{}, ErrMissingProjectID
	}
	id, err := project.ParseID(*cmd.ID)
	if err != nil {
		return project.ID{}, ErrInvalidProjectIDFormat
	}
	current, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return project.ID{}, ErrProjectNotFound
		}
		s.logger.ErrorContext(ctx, "project lookup failed", slog.String("operation", "update_project"), slog.Any("error", err))
		return project.ID{}, err
	}
	name, err := project.NewName(*cmd.Name)
	if err != nil {
		return project.ID{}, ErrInvalidProjectNameFormat
	}

	if err := current.Rename(name); err != nil {
		return project.ID{}, err
	}
	if err := s.projects.Save(ctx, current); err != nil {
		s.logger.ErrorContext(ctx, "saving project failed", slog.String("operation", "update_project"), slog.Any("error", err))
		return project.ID{}, err
	}
	s.logger.InfoContext(ctx, "project renamed",
		slog.String("operation", "update_project"),
		slog.String("project_id", id.String()),
		slog.String("name", name.String()),
	)
	return id, nil
}
