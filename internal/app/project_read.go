package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/project"
	"github.com/MariuszKam/Organizer/internal/ports"
)

// ReadProjectService answers project lookups.
type ReadProjectService struct {
	projects ports.ProjectStore
	logger   *slog.Logger
}

var _ ports.ReadProjectUseCase = (*ReadProjectService)(nil)

func NewReadProjectService(projects ports.ProjectStore, logger *slog.Logger) (*ReadProjectService, error) {
	if projects == nil {
		return nil, errors.New("app: project store is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ReadProjectService{projects: projects, logger: logger}, nil
}

func (s *ReadProjectService) ByID(ctx context.Context, cmd *ports.ReadProjectCommand) (*project.Project, error) {
	if cmd == nil {
		return nil, ErrMissingCommand
	}
	if cmd.ID == nil {
		return nil, ErrMissingProjectID
	}
	id, err := project.ParseID(*cmd.ID)
	if err != nil {
		return nil, ErrInvalidProjectIDFormat
	}
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.ErrorContext(ctx, "project lookup failed", slog.String("operation", "read_project"), slog.Any("error", err))
		return nil, err
	}
	return p, nil
}

func (s *ReadProjectService) List(ctx context.Context) ([]*project.Project, error) {
	all, err := s.projects.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing projects failed", slog.String("operation", "list_projects"), slog.Any("error", err))
		return nil, err
	}
	return all, nil
}
