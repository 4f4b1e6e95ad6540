package app

import (
	"context"
	"sort"

	"github.com/fd1az/project-tracker/business/projects/domain"
	"github.com/fd1az/project-tracker/internal/apperror"
	"github.com/fd1az/project-tracker/internal/logger"
)

// ProjectService serves tracked projects to the UI and the render command.
type ProjectService struct {
	repo ProjectRepository
	log  logger.LoggerInterface
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo ProjectRepository, log logger.LoggerInterface) *ProjectService {
	return &ProjectService{repo: repo, log: log}
}

// Projects returns all projects ordered by descending TVL, then ID.
func (s *ProjectService) Projects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]domain.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].TVL.Cmp(sorted[j].TVL); c != 0 {
			return c > 0
		}
		return sorted[i].ID < sorted[j].ID
	})

	s.log.Debug(ctx, "projects listed", "count", len(sorted))
	return sorted, nil
}

// Project returns one project by ID.
func (s *ProjectService) Project(ctx context.Context, id string) (domain.Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "project lookup failed", "id", id, "error", err)
		return domain.Project{}, apperror.Wrap(err, apperror.CodeProjectNotFound, id)
	}
	return p, nil
}
