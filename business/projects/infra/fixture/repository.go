// Package fixture loads tracked projects from a JSON or YAML file.
package fixture

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/fd1az/project-tracker/business/projects/app"
	"github.com/fd1az/project-tracker/business/projects/domain"
	"github.com/fd1az/project-tracker/internal/apperror"
)

// Format is a fixture encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", apperror.Validation(apperror.CodeUnsupportedFixture, path)
}

// Repository is an in-memory, read-only project store.
type Repository struct {
	projects []domain.Project
	byID     map[string]int
}

var _ app.ProjectRepository = (*Repository)(nil)

// NewRepository indexes projects, rejecting duplicate IDs.
func NewRepository(projects []domain.Project) (*Repository, error) {
	r := &Repository{
		projects: make([]domain.Project, 0, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}
	for _, p := range projects {
		if _, dup := r.byID[p.ID]; dup {
			return nil, apperror.Validation(apperror.CodeDuplicateProject, p.ID)
		}
		r.byID[p.ID] = len(r.projects)
		r.projects = append(r.projects, p)
	}
	return r, nil
}

// Load reads and decodes the fixture at path.
func Load(path string) (*Repository, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeFixtureReadFailed, path, err)
	}

	projects, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return NewRepository(projects)
}

// Decode parses fixture bytes in the given format.
func Decode(data []byte, format Format) ([]domain.Project, error) {
	var doc document

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, apperror.Internal(apperror.CodeFixtureDecodeFailed, string(format), err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, apperror.Internal(apperror.CodeFixtureDecodeFailed, string(format), err)
		}
	default:
		return nil, apperror.Validation(apperror.CodeUnsupportedFixture, string(format))
	}

	projects := make([]domain.Project, 0, len(doc.Projects))
	for _, rec := range doc.Projects {
		p, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// List returns a copy of all projects in file order.
func (r *Repository) List(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

// Get returns the project with the given ID.
func (r *Repository) Get(_ context.Context, id string) (domain.Project, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Project{}, apperror.NotFound(apperror.CodeProjectNotFound, id)
	}
	return r.projects[i], nil
}
