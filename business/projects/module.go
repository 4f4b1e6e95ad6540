// Package projects implements the tracked-projects bounded context: project
// fixtures, metric descriptors and the statistics shown in the metric drawer.
package projects

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/fd1az/project-tracker/business/projects/app"
	projectsDI "github.com/fd1az/project-tracker/business/projects/di"
	"github.com/fd1az/project-tracker/business/projects/infra/fixture"
	"github.com/fd1az/project-tracker/business/projects/infra/mock"
	"github.com/fd1az/project-tracker/internal/apm"
	"github.com/fd1az/project-tracker/internal/config"
	"github.com/fd1az/project-tracker/internal/di"
	"github.com/fd1az/project-tracker/internal/logger"
	"github.com/fd1az/project-tracker/internal/monolith"
)

// Module implements the projects bounded context.
type Module struct{}

// RegisterServices loads the project fixture and registers the context's services.
func (m *Module) RegisterServices(c di.Container) error {
	cfg := c.Get("config").(*config.Config)

	// Fixture errors surface here rather than on first resolve.
	repo, err := fixture.Load(cfg.Data.ProjectsFile)
	if err != nil {
		return err
	}

	di.RegisterToken(c, projectsDI.ProjectRepository, func(di.ServiceRegistry) app.ProjectRepository {
		return repo
	})

	di.RegisterToken(c, projectsDI.StatsDeriver, func(di.ServiceRegistry) app.StatsDeriver {
		return mock.NewStats()
	})

	// Meter and tracer come from the global providers, which are no-ops
	// unless telemetry is enabled.
	di.RegisterToken(c, projectsDI.ActivityRecorder, func(sr di.ServiceRegistry) app.ActivityRecorder {
		log := sr.Get("logger").(logger.LoggerInterface)
		rec, err := app.NewInstrumentedRecorder(otel.GetMeterProvider(), apm.NewTracer("project-tracker/drawer"), log)
		if err != nil {
			log.Warn(context.Background(), "drawer telemetry unavailable", "error", err)
			return app.NopRecorder{}
		}
		return rec
	})

	di.RegisterToken(c, projectsDI.ProjectService, func(sr di.ServiceRegistry) *app.ProjectService {
		log := sr.Get("logger").(logger.LoggerInterface)
		return app.NewProjectService(projectsDI.GetProjectRepository(sr), log)
	})

	return nil
}

// Startup verifies that at least one project is available.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	log := mono.Logger()

	projects, err := projectsDI.GetProjectService(mono.Services()).Projects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		log.Warn(ctx, "no projects in fixture", "file", mono.Config().Data.ProjectsFile)
	}

	log.Info(ctx, "projects module started", "projects", len(projects))
	return nil
}
