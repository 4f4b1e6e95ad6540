// Package di contains dependency injection tokens for the projects context.
package di

import (
	"github.com/fd1az/project-tracker/business/projects/app"
	"github.com/fd1az/project-tracker/internal/di"
)

// Public service tokens - exposed to the UI and the command
var (
	ProjectService   = di.NewToken[*app.ProjectService]("projects.ProjectService")
	StatsDeriver     = di.NewToken[app.StatsDeriver]("projects.StatsDeriver")
	ActivityRecorder = di.NewToken[app.ActivityRecorder]("projects.ActivityRecorder")
)

// Private dependency tokens - internal to the projects module
var (
	ProjectRepository = di.NewToken[app.ProjectRepository]("projects:repository")
)

func GetProjectService(c di.ServiceRegistry) *app.ProjectService {
	return di.GetToken(c, ProjectService)
}

func GetStatsDeriver(c di.ServiceRegistry) app.StatsDeriver {
	return di.GetToken(c, StatsDeriver)
}

func GetActivityRecorder(c di.ServiceRegistry) app.ActivityRecorder {
	return di.GetToken(c, ActivityRecorder)
}

func GetProjectRepository(c di.ServiceRegistry) app.ProjectRepository {
	return di.GetToken(c, ProjectRepository)
}
