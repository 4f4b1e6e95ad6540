package projects

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	projectsDI "github.com/fd1az/project-tracker/business/projects/di"
	"github.com/fd1az/project-tracker/business/projects/domain"
	"github.com/fd1az/project-tracker/internal/apperror"
	"github.com/fd1az/project-tracker/internal/config"
	"github.com/fd1az/project-tracker/internal/logger"
	"github.com/fd1az/project-tracker/internal/monolith"
)

func testConfig(t *testing.T, fixture string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatal(err)
	}
	return &config.Config{Data: config.DataConfig{ProjectsFile: path}}
}

func TestModule_Wiring(t *testing.T) {
	cfg := testConfig(t, `{"projects":[{"id":"aave","name":"Aave","tvl":"100","commits":12}]}`)
	mono := monolith.New(cfg, logger.New(io.Discard, logger.LevelInfo, "test", nil))

	mod := &Module{}
	if err := mono.RegisterModules(mod); err != nil {
		t.Fatalf("RegisterModules() error = %v", err)
	}
	if err := mono.StartModules(context.Background(), mod); err != nil {
		t.Fatalf("StartModules() error = %v", err)
	}

	sr := mono.Services()
	p, err := projectsDI.GetProjectService(sr).Project(context.Background(), "aave")
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	stats := projectsDI.GetStatsDeriver(sr).Derive(domain.MetricCommits, domain.DefaultTimeframe, p)
	if cs, ok := stats.(domain.CommitStats); !ok || cs.Total != 12 {
		t.Errorf("Derive(commits) = %#v", stats)
	}

	if projectsDI.GetActivityRecorder(sr) == nil {
		t.Error("ActivityRecorder not registered")
	}
}

func TestModule_FixtureError(t *testing.T) {
	cfg := testConfig(t, `{"projects":[{"id":"a"},{"id":"a"}]}`)
	mono := monolith.New(cfg, logger.New(io.Discard, logger.LevelInfo, "test", nil))

	err := mono.RegisterModules(&Module{})
	if got := apperror.GetCode(err); got != apperror.CodeDuplicateProject {
		t.Errorf("RegisterModules() code = %s, want %s", got, apperror.CodeDuplicateProject)
	}
}
