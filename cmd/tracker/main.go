// Package main is the entry point for the project tracker.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fd1az/project-tracker/business/projects"
	"github.com/fd1az/project-tracker/business/projects/app"
	projectsDI "github.com/fd1az/project-tracker/business/projects/di"
	"github.com/fd1az/project-tracker/business/projects/domain"
	"github.com/fd1az/project-tracker/internal/apm"
	"github.com/fd1az/project-tracker/internal/apperror"
	"github.com/fd1az/project-tracker/internal/config"
	"github.com/fd1az/project-tracker/internal/health"
	"github.com/fd1az/project-tracker/internal/logger"
	"github.com/fd1az/project-tracker/internal/metrics"
	"github.com/fd1az/project-tracker/internal/monolith"
	"github.com/fd1az/project-tracker/pkg/ui"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// options are the command-line settings.
type options struct {
	configPath   string
	projectsFile string
	render       bool
	metric       string
	projectID    string
	back         bool
}

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.projectsFile, "projects", "", "Path to the projects fixture (overrides data.projects_file)")
	flag.BoolVar(&opts.render, "render", false, "Print one metric drawer to stdout and exit (no TUI)")
	flag.StringVar(&opts.metric, "metric", string(domain.MetricTVL), "Metric to render: tvl, wallets, mentions, commits")
	flag.StringVar(&opts.projectID, "project", "", "Project ID to render (default: first project)")
	flag.BoolVar(&opts.back, "back", false, "Show the back affordance when rendering")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("project-tracker %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) (err error) {
	// Load configuration
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.projectsFile != "" {
		cfg.Data.ProjectsFile = opts.projectsFile
	}

	// Render mode logs to stderr; the TUI owns the terminal, so it logs to a file or nowhere.
	logOut, closeLog, err := logOutput(cfg, opts.render)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	log := logger.New(logOut, logger.ParseLevel(cfg.App.LogLevel), cfg.App.Name, apm.TraceIDFromContext)
	defer func() {
		if err != nil {
			logFailure(ctx, log, err)
		}
	}()

	log.Info(ctx, "starting project tracker",
		"version", version,
		"environment", cfg.App.Environment,
		"projects_file", cfg.Data.ProjectsFile,
	)

	// Create monolith (application container)
	mono := monolith.New(cfg, log)
	defer mono.Close()

	if cfg.Telemetry.Enabled {
		if err := setupTelemetry(ctx, cfg, log, mono); err != nil {
			return err
		}
	}

	modules := []monolith.Module{
		&projects.Module{},
	}

	if err := mono.RegisterModules(modules...); err != nil {
		return fmt.Errorf("failed to register modules: %w", err)
	}
	if err := mono.StartModules(ctx, modules...); err != nil {
		return fmt.Errorf("failed to start modules: %w", err)
	}

	svc := projectsDI.GetProjectService(mono.Services())

	if cfg.Telemetry.Enabled && cfg.Telemetry.HealthPort > 0 {
		healthServer := health.NewServer(cfg.Telemetry.HealthPort, version, log)
		healthServer.RegisterCheck("projects", func(ctx context.Context) (bool, string) {
			list, err := svc.Projects(ctx)
			if err != nil {
				return false, err.Error()
			}
			return len(list) > 0, strconv.Itoa(len(list)) + " loaded"
		})
		if err := healthServer.Start(); err != nil {
			log.Warn(ctx, "failed to start health server", "error", err)
		} else {
			log.Info(ctx, "health server started", "port", cfg.Telemetry.HealthPort)
			defer healthServer.Stop(context.Background())
		}
	}

	drawerOpts, err := drawerOptions(cfg, mono)
	if err != nil {
		return err
	}

	if opts.render {
		return render(ctx, os.Stdout, svc, opts, drawerOpts...)
	}

	list, err := svc.Projects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	if err := ui.Run(ctx, list, drawerOpts...); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// logFailure logs err with its code, cause and stack when it carries an AppError.
func logFailure(ctx context.Context, log logger.LoggerInterface, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		log.Error(ctx, "tracker failed", "error", err.Error())
		return
	}
	log.Error(ctx, "tracker failed",
		"error", err.Error(),
		"details", appErr.WithTraceID(apm.TraceIDFromContext(ctx)).ToLog(),
	)
}

func logOutput(cfg *config.Config, render bool) (io.Writer, func(), error) {
	if render {
		return os.Stderr, func() {}, nil
	}
	if cfg.App.LogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(cfg.App.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func setupTelemetry(ctx context.Context, cfg *config.Config, log logger.LoggerInterface, mono interface{ OnClose(func() error) }) error {
	tp, err := apm.NewTraceProvider(cfg.Telemetry.ServiceName,
		apm.WithProvider(apm.ParseProvider(cfg.Telemetry.TraceProvider), log))
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}
	mono.OnClose(tp.Stop)
	log.Info(ctx, "tracing initialized", "provider", cfg.Telemetry.TraceProvider, "endpoint", cfg.Telemetry.OTLPEndpoint)

	metricOpts := []metrics.OptionFn{
		metrics.WithServiceName(cfg.Telemetry.ServiceName),
		metrics.WithProviderConfig(metrics.ProviderCfg{Provider: metrics.PrometheusProvider}),
	}
	if cfg.Telemetry.OTLPEndpoint != "" {
		metricOpts = append(metricOpts, metrics.WithProviderConfig(
			metrics.NewOtelCollectorConfig(cfg.Telemetry.OTLPEndpoint, nil, metrics.InsecureOtel)))
	}
	mp, err := metrics.NewMetricProvider(metricOpts...)
	if err != nil {
		return fmt.Errorf("failed to init metrics: %w", err)
	}
	mono.OnClose(func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return mp.Shutdown(shutdownCtx)
	})

	// Start Prometheus metrics server in background
	port := strconv.Itoa(cfg.Telemetry.PrometheusPort)
	go func() {
		if err := metrics.ServePrometheusMetrics(ctx, metrics.WithPort(port)); err != nil {
			log.Warn(ctx, "prometheus server stopped", "error", err)
		}
	}()
	log.Info(ctx, "prometheus metrics server started", "port", port)
	return nil
}

func drawerOptions(cfg *config.Config, mono monolith.Monolith) ([]ui.DrawerOption, error) {
	tf, err := domain.ParseTimeframe(cfg.Drawer.DefaultTimeframe)
	if err != nil {
		return nil, fmt.Errorf("invalid drawer timeframe: %w", err)
	}
	return []ui.DrawerOption{
		ui.WithLoadingDelay(cfg.Drawer.LoadingDelay),
		ui.WithWidth(cfg.Drawer.Width),
		ui.WithDefaultTimeframe(tf),
		ui.WithTimeframeReset(cfg.Drawer.ResetTimeframeOnOpen),
		ui.WithStatsDeriver(projectsDI.GetStatsDeriver(mono.Services())),
		ui.WithRecorder(projectsDI.GetActivityRecorder(mono.Services())),
	}, nil
}

// render prints one drawer for the selected project and metric.
func render(ctx context.Context, w io.Writer, svc *app.ProjectService, opts options, drawerOpts ...ui.DrawerOption) error {
	metric, err := domain.ParseMetricKey(opts.metric)
	if err != nil {
		return fmt.Errorf("invalid -metric: %w", err)
	}

	var project domain.Project
	if opts.projectID != "" {
		project, err = svc.Project(ctx, opts.projectID)
		if err != nil {
			return err
		}
	} else {
		list, err := svc.Projects(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			return fmt.Errorf("no projects to render")
		}
		project = list[0]
	}

	fmt.Fprintf(w, "%s · %s\n\n", project.DisplayName(), domain.Details(metric, project))
	fmt.Fprintln(w, ui.RenderDrawer(ui.DrawerProps{
		Open:          true,
		Metric:        metric,
		Project:       &project,
		ShowBackArrow: opts.back,
	}, drawerOpts...))
	return nil
}
