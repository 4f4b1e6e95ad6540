// Package app contains application services and port definitions for the projects context.
package app

import (
	"context"

	"github.com/fd1az/project-tracker/business/projects/domain"
)

// StatsDeriver produces the derived statistics shown in the metric drawer.
// Implementations must be pure with respect to their inputs: the drawer
// calls Derive on every render.
type StatsDeriver interface {
	Derive(metric domain.MetricKey, tf domain.Timeframe, project domain.Project) domain.Stats
}

// StatsFunc adapts an ordinary function to StatsDeriver.
type StatsFunc func(metric domain.MetricKey, tf domain.Timeframe, project domain.Project) domain.Stats

// Derive calls f.
func (f StatsFunc) Derive(metric domain.MetricKey, tf domain.Timeframe, project domain.Project) domain.Stats {
	return f(metric, tf, project)
}

// MetricsSource is the contract for a real metrics backend.
// No implementation ships with the tracker.
type MetricsSource interface {
	FetchMetric(ctx context.Context, metric domain.MetricKey, tf domain.Timeframe, projectID string) (*domain.MetricSnapshot, error)
}

// ProjectRepository provides the tracked projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (domain.Project, error)
}

// CloseAffordance identifies which control dismissed the drawer.
type CloseAffordance string

const (
	CloseViaBack  CloseAffordance = "back"
	CloseViaClose CloseAffordance = "close"
)

// ActivityRecorder observes drawer lifecycle events. Calls come from the UI
// event loop and must not block.
type ActivityRecorder interface {
	Activated(activation uint64, metric domain.MetricKey)
	Loaded(activation uint64, metric domain.MetricKey)
	Cancelled(activation uint64, metric domain.MetricKey)
	Closed(metric domain.MetricKey, via CloseAffordance)
	TimeframeChanged(metric domain.MetricKey, tf domain.Timeframe)
}

// NopRecorder discards all events.
type NopRecorder struct{}

func (NopRecorder) Activated(uint64, domain.MetricKey)                  {}
func (NopRecorder) Loaded(uint64, domain.MetricKey)                     {}
func (NopRecorder) Cancelled(uint64, domain.MetricKey)                  {}
func (NopRecorder) Closed(domain.MetricKey, CloseAffordance)            {}
func (NopRecorder) TimeframeChanged(domain.MetricKey, domain.Timeframe) {}
