package app

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/fd1az/project-tracker/business/projects/domain"
	"github.com/fd1az/project-tracker/internal/apm"
	"github.com/fd1az/project-tracker/internal/logger"
)

const (
	metricActivations     = "drawer_activations_total"
	metricCancellations   = "drawer_activations_cancelled_total"
	metricCloses          = "drawer_closes_total"
	metricTimeframeChange = "drawer_timeframe_changes_total"
	metricLoadingSeconds  = "drawer_loading_seconds"
)

type activeActivation struct {
	ctx     context.Context // carries the activation span
	span    apm.Span
	started time.Time
}

// InstrumentedRecorder records drawer activity as OTEL metrics, one trace
// span per activation, and debug logs.
type InstrumentedRecorder struct {
	log    logger.LoggerInterface
	tracer apm.Tracer

	activations   metric.Int64Counter
	cancellations metric.Int64Counter
	closes        metric.Int64Counter
	timeframes    metric.Int64Counter
	loading       metric.Float64Histogram

	mu     sync.Mutex
	active map[uint64]activeActivation
	now    func() time.Time
}

// NewInstrumentedRecorder creates the recorder's instruments on mp.
func NewInstrumentedRecorder(mp metric.MeterProvider, tracer apm.Tracer, log logger.LoggerInterface) (*InstrumentedRecorder, error) {
	meter := mp.Meter("project-tracker/drawer")

	activations, err := meter.Int64Counter(metricActivations,
		metric.WithDescription("Drawer activations by metric"))
	if err != nil {
		return nil, err
	}
	cancellations, err := meter.Int64Counter(metricCancellations,
		metric.WithDescription("Activations superseded before their loading delay elapsed"))
	if err != nil {
		return nil, err
	}
	closes, err := meter.Int64Counter(metricCloses,
		metric.WithDescription("Drawer closes by affordance"))
	if err != nil {
		return nil, err
	}
	timeframes, err := meter.Int64Counter(metricTimeframeChange,
		metric.WithDescription("Timeframe selector changes"))
	if err != nil {
		return nil, err
	}
	loading, err := meter.Float64Histogram(metricLoadingSeconds,
		metric.WithDescription("Time from activation to content shown"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &InstrumentedRecorder{
		log:           log,
		tracer:        tracer,
		activations:   activations,
		cancellations: cancellations,
		closes:        closes,
		timeframes:    timeframes,
		loading:       loading,
		active:        make(map[uint64]activeActivation),
		now:           time.Now,
	}, nil
}

func (r *InstrumentedRecorder) Activated(activation uint64, m domain.MetricKey) {
	ctx, span := r.tracer.StartSpanFromContext(context.Background(), "drawer.activation")
	span.SetAttributes(
		attribute.String("metric", string(m)),
		attribute.Int64("activation", int64(activation)),
	)

	r.mu.Lock()
	r.active[activation] = activeActivation{ctx: ctx, span: span, started: r.now()}
	r.mu.Unlock()

	r.activations.Add(ctx, 1, metric.WithAttributes(attribute.String("metric", string(m))))
	r.log.Debug(ctx, "drawer activated", "metric", m, "activation", activation)
}

func (r *InstrumentedRecorder) Loaded(activation uint64, m domain.MetricKey) {
	a, ok := r.finish(activation)
	if !ok {
		return
	}
	ctx := a.ctx

	elapsed := r.now().Sub(a.started)
	r.loading.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("metric", string(m))))
	a.span.AddEvent("loaded")
	a.span.End()
	r.log.Debug(ctx, "drawer loaded", "metric", m, "activation", activation, "elapsed", elapsed)
}

func (r *InstrumentedRecorder) Cancelled(activation uint64, m domain.MetricKey) {
	a, ok := r.finish(activation)
	if !ok {
		return
	}
	ctx := a.ctx

	r.cancellations.Add(ctx, 1, metric.WithAttributes(attribute.String("metric", string(m))))
	a.span.AddEvent("cancelled")
	a.span.End()
	r.log.Debug(ctx, "drawer activation cancelled", "metric", m, "activation", activation)
}

func (r *InstrumentedRecorder) Closed(m domain.MetricKey, via CloseAffordance) {
	ctx := context.Background()
	r.closes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("metric", string(m)),
		attribute.String("affordance", string(via)),
	))
	r.log.Debug(ctx, "drawer closed", "metric", m, "via", via)
}

func (r *InstrumentedRecorder) TimeframeChanged(m domain.MetricKey, tf domain.Timeframe) {
	ctx := context.Background()
	r.timeframes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("metric", string(m)),
		attribute.String("timeframe", string(tf)),
	))
	r.log.Debug(ctx, "drawer timeframe changed", "metric", m, "timeframe", tf)
}

// Pending returns the number of activations still waiting to load.
func (r *InstrumentedRecorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

func (r *InstrumentedRecorder) finish(activation uint64) (activeActivation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.active[activation]
	if ok {
		delete(r.active, activation)
	}
	return a, ok
}
