package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/fd1az/project-tracker/business/projects/domain"
	"github.com/fd1az/project-tracker/internal/apm"
	"github.com/fd1az/project-tracker/internal/logger"
)

type recorderFixture struct {
	rec    *InstrumentedRecorder
	reader *sdkmetric.ManualReader
	spans  *tracetest.InMemoryExporter
	tp     *sdktrace.TracerProvider
}

func newRecorderFixture(t *testing.T) recorderFixture {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	spans := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans))

	rec, err := NewInstrumentedRecorder(mp, apm.NewTracerFromProvider(tp, "test"),
		logger.New(io.Discard, logger.LevelDebug, "test", nil))
	if err != nil {
		t.Fatalf("NewInstrumentedRecorder() error = %v", err)
	}
	return recorderFixture{rec: rec, reader: reader, spans: spans, tp: tp}
}

func (f recorderFixture) collect(t *testing.T) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := f.reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func counterValue(t *testing.T, rm metricdata.ResourceMetrics, name string, attrs ...attribute.KeyValue) int64 {
	t.Helper()
	m, ok := findMetric(rm, name)
	if !ok {
		return 0
	}
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("%s: data type = %T, want Sum[int64]", name, m.Data)
	}
	want := attribute.NewSet(attrs...)
	var total int64
	for _, dp := range sum.DataPoints {
		if dp.Attributes.Equals(&want) {
			total += dp.Value
		}
	}
	return total
}

func TestInstrumentedRecorder_ActivationLoaded(t *testing.T) {
	f := newRecorderFixture(t)

	f.rec.Activated(1, domain.MetricTVL)
	if got := f.rec.Pending(); got != 1 {
		t.Fatalf("Pending() = %d, want 1", got)
	}
	f.rec.Loaded(1, domain.MetricTVL)
	if got := f.rec.Pending(); got != 0 {
		t.Fatalf("Pending() after Loaded = %d, want 0", got)
	}

	rm := f.collect(t)
	if got := counterValue(t, rm, metricActivations, attribute.String("metric", "tvl")); got != 1 {
		t.Errorf("activations = %d, want 1", got)
	}

	m, ok := findMetric(rm, metricLoadingSeconds)
	if !ok {
		t.Fatalf("%s not recorded", metricLoadingSeconds)
	}
	hist, ok := m.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("loading data type = %T", m.Data)
	}
	if len(hist.DataPoints) != 1 || hist.DataPoints[0].Count != 1 {
		t.Errorf("loading histogram points = %+v, want one observation", hist.DataPoints)
	}

	got := f.spans.GetSpans()
	if len(got) != 1 {
		t.Fatalf("spans = %d, want 1", len(got))
	}
	if got[0].Name != "drawer.activation" {
		t.Errorf("span name = %q", got[0].Name)
	}
	if len(got[0].Events) != 1 || got[0].Events[0].Name != "loaded" {
		t.Errorf("span events = %+v, want [loaded]", got[0].Events)
	}
}

func TestInstrumentedRecorder_Cancelled(t *testing.T) {
	f := newRecorderFixture(t)

	f.rec.Activated(1, domain.MetricWallets)
	f.rec.Cancelled(1, domain.MetricWallets)
	// A late load for the cancelled activation is ignored.
	f.rec.Loaded(1, domain.MetricWallets)

	rm := f.collect(t)
	if got := counterValue(t, rm, metricCancellations, attribute.String("metric", "wallets")); got != 1 {
		t.Errorf("cancellations = %d, want 1", got)
	}
	if m, ok := findMetric(rm, metricLoadingSeconds); ok {
		if hist, ok := m.Data.(metricdata.Histogram[float64]); ok && len(hist.DataPoints) > 0 {
			t.Errorf("loading recorded for cancelled activation: %+v", hist.DataPoints)
		}
	}

	spans := f.spans.GetSpans()
	if len(spans) != 1 || spans[0].Events[0].Name != "cancelled" {
		t.Errorf("spans = %+v, want one cancelled span", spans)
	}
}

func TestInstrumentedRecorder_LoadingElapsed(t *testing.T) {
	f := newRecorderFixture(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := start
	f.rec.now = func() time.Time { return clock }

	f.rec.Activated(7, domain.MetricCommits)
	clock = start.Add(500 * time.Millisecond)
	f.rec.Loaded(7, domain.MetricCommits)

	m, ok := findMetric(f.collect(t), metricLoadingSeconds)
	if !ok {
		t.Fatal("loading histogram missing")
	}
	hist := m.Data.(metricdata.Histogram[float64])
	if got := hist.DataPoints[0].Sum; got != 0.5 {
		t.Errorf("loading sum = %v, want 0.5", got)
	}
}

func TestInstrumentedRecorder_ClosedAndTimeframe(t *testing.T) {
	f := newRecorderFixture(t)

	f.rec.Closed(domain.MetricMentions, CloseViaBack)
	f.rec.Closed(domain.MetricMentions, CloseViaClose)
	f.rec.Closed(domain.MetricMentions, CloseViaClose)
	f.rec.TimeframeChanged(domain.MetricTVL, domain.Timeframe30d)

	rm := f.collect(t)
	tests := []struct {
		via  CloseAffordance
		want int64
	}{
		{CloseViaBack, 1},
		{CloseViaClose, 2},
	}
	for _, tt := range tests {
		got := counterValue(t, rm, metricCloses,
			attribute.String("affordance", string(tt.via)),
			attribute.String("metric", "mentions"))
		if got != tt.want {
			t.Errorf("closes via %s = %d, want %d", tt.via, got, tt.want)
		}
	}

	got := counterValue(t, rm, metricTimeframeChange,
		attribute.String("metric", "tvl"),
		attribute.String("timeframe", "30d"))
	if got != 1 {
		t.Errorf("timeframe changes = %d, want 1", got)
	}
}

func TestInstrumentedRecorder_LogsCarryActivationTraceID(t *testing.T) {
	spans := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans))
	var logs bytes.Buffer
	log := logger.New(&logs, logger.LevelDebug, "test", apm.TraceIDFromContext)

	rec, err := NewInstrumentedRecorder(sdkmetric.NewMeterProvider(), apm.NewTracerFromProvider(tp, "test"), log)
	if err != nil {
		t.Fatalf("NewInstrumentedRecorder() error = %v", err)
	}

	rec.Activated(1, domain.MetricTVL)
	rec.Loaded(1, domain.MetricTVL)
	rec.Activated(2, domain.MetricWallets)
	rec.Cancelled(2, domain.MetricWallets)

	ended := spans.GetSpans()
	if len(ended) != 2 {
		t.Fatalf("spans = %d, want 2", len(ended))
	}
	traceIDs := map[string]string{
		"drawer activated":            ended[0].SpanContext.TraceID().String(),
		"drawer loaded":               ended[0].SpanContext.TraceID().String(),
		"drawer activation cancelled": ended[1].SpanContext.TraceID().String(),
	}

	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		for msg, id := range traceIDs {
			if !strings.Contains(line, `"msg":"`+msg+`"`) {
				continue
			}
			if !strings.Contains(line, `"trace_id":"`+id+`"`) {
				t.Errorf("log %q missing trace_id %s: %s", msg, id, line)
			}
			delete(traceIDs, msg)
		}
	}
	for msg := range traceIDs {
		t.Errorf("log %q not written", msg)
	}
}

func TestNopRecorder(t *testing.T) {
	var r ActivityRecorder = NopRecorder{}
	r.Activated(1, domain.MetricTVL)
	r.Loaded(1, domain.MetricTVL)
	r.Cancelled(1, domain.MetricTVL)
	r.Closed(domain.MetricTVL, CloseViaClose)
	r.TimeframeChanged(domain.MetricTVL, domain.Timeframe24h)
}
