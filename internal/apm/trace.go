package apm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type Tracer interface {
	StartSpanFromContext(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, Span)
}

type openTracer struct {
	tracer trace.Tracer
}

// NewTracer returns a tracer bound to the global tracer provider.
func NewTracer(name string) Tracer {
	return &openTracer{otel.Tracer(name)}
}

// NewTracerFromProvider returns a tracer bound to tp instead of the global provider.
func NewTracerFromProvider(tp trace.TracerProvider, name string) Tracer {
	return &openTracer{tp.Tracer(name)}
}

func (t *openTracer) StartSpanFromContext(
	ctx context.Context, name string, opts ...trace.SpanStartOption,
) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name, opts...)
	return ctx, NewSpan(span)
}

// TraceIDFromContext returns the active trace ID, or "" when none is recording.
func TraceIDFromContext(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
