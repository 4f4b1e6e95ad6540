// Package apm wires OpenTelemetry tracing: exporters, the global provider and span helpers.
package apm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fd1az/project-tracker/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
)

type Provider string

const (
	NewRelicProvider  Provider = "NEWRELIC_PROVIDER"
	ZipkinProvider    Provider = "ZIPKIN_PROVIDER"
	HoneycombProvider Provider = "HONEYCOMB_PROVIDER"
	ConsoleProvider   Provider = "CONSOLE_PROVIDER"
	EmptyProvider     Provider = "EMPTY_PROVIDER"
)

// ParseProvider maps a config value (zipkin, console, honeycomb, newrelic) to a Provider.
func ParseProvider(s string) Provider {
	switch strings.ToLower(s) {
	case "zipkin":
		return ZipkinProvider
	case "console", "stdout":
		return ConsoleProvider
	case "honeycomb":
		return HoneycombProvider
	case "newrelic":
		return NewRelicProvider
	}
	return EmptyProvider
}

type TraceProvider interface {
	Stop() error
}

type traceProvider struct {
	tp *sdktrace.TracerProvider
}

type emptyTraceProvider struct{}

func (emptyTraceProvider) Stop() error { return nil }

// NewEmptyTraceProvider returns a provider that exports nothing.
func NewEmptyTraceProvider() TraceProvider {
	return emptyTraceProvider{}
}

type TracerOptions struct {
	exporter           sdktrace.SpanExporter
	tracerProviderName string
	useEmpty           bool
	err                error
}

type TracerOption func(*TracerOptions)

func WithProvider(provider Provider, log logger.LoggerInterface) TracerOption {
	switch provider {
	case NewRelicProvider:
		return useNewRelic()
	case ZipkinProvider:
		return useZipkin()
	case ConsoleProvider:
		return useConsole()
	case HoneycombProvider:
		return useHoneycomb(log)
	}

	log.Warn(context.Background(), "TracerProvider not found, using EmptyProvider", "provider", provider)
	return useEmpty()
}

// WithExporter uses a caller-supplied exporter, mainly for tests.
func WithExporter(exp sdktrace.SpanExporter) TracerOption {
	return func(option *TracerOptions) {
		option.exporter = exp
		option.tracerProviderName = "CUSTOM_PROVIDER"
	}
}

func useEmpty() TracerOption {
	return func(option *TracerOptions) {
		option.useEmpty = true
		option.tracerProviderName = string(EmptyProvider)
	}
}

func useConsole() TracerOption {
	return func(option *TracerOptions) {
		exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		option.exporter, option.err = exp, err
		option.tracerProviderName = string(ConsoleProvider)
	}
}

func useZipkin() TracerOption {
	return func(option *TracerOptions) {
		exp, err := zipkin.New(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
		option.exporter, option.err = exp, err
		option.tracerProviderName = string(ZipkinProvider)
	}
}

func useNewRelic() TracerOption {
	return func(option *TracerOptions) {
		exp, err := otlptracegrpc.New(
			context.Background(),
			otlptracegrpc.WithEndpoint(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
			otlptracegrpc.WithHeaders(map[string]string{"api-key": os.Getenv("OTEL_EXPORTER_OTLP_HEADERS_KEY")}),
		)
		option.exporter, option.err = exp, err
		option.tracerProviderName = string(NewRelicProvider)
	}
}

func useHoneycomb(log logger.LoggerInterface) TracerOption {
	return func(option *TracerOptions) {
		option.tracerProviderName = string(HoneycombProvider)

		headers := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")
		url := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
		protocol := os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL")

		headerKeyValue := strings.SplitN(headers, "=", 2)
		if len(headerKeyValue) != 2 {
			option.err = fmt.Errorf("invalid OTEL_EXPORTER_OTLP_HEADERS format, expected key=value")
			return
		}
		header := map[string]string{headerKeyValue[0]: headerKeyValue[1]}

		if protocol == "http/protobuf" {
			log.Info(context.Background(), "Initializing Honeycomb with HTTP/Protobuf exporter", "endpoint", url)
			option.exporter, option.err = otlptracehttp.New(
				context.Background(),
				otlptracehttp.WithEndpointURL(url),
				otlptracehttp.WithHeaders(header),
			)
			return
		}

		log.Info(context.Background(), "Initializing Honeycomb with gRPC exporter", "endpoint", url)
		option.exporter, option.err = otlptracegrpc.New(
			context.Background(),
			otlptracegrpc.WithEndpointURL(url),
			otlptracegrpc.WithHeaders(header),
		)
	}
}

// NewTraceProvider builds and installs the global tracer provider.
func NewTraceProvider(serviceName string, options ...TracerOption) (TraceProvider, error) {
	if serviceName == "" {
		serviceName = os.Getenv("OTEL_SERVICE_NAME")
	}

	opts := &TracerOptions{}
	for _, opt := range options {
		opt(opts)
	}

	if opts.err != nil {
		return nil, fmt.Errorf("%s exporter: %w", opts.tracerProviderName, opts.err)
	}
	if opts.useEmpty || opts.exporter == nil {
		return NewEmptyTraceProvider(), nil
	}

	rsrc, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			attribute.String("otel.provider", opts.tracerProviderName),
		))
	if err != nil {
		rsrc = resource.Default()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(opts.exporter),
		sdktrace.WithResource(rsrc),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))

	return &traceProvider{tp}, nil
}

func (o *traceProvider) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5) //nolint:gomnd
	defer cancel()

	return o.tp.Shutdown(ctx)
}
