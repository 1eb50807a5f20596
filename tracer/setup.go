package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// TracerClient is the OpenTelemetry-backed implementation of the Tracer
// interface. It owns a dedicated TracerProvider rather than registering
// itself as the process-global provider: consumers receive the client by
// explicit injection, never by ambient lookup, so two clients with
// different configurations can coexist in one process and tests never
// observe each other's spans.
//
// TracerClient is safe for concurrent use and is intended to be created
// once and shared.
type TracerClient struct {
	provider   *trace.TracerProvider
	propagator propagation.TextMapPropagator
}

// NewClient creates a TracerClient from the given configuration.
//
// When cfg.EnableExport is true, an OTLP HTTP exporter is set up and wired
// to the provider through a batching span processor; initialization failure
// of the exporter is returned as an error. When false, no exporter is
// configured and spans never leave the process.
//
// The provider carries resource attributes identifying the service
// (service name, deployment environment), and the client propagates trace
// context using the W3C TraceContext and Baggage formats.
func NewClient(cfg Config) (*TracerClient, error) {
	return newClientWithContext(context.Background(), cfg)
}

func newClientWithContext(ctx context.Context, cfg Config) (*TracerClient, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		var clientOpts []otlptracehttp.Option
		if cfg.CollectorEndpoint != "" {
			clientOpts = append(clientOpts, otlptracehttp.WithEndpointURL(cfg.CollectorEndpoint))
		}

		exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(clientOpts...))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	return &TracerClient{
		provider:   trace.NewTracerProvider(options...),
		propagator: propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}),
	}, nil
}

// Shutdown flushes any batched spans and releases provider resources.
// After Shutdown returns, spans started from this client are no-ops.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
