package tracer

// Config defines the configuration for the OpenTelemetry tracer client.
type Config struct {
	// ServiceName identifies the service emitting spans. It is set as the
	// "service.name" resource attribute on every span, so it should be a
	// stable, descriptive name such as "webapp-analytics".
	ServiceName string

	// AppEnv names the deployment environment ("development", "staging",
	// "production"). It is recorded as the "deployment.environment" and
	// "environment" resource attributes, letting backends separate traces
	// per environment.
	AppEnv string

	// EnableExport controls whether finished spans are shipped to a
	// collector. When true, an OTLP HTTP exporter with batching is
	// configured. When false, spans are created and timed but never leave
	// the process, which keeps tests and local runs free of network traffic.
	EnableExport bool

	// CollectorEndpoint overrides the OTLP HTTP endpoint URL, e.g.
	// "http://otel-collector:4318/v1/traces". When empty, the exporter uses
	// its standard configuration (the OTEL_EXPORTER_OTLP_* environment
	// variables or the library default of localhost:4318).
	//
	// Only consulted when EnableExport is true.
	CollectorEndpoint string
}
