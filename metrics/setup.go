package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a dedicated Prometheus registry and the HTTP server that
// serves it. Using a dedicated registry rather than the process-global
// default keeps this package free of ambient state: two Metrics instances
// can coexist, and tests never collide on registration.
//
// Metrics implements the MetricsCollector interface.
type Metrics struct {
	// Server serves the /metrics endpoint. Nil when the address was
	// explicitly disabled in configuration.
	Server *http.Server

	// Registry holds every metric created through this instance. Exposed
	// so callers can gather programmatically (tests do).
	Registry *prometheus.Registry

	// registerer is the service-label-wrapped view of Registry used for
	// metric creation.
	registerer prometheus.Registerer
}

// NewMetrics builds a Metrics instance from the given configuration.
//
// All metrics created through the instance carry a constant
// service=<ServiceName> label. When cfg.EnableRuntimeMetrics is set, the Go
// runtime and process collectors are registered as well. The HTTP server is
// constructed but not started; start it directly or let FXModule manage it.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "webapp-analytics"})
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	if cfg.EnableRuntimeMetrics {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		Registry:   registry,
		registerer: registerer,
	}

	addr := DefaultMetricsAddress
	if cfg.Address != nil {
		addr = *cfg.Address
	}

	if addr != "" {
		m.Server = &http.Server{
			Addr:    addr,
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}
	}

	return m
}
