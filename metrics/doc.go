// Package metrics exposes Prometheus metrics for applications embedding the
// bridge.
//
// It provides a small MetricsCollector interface (counters, gauges,
// histograms) over a dedicated Prometheus registry, an HTTP server serving
// the /metrics endpoint, and CaptureObserver — an observability.Observer
// implementation that turns the bridge's per-capture summaries into three
// metrics:
//
//   - bridge_captures_total{action, outcome}: capture attempts by outcome
//     ("success", "invalid_event", "tracer_unavailable")
//   - bridge_attributes_rejected_total{action}: skipped attribute entries
//   - bridge_capture_duration_seconds{action}: capture latency
//
// Every metric carries a constant "service" label from the configuration.
//
// # Usage
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "webapp-analytics"})
//	obs := metrics.NewCaptureObserver(m)
//
//	b := bridge.NewBridge(tracerClient, bridge.WithObserver(obs))
//
// # FX Module Integration
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{ServiceName: "webapp-analytics"}
//	    }),
//	)
//
// The module starts the metrics server on application start and shuts it
// down gracefully on stop. It also provides an observability.Observer so
// bridge.FXModule picks up metric recording automatically.
package metrics
