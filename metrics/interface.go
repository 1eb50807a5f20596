package metrics

// MetricsCollector provides an interface for creating application metrics.
// It abstracts counter, gauge, and histogram creation without exposing any
// Prometheus types, so consumers can be tested with substitute
// implementations.
//
// All metrics created through this interface are registered on the package
// registry and served from the /metrics endpoint.
type MetricsCollector interface {
	// CreateCounter creates and registers a counter: a cumulative value
	// that only increases, such as total captures.
	//
	// Example:
	//   counter := m.CreateCounter("bridge_captures_total", "Total capture attempts", []string{"action"})
	//   counter.WithLabelValues("click").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateGauge creates and registers a gauge: a value that can go up
	// and down, such as in-flight work.
	//
	// Example:
	//   gauge := m.CreateGauge("bridge_captures_in_flight", "Captures currently running", nil)
	//   gauge.WithLabelValues().Inc()
	CreateGauge(name, help string, labels []string) Gauge

	// CreateHistogram creates and registers a histogram tracking the
	// distribution of observed values across the given buckets.
	//
	// Example:
	//   hist := m.CreateHistogram("bridge_capture_duration_seconds", "Capture latency", []string{"action"}, nil)
	//   hist.WithLabelValues("click").Observe(0.002)
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram
}
