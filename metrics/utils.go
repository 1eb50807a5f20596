package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates and registers a counter on the package registry.
//
// Example:
//
//	counter := m.CreateCounter("bridge_captures_total", "Total capture attempts", []string{"action", "outcome"})
//	counter.WithLabelValues("click", "success").Inc()
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
	m.registerer.MustRegister(vec)
	return &counterVec{vec: vec}
}

// CreateGauge creates and registers a gauge on the package registry.
//
// Example:
//
//	gauge := m.CreateGauge("bridge_captures_in_flight", "Captures currently running", nil)
//	gauge.WithLabelValues().Inc()
func (m *Metrics) CreateGauge(name, help string, labels []string) Gauge {
	vec := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
	m.registerer.MustRegister(vec)
	return &gaugeVec{vec: vec}
}

// CreateHistogram creates and registers a histogram on the package
// registry. A nil buckets slice uses the Prometheus defaults.
//
// Example:
//
//	hist := m.CreateHistogram(
//	    "bridge_capture_duration_seconds",
//	    "Capture latency in seconds",
//	    []string{"action"},
//	    []float64{.0001, .0005, .001, .005, .01, .05, .1},
//	)
//	hist.WithLabelValues("click").Observe(0.002)
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	vec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
	m.registerer.MustRegister(vec)
	return &histogramVec{vec: vec}
}
