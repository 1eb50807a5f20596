package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter is a cumulative metric that only increases.
// It abstracts the underlying Prometheus CounterVec.
type Counter interface {
	// WithLabelValues binds the counter to the given label values. The
	// number of values must match the labels declared at creation.
	WithLabelValues(lvs ...string) Counter

	// Inc increments the counter by 1.
	Inc()

	// Add adds the given value, which must be >= 0.
	Add(val float64)
}

// Gauge is a metric that can go up and down.
// It abstracts the underlying Prometheus GaugeVec.
type Gauge interface {
	// WithLabelValues binds the gauge to the given label values.
	WithLabelValues(lvs ...string) Gauge

	// Set sets the gauge to an arbitrary value.
	Set(val float64)

	// Inc increments the gauge by 1.
	Inc()

	// Dec decrements the gauge by 1.
	Dec()
}

// Histogram tracks the distribution of observed values.
// It abstracts the underlying Prometheus HistogramVec.
type Histogram interface {
	// WithLabelValues binds the histogram to the given label values.
	WithLabelValues(lvs ...string) Observer

	// Observe adds a single observation.
	Observe(val float64)
}

// Observer is the common surface of observation-recording metrics.
type Observer interface {
	// Observe adds a single observation to the metric.
	Observe(val float64)
}

// counterVec wraps prometheus.CounterVec behind the Counter interface.
type counterVec struct {
	vec *prometheus.CounterVec
}

func (c *counterVec) WithLabelValues(lvs ...string) Counter {
	return &boundCounter{metric: c.vec.WithLabelValues(lvs...)}
}

func (c *counterVec) Inc() {
	c.vec.WithLabelValues().Inc()
}

func (c *counterVec) Add(val float64) {
	c.vec.WithLabelValues().Add(val)
}

// boundCounter is a counter already bound to label values.
type boundCounter struct {
	metric prometheus.Counter
}

func (c *boundCounter) WithLabelValues(lvs ...string) Counter {
	// Already bound; returned unchanged for interface compliance.
	return c
}

func (c *boundCounter) Inc() {
	c.metric.Inc()
}

func (c *boundCounter) Add(val float64) {
	c.metric.Add(val)
}

// gaugeVec wraps prometheus.GaugeVec behind the Gauge interface.
type gaugeVec struct {
	vec *prometheus.GaugeVec
}

func (g *gaugeVec) WithLabelValues(lvs ...string) Gauge {
	return &boundGauge{metric: g.vec.WithLabelValues(lvs...)}
}

func (g *gaugeVec) Set(val float64) {
	g.vec.WithLabelValues().Set(val)
}

func (g *gaugeVec) Inc() {
	g.vec.WithLabelValues().Inc()
}

func (g *gaugeVec) Dec() {
	g.vec.WithLabelValues().Dec()
}

// boundGauge is a gauge already bound to label values.
type boundGauge struct {
	metric prometheus.Gauge
}

func (g *boundGauge) WithLabelValues(lvs ...string) Gauge {
	// Already bound; returned unchanged for interface compliance.
	return g
}

func (g *boundGauge) Set(val float64) {
	g.metric.Set(val)
}

func (g *boundGauge) Inc() {
	g.metric.Inc()
}

func (g *boundGauge) Dec() {
	g.metric.Dec()
}

// histogramVec wraps prometheus.HistogramVec behind the Histogram interface.
type histogramVec struct {
	vec *prometheus.HistogramVec
}

func (h *histogramVec) WithLabelValues(lvs ...string) Observer {
	return &boundObserver{metric: h.vec.WithLabelValues(lvs...)}
}

func (h *histogramVec) Observe(val float64) {
	h.vec.WithLabelValues().Observe(val)
}

// boundObserver wraps prometheus.Observer.
type boundObserver struct {
	metric prometheus.Observer
}

func (o *boundObserver) Observe(val float64) {
	o.metric.Observe(val)
}
