package metrics

import (
	"errors"

	"github.com/aalemi-dev/tracebridge/bridge"
	"github.com/aalemi-dev/tracebridge/observability"
)

// CaptureObserver records bridge capture summaries as Prometheus metrics.
// It implements the observability.Observer interface.
//
// Three metrics are maintained:
//   - bridge_captures_total{action, outcome}
//   - bridge_attributes_rejected_total{action}
//   - bridge_capture_duration_seconds{action}
type CaptureObserver struct {
	captures Counter
	rejected Counter
	duration Histogram
}

// NewCaptureObserver creates the bridge metrics on the given collector and
// returns an observer ready to be attached with bridge.WithObserver (or
// picked up automatically by bridge.FXModule).
func NewCaptureObserver(m MetricsCollector) *CaptureObserver {
	return &CaptureObserver{
		captures: m.CreateCounter(
			"bridge_captures_total",
			"Total capture attempts by action and outcome",
			[]string{"action", "outcome"},
		),
		rejected: m.CreateCounter(
			"bridge_attributes_rejected_total",
			"Attribute entries skipped during capture",
			[]string{"action"},
		),
		duration: m.CreateHistogram(
			"bridge_capture_duration_seconds",
			"Wall time spent inside Capture",
			[]string{"action"},
			nil,
		),
	}
}

// ObserveCapture implements observability.Observer.
func (o *CaptureObserver) ObserveCapture(ctx observability.CaptureContext) {
	action := ctx.Action
	if action == "" {
		// Invalid events have no usable action; a fixed label value keeps
		// caller-controlled garbage out of the label set.
		action = "invalid"
	}

	o.captures.WithLabelValues(action, outcomeLabel(ctx.Error)).Inc()

	if ctx.RejectedCount > 0 {
		o.rejected.WithLabelValues(action).Add(float64(ctx.RejectedCount))
	}

	o.duration.WithLabelValues(action).Observe(ctx.Duration.Seconds())
}

// outcomeLabel classifies a capture error into a bounded label value.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, bridge.ErrInvalidEvent):
		return "invalid_event"
	case errors.Is(err, bridge.ErrTracerUnavailable):
		return "tracer_unavailable"
	default:
		return "error"
	}
}
