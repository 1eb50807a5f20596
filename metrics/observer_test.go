package metrics

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/tracebridge/bridge"
	"github.com/aalemi-dev/tracebridge/event"
	"github.com/aalemi-dev/tracebridge/observability"
)

func TestCaptureObserver_Success(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()
	obs := NewCaptureObserver(m)

	obs.ObserveCapture(observability.CaptureContext{
		Component:      "bridge",
		Action:         "click",
		AttributeCount: 2,
		RejectedCount:  1,
		Duration:       2 * time.Millisecond,
	})

	expected := `
# HELP bridge_attributes_rejected_total Attribute entries skipped during capture
# TYPE bridge_attributes_rejected_total counter
bridge_attributes_rejected_total{action="click",service="test-service"} 1
# HELP bridge_captures_total Total capture attempts by action and outcome
# TYPE bridge_captures_total counter
bridge_captures_total{action="click",outcome="success",service="test-service"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected),
		"bridge_captures_total", "bridge_attributes_rejected_total"))
}

func TestCaptureObserver_NoRejections_NoRejectedSeries(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()
	obs := NewCaptureObserver(m)

	obs.ObserveCapture(observability.CaptureContext{
		Component: "bridge",
		Action:    "login",
		Duration:  time.Millisecond,
	})

	count, err := testutil.GatherAndCount(m.Registry, "bridge_attributes_rejected_total")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCaptureObserver_InvalidEvent(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()
	obs := NewCaptureObserver(m)

	obs.ObserveCapture(observability.CaptureContext{
		Component: "bridge",
		Action:    "",
		Error:     fmt.Errorf("%w: event action is empty", bridge.ErrInvalidEvent),
	})

	expected := `
# HELP bridge_captures_total Total capture attempts by action and outcome
# TYPE bridge_captures_total counter
bridge_captures_total{action="invalid",outcome="invalid_event",service="test-service"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected),
		"bridge_captures_total"))
}

func TestCaptureObserver_TracerUnavailable(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()
	obs := NewCaptureObserver(m)

	obs.ObserveCapture(observability.CaptureContext{
		Component: "bridge",
		Action:    "click",
		Error:     fmt.Errorf("%w: no tracer configured", bridge.ErrTracerUnavailable),
	})

	expected := `
# HELP bridge_captures_total Total capture attempts by action and outcome
# TYPE bridge_captures_total counter
bridge_captures_total{action="click",outcome="tracer_unavailable",service="test-service"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected),
		"bridge_captures_total"))
}

func TestCaptureObserver_DurationRecorded(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()
	obs := NewCaptureObserver(m)

	obs.ObserveCapture(observability.CaptureContext{
		Component: "bridge",
		Action:    "export",
		Duration:  3 * time.Millisecond,
	})

	count, err := testutil.GatherAndCount(m.Registry, "bridge_capture_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCaptureObserver_EndToEnd(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()
	obs := NewCaptureObserver(m)

	// Wire the observer through a real bridge with a failing tracer.
	b := bridge.NewBridge(nil, bridge.WithObserver(obs))
	err := b.Capture(context.Background(), event.Event{Action: "click"})

	assert.Error(t, err)
	expected := `
# HELP bridge_captures_total Total capture attempts by action and outcome
# TYPE bridge_captures_total counter
bridge_captures_total{action="click",outcome="tracer_unavailable",service="test-service"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected),
		"bridge_captures_total"))
}
