package bridge

import "errors"

// Errors returned by Capture. Match them with errors.Is.
var (
	// ErrInvalidEvent is returned when the event fails precondition
	// validation (empty action). No span is created; the caller can fix
	// the event and retry.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrTracerUnavailable is returned when the bridge has no usable tracer
	// to produce a span. The event is not buffered for later delivery;
	// surfacing the failure lets integrators detect a misconfigured
	// telemetry pipeline instead of silently losing events.
	ErrTracerUnavailable = errors.New("tracer unavailable")
)

// ErrAttributeRejected marks a single attribute that could not be recorded
// on the span. It is never returned by Capture: rejections are per-entry,
// logged and reported through the observer, and the capture still succeeds.
// The variable is exported so log consumers can classify the wrapped errors.
var ErrAttributeRejected = errors.New("attribute rejected")
