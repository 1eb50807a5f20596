package observability

import "time"

// Observer receives a summary of every capture attempt made through the
// bridge. Implementations can record metrics, write audit logs, or both.
//
// Observers run synchronously on the capturing goroutine and must be safe
// for concurrent use; the bridge does not serialize calls.
type Observer interface {
	// ObserveCapture is called exactly once per Capture call, after the
	// span (if any) has been finalized. It must not block.
	ObserveCapture(ctx CaptureContext)
}

// CaptureContext summarizes one capture attempt. All fields are populated
// by the bridge; observers treat the value as read-only.
type CaptureContext struct {
	// Component identifies the package that performed the capture.
	// Currently always "bridge"; the field exists so future capture paths
	// (batching front-ends, HTTP ingestion) can share the same observer.
	Component string

	// Action is the event action name, which is also the span name.
	// Empty when the event failed validation.
	Action string

	// Subject is the event subject, if any.
	Subject string

	// AttributeCount is the number of attributes that were set on the span,
	// including the "subject" attribute when present.
	AttributeCount int

	// RejectedCount is the number of attribute entries that failed scalar
	// validation and were skipped. Rejections do not fail the capture.
	RejectedCount int

	// Duration is the wall time spent inside Capture, from validation to
	// span finalization.
	Duration time.Duration

	// Error is the error returned by Capture, or nil on success. Skipped
	// attributes never appear here; they are reported via RejectedCount.
	Error error
}
