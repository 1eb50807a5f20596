package bridge

import (
	"context"

	"github.com/aalemi-dev/tracebridge/event"
)

// Bridge converts one application event into one finalized trace span.
// It is implemented by the concrete *BridgeClient.
type Bridge interface {
	// Capture validates the event, opens a span named after the event's
	// action, records the subject and attributes on it, and finalizes the
	// span. On success exactly one span was opened and ended, carrying
	// every attribute that passed scalar validation.
	//
	// Capture returns ErrInvalidEvent when the action is empty (no span is
	// opened) and ErrTracerUnavailable when no tracer can produce a span.
	// Individual attribute rejections do not fail the call.
	//
	// Completion means the span was handed to the exporter; Capture never
	// waits for network delivery.
	Capture(ctx context.Context, evt event.Event) error
}
