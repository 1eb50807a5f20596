package bridge

import (
	"time"

	"github.com/aalemi-dev/tracebridge/event"
	"github.com/aalemi-dev/tracebridge/observability"
)

// observeCapture safely calls the observer if one is configured.
// This helper keeps Capture free of nil checks.
func (b *BridgeClient) observeCapture(evt event.Event, set, rejected int, duration time.Duration, err error) {
	if b.observer == nil {
		return
	}
	b.observer.ObserveCapture(observability.CaptureContext{
		Component:      "bridge",
		Action:         evt.Action,
		Subject:        evt.Subject,
		AttributeCount: set,
		RejectedCount:  rejected,
		Duration:       duration,
		Error:          err,
	})
}
