package analytics

import "context"

// Provider is the capture surface handed to host-facing glue code. It is
// implemented by the concrete *BridgeProvider.
type Provider interface {
	// Capture records one application event. action is required and names
	// the resulting span; subject and attrs are optional ("" and nil skip
	// them). Errors are those of bridge.Capture.
	Capture(ctx context.Context, action, subject string, attrs map[string]interface{}) error
}
