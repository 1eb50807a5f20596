// Package analytics exposes the bridge through the capture call shape that
// web-application plugin hosts expect from an analytics provider:
// "capture(action, subject, attributes)".
//
// The package contains no plugin-host mechanics; it only adapts that flat
// call shape onto the event.Event/bridge.Bridge pair, so host-facing glue
// code can register a Provider without constructing events itself:
//
//	provider := analytics.NewProvider(b)
//
//	// inside a UI event handler
//	_ = provider.Capture(ctx, "click", "log-button", nil)
//
// Semantics are exactly those of bridge.Capture: one finalized span per
// successful call, ErrInvalidEvent / ErrTracerUnavailable surfaced from the
// bridge package, rejected attributes skipped.
package analytics
