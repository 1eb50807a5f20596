package analytics

import (
	"context"

	"github.com/aalemi-dev/tracebridge/bridge"
	"github.com/aalemi-dev/tracebridge/event"
)

// BridgeProvider adapts a bridge.Bridge to the Provider call shape.
// It is stateless and safe for concurrent use. It implements the Provider
// interface.
type BridgeProvider struct {
	bridge bridge.Bridge
}

// NewProvider creates a provider over the given bridge. The bridge is
// injected explicitly, mirroring the bridge's own construction style.
func NewProvider(b bridge.Bridge) *BridgeProvider {
	return &BridgeProvider{bridge: b}
}

// Capture implements the Provider interface by assembling an event.Event
// and delegating to the bridge.
func (p *BridgeProvider) Capture(ctx context.Context, action, subject string, attrs map[string]interface{}) error {
	return p.bridge.Capture(ctx, event.Event{
		Action:     action,
		Subject:    subject,
		Attributes: attrs,
	})
}
