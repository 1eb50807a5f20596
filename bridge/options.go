package bridge

import (
	"github.com/aalemi-dev/tracebridge/logger"
	"github.com/aalemi-dev/tracebridge/observability"
)

// Option configures optional collaborators on a BridgeClient.
type Option func(*BridgeClient)

// WithLogger attaches a logger. The bridge logs one warning per rejected
// attribute; without a logger rejections are still counted for the
// observer but produce no log output.
//
// Example:
//
//	b := bridge.NewBridge(tracerClient, bridge.WithLogger(log))
func WithLogger(l logger.Logger) Option {
	return func(b *BridgeClient) {
		b.logger = l
	}
}

// WithObserver attaches an observer that receives one CaptureContext per
// Capture call, covering successes, validation failures, and tracer
// failures alike.
//
// Example:
//
//	b := bridge.NewBridge(tracerClient, bridge.WithObserver(captureObserver))
func WithObserver(o observability.Observer) Option {
	return func(b *BridgeClient) {
		b.observer = o
	}
}
