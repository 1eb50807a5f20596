package bridge

import (
	"github.com/aalemi-dev/tracebridge/logger"
	"github.com/aalemi-dev/tracebridge/observability"
	"github.com/aalemi-dev/tracebridge/tracer"
)

// BridgeClient is the concrete event-to-span bridge. It holds references to
// its collaborators and no other state, so it is stateless between Capture
// calls and safe for concurrent use. It implements the Bridge interface.
type BridgeClient struct {
	// tracer produces and finalizes spans. Required; Capture fails with
	// ErrTracerUnavailable when nil.
	tracer tracer.Tracer

	// logger receives per-attribute rejection warnings. Optional.
	logger logger.Logger

	// observer receives one capture summary per Capture call. Optional.
	observer observability.Observer
}

// NewBridge creates a bridge over the given tracer. The tracer is the only
// required dependency and is always passed explicitly; the bridge performs
// no global or ambient lookup. Optional collaborators (logger, observer)
// are attached via options.
//
// Example:
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//	    ServiceName: "webapp-analytics",
//	    AppEnv:      "production",
//	})
//	if err != nil {
//	    return err
//	}
//
//	b := bridge.NewBridge(tracerClient, bridge.WithLogger(log))
func NewBridge(t tracer.Tracer, opts ...Option) *BridgeClient {
	b := &BridgeClient{tracer: t}

	for _, opt := range opts {
		opt(b)
	}

	return b
}
