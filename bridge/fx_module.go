package bridge

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/tracebridge/logger"
	"github.com/aalemi-dev/tracebridge/observability"
	"github.com/aalemi-dev/tracebridge/tracer"
)

// moduleParams collects the bridge dependencies from the FX graph. The
// tracer is required; logger and observer are picked up when some other
// module provides them and silently omitted otherwise.
type moduleParams struct {
	fx.In

	Tracer   tracer.Tracer
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// newBridgeFromParams adapts the FX parameter struct to NewBridge.
func newBridgeFromParams(p moduleParams) *BridgeClient {
	var opts []Option
	if p.Logger != nil {
		opts = append(opts, WithLogger(p.Logger))
	}
	if p.Observer != nil {
		opts = append(opts, WithObserver(p.Observer))
	}
	return NewBridge(p.Tracer, opts...)
}

// FXModule wires the bridge into a Uber FX application.
//
// The module provides:
//  1. *BridgeClient (concrete type) for direct use
//  2. Bridge interface for dependency injection
//
// A tracer.Tracer must be available in the dependency graph (tracer.FXModule
// provides one). A logger.Logger and an observability.Observer are attached
// automatically when present.
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    logger.FXModule,
//	    bridge.FXModule,
//	    fx.Provide(
//	        func() tracer.Config { return tracer.Config{ServiceName: "webapp-analytics"} },
//	        func() logger.Config { return logger.Config{Level: logger.Info, ServiceName: "webapp-analytics"} },
//	    ),
//	    fx.Invoke(func(b bridge.Bridge) {
//	        _ = b.Capture(context.Background(), event.Event{Action: "app-startup"})
//	    }),
//	)
//	app.Run()
var FXModule = fx.Module("bridge",
	fx.Provide(
		newBridgeFromParams, // Provides *BridgeClient
		fx.Annotate(
			func(b *BridgeClient) Bridge { return b },
			fx.As(new(Bridge)),
		),
	),
)
