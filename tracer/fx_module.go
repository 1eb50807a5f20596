package tracer

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule wires the tracer client into a Uber FX application.
//
// The module provides:
//  1. *TracerClient (concrete type) for direct use
//  2. Tracer interface for dependency injection
//  3. An OnStop hook that shuts the provider down, flushing batched spans
//
// A tracer.Config must be available in the dependency graph.
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "webapp-analytics", AppEnv: "production", EnableExport: true}
//	    }),
//	)
//	app.Run()
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient, // Provides *TracerClient
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers the shutdown hook for the tracer with
// the FX lifecycle. On application stop, the provider is shut down so any
// spans still sitting in the export batch are flushed before the process
// exits.
//
// This function is invoked automatically by FXModule and normally does not
// need to be called directly.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *TracerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer...")
			if tracer.provider == nil {
				log.Println("INFO: tracer provider is nil, skipping shutdown")
				return nil
			}
			return tracer.Shutdown(ctx)
		},
	})
}
