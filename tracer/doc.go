// Package tracer provides the OpenTelemetry-backed implementation of the
// span-producing dependency consumed by the bridge package.
//
// The package wraps the OpenTelemetry SDK behind a small Tracer/Span
// interface pair so that code depending on it never imports OpenTelemetry
// types directly. It follows the "accept interfaces, return structs" idiom:
//
//   - Tracer interface: the contract the bridge (and any other consumer)
//     depends on
//   - TracerClient struct: the concrete OpenTelemetry implementation
//   - Span interface: the handle for a single in-flight span
//
// # Basic Usage
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "webapp-analytics",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, span := tracerClient.StartSpan(ctx, "login")
//	defer span.End()
//
//	if err := span.SetAttribute("user_id", 42); err != nil {
//	    // value was not a supported scalar; the span is still valid
//	}
//
// # Export
//
// When Config.EnableExport is true the client configures an OTLP HTTP
// exporter with batching. Ending a span hands it to the batcher; delivery to
// the collector is asynchronous and is never awaited by callers. When export
// is disabled spans are created and timed but go nowhere, which is the
// usual setting for tests and local development.
//
// # Context Propagation
//
// GetCarrier and SetCarrierOnContext translate between a context and W3C
// Trace Context headers so a trace can continue across service boundaries,
// e.g. from a browser-facing HTTP handler into backend calls.
//
// # FX Module Integration
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "webapp-analytics", AppEnv: "production", EnableExport: true}
//	    }),
//	)
//
// The module provides both *TracerClient and the Tracer interface and
// registers an OnStop hook that shuts the provider down, flushing any
// batched spans.
//
// # Thread Safety
//
// All methods on TracerClient and on the spans it produces are safe for
// concurrent use by multiple goroutines.
package tracer
