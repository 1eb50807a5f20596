// Package bridge converts application events into finalized trace spans.
//
// The bridge is the adapter between "what happened" (an event.Event owned by
// application code) and "how it is recorded" (a span owned by the injected
// tracer). Each successful Capture call opens exactly one span named after
// the event's action, sets the event's subject and attributes on it, and
// finalizes it. Nothing is buffered, batched, or retried: export behavior
// belongs entirely to the injected tracer, and a returned nil error means
// "span finalized and handed to the exporter", not "delivered to a
// collector".
//
// # Construction
//
// The bridge receives its tracer by explicit constructor injection. There is
// no global registration and no ambient lookup, so swapping the production
// tracer for a test double is a one-line change:
//
//	b := bridge.NewBridge(tracerClient)
//
//	err := b.Capture(ctx, event.Event{
//	    Action:  "click",
//	    Subject: "log-button",
//	})
//
// Optional collaborators are attached with functional options:
//
//	b := bridge.NewBridge(tracerClient,
//	    bridge.WithLogger(log),       // logs skipped attributes
//	    bridge.WithObserver(metrics), // per-capture summaries
//	)
//
// # Error Behavior
//
// Capture fails fast with ErrInvalidEvent before any span is opened when
// the event has an empty action, and with ErrTracerUnavailable when no
// tracer was injected. A single attribute whose value is not a supported
// scalar is skipped — logged and counted, never fatal — and the span is
// still finalized with the remaining attributes. Capture never panics.
//
// # Concurrency
//
// The bridge holds a reference to its collaborators and nothing else; it
// has no mutable state, so any number of goroutines may call Capture
// concurrently. Concurrency guarantees of span creation itself are the
// injected tracer's. The bridge adds no timeout and no cancellation; wrap
// the call externally if a deadline is needed.
package bridge
