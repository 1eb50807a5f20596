package tracer

import (
	"context"
)

// Tracer is the span-producing capability the bridge package consumes.
// It is implemented by the concrete *TracerClient; tests substitute their
// own recorder implementations.
type Tracer interface {
	// StartSpan opens a new span with the given name. The span becomes a
	// child of any span already present in the context. Returns a context
	// carrying the new span and the span handle itself; the caller must
	// finalize the span with End().
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// GetCarrier extracts the active trace context as W3C Trace Context
	// headers, for propagation on outbound requests or messages.
	GetCarrier(ctx context.Context) map[string]string

	// SetCarrierOnContext injects trace headers received from another
	// service into the context, so spans started from it continue the
	// remote trace.
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context
}

// Span is the handle for one in-flight span. A span is created by
// Tracer.StartSpan, optionally decorated with attributes, and irreversibly
// finalized by End. Callers must not use the handle after calling End.
type Span interface {
	// End finalizes the span, recording its end time and handing it to the
	// configured exporter. Finalization is fire-and-forget: End returns
	// without waiting for delivery to any collector.
	End()

	// SetAttribute records a single key/value attribute on the span.
	// Accepted value types are string, bool, the signed and unsigned
	// integer types, float32 and float64. Any other value is dropped and
	// ErrUnsupportedAttribute is returned; the span stays usable.
	SetAttribute(key string, value interface{}) error

	// SetAttributes records a batch of attributes. Entries with unsupported
	// values are silently skipped; use SetAttribute when the caller needs
	// to know about rejections.
	SetAttributes(attrs map[string]interface{})

	// RecordError marks the span as failed and attaches the error details
	// to it.
	RecordError(err error)
}
