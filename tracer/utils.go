package tracer

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// spanImpl wraps an OpenTelemetry span behind the Span interface, keeping
// OpenTelemetry types out of consumer code.
type spanImpl struct {
	span traceSpan.Span
}

// End finalizes the underlying OpenTelemetry span. The span's end time is
// recorded and the span is submitted to whatever processors the provider
// was configured with; with batching export that hand-off is asynchronous.
// The handle must not be used after End.
func (s *spanImpl) End() {
	s.span.End()
}

// SetAttribute records one attribute on the span. The value must be a
// string, bool, integer, or float; everything else returns
// ErrUnsupportedAttribute and leaves the span unchanged. Unsigned values
// too large for an int64 are likewise rejected rather than silently
// wrapped.
func (s *spanImpl) SetAttribute(key string, value interface{}) error {
	kv, err := toAttribute(key, value)
	if err != nil {
		return err
	}
	s.span.SetAttributes(kv)
	return nil
}

// SetAttributes records a batch of attributes on the span. Entries whose
// values are not representable are skipped; callers that need to detect
// skipped entries should use SetAttribute per key instead.
func (s *spanImpl) SetAttributes(attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kv, err := toAttribute(k, v)
		if err != nil {
			continue
		}
		attributes = append(attributes, kv)
	}

	s.span.SetAttributes(attributes...)
}

// RecordError attaches the error to the span as an event and sets the span
// status to Error with the error message as description.
func (s *spanImpl) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// toAttribute converts a Go value into an OpenTelemetry attribute.
func toAttribute(key string, value interface{}) (attribute.KeyValue, error) {
	switch val := value.(type) {
	case string:
		return attribute.String(key, val), nil
	case bool:
		return attribute.Bool(key, val), nil
	case int:
		return attribute.Int(key, val), nil
	case int8:
		return attribute.Int64(key, int64(val)), nil
	case int16:
		return attribute.Int64(key, int64(val)), nil
	case int32:
		return attribute.Int64(key, int64(val)), nil
	case int64:
		return attribute.Int64(key, val), nil
	case uint8:
		return attribute.Int64(key, int64(val)), nil
	case uint16:
		return attribute.Int64(key, int64(val)), nil
	case uint32:
		return attribute.Int64(key, int64(val)), nil
	case uint:
		if uint64(val) > math.MaxInt64 {
			return attribute.KeyValue{}, fmt.Errorf("%w: uint %d overflows int64", ErrUnsupportedAttribute, val)
		}
		return attribute.Int64(key, int64(val)), nil
	case uint64:
		if val > math.MaxInt64 {
			return attribute.KeyValue{}, fmt.Errorf("%w: uint64 %d overflows int64", ErrUnsupportedAttribute, val)
		}
		return attribute.Int64(key, int64(val)), nil
	case float32:
		return attribute.Float64(key, float64(val)), nil
	case float64:
		return attribute.Float64(key, val), nil
	default:
		return attribute.KeyValue{}, fmt.Errorf("%w: %T", ErrUnsupportedAttribute, value)
	}
}

// StartSpan opens a new span with the given name. The span is a child of
// any span already carried by the context, building the usual trace
// hierarchy. The returned context carries the new span; the returned handle
// must be finalized with End when the traced operation completes.
func (t *TracerClient) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, otSpan := t.provider.Tracer("").Start(ctx, name)

	return ctx, &spanImpl{span: otSpan}
}

// GetCarrier extracts the trace context from ctx as a header map in W3C
// Trace Context format ("traceparent", and "tracestate" when present).
// Put these headers on outbound requests so the receiving service can
// continue the trace. With no active span the returned map is empty.
func (t *TracerClient) GetCarrier(ctx context.Context) map[string]string {
	carrier := propagation.MapCarrier{}
	t.propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext is the inverse of GetCarrier: it reads W3C Trace
// Context headers received from another service and returns a context that
// continues that remote trace. Spans started from the returned context
// become children of the remote span.
func (t *TracerClient) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	return t.propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
