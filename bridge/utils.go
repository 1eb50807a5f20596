package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/aalemi-dev/tracebridge/event"
)

// Capture implements the Bridge interface.
//
// The call proceeds in a fixed order: validate, open the span, set the
// subject, set the remaining attributes, end the span. Validation failures
// return before any span exists, so an invalid event never produces a
// partial span. Attribute failures are isolated per entry: the offending
// entry is skipped with a warning and the span is still finalized carrying
// everything that passed.
func (b *BridgeClient) Capture(ctx context.Context, evt event.Event) error {
	start := time.Now()

	if err := evt.Validate(); err != nil {
		captureErr := fmt.Errorf("%w: %v", ErrInvalidEvent, err)
		b.observeCapture(evt, 0, 0, time.Since(start), captureErr)
		return captureErr
	}

	if b.tracer == nil {
		captureErr := fmt.Errorf("%w: no tracer configured", ErrTracerUnavailable)
		b.observeCapture(evt, 0, 0, time.Since(start), captureErr)
		return captureErr
	}

	ctx, span := b.tracer.StartSpan(ctx, evt.Action)
	if span == nil {
		captureErr := fmt.Errorf("%w: tracer returned no span", ErrTracerUnavailable)
		b.observeCapture(evt, 0, 0, time.Since(start), captureErr)
		return captureErr
	}

	var set, rejected int

	if evt.Subject != "" {
		if err := span.SetAttribute("subject", evt.Subject); err != nil {
			rejected++
			b.warnRejected(ctx, evt.Action, "subject", evt.Subject, err)
		} else {
			set++
		}
	}

	for key, value := range evt.Attributes {
		normalized, err := event.NormalizeValue(value)
		if err != nil {
			rejected++
			b.warnRejected(ctx, evt.Action, key, value, err)
			continue
		}
		if err := span.SetAttribute(key, normalized); err != nil {
			rejected++
			b.warnRejected(ctx, evt.Action, key, value, err)
			continue
		}
		set++
	}

	// Finalization always happens, no matter how many attributes were
	// skipped. Past this point the span belongs to the exporter.
	span.End()

	b.observeCapture(evt, set, rejected, time.Since(start), nil)
	return nil
}

// warnRejected logs one skipped attribute. The rejection is classified
// under ErrAttributeRejected so log consumers can filter for it.
func (b *BridgeClient) warnRejected(ctx context.Context, action, key string, value interface{}, cause error) {
	if b.logger == nil {
		return
	}
	b.logger.WarnWithContext(ctx, "attribute rejected",
		fmt.Errorf("%w: %v", ErrAttributeRejected, cause),
		map[string]interface{}{
			"action": action,
			"key":    key,
			"type":   fmt.Sprintf("%T", value),
		})
}
