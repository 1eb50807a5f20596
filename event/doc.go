// Package event defines the input model for telemetry capture.
//
// An Event describes something that happened in the application: an action
// name (required), the subject the action applied to (optional), and a flat
// map of key/value attributes (optional). Events are plain values created by
// application code and consumed synchronously by the bridge package; they
// are never persisted or buffered.
//
// # Attribute values
//
// Span attribute models only accept scalar values, so this package defines
// a single, documented rule for what an attribute value may be:
//
//   - string
//   - bool
//   - int, int8, int16, int32, int64
//   - uint, uint8, uint16, uint32, and uint64 values that fit in an int64
//   - float32, float64
//
// Anything else (nil, maps, slices, structs, channels, oversized uint64
// values) is rejected with ErrValueNotScalar. Rejection is deliberate:
// silently stringifying a nested object produces attribute values nobody
// asked for and hides integration bugs. Callers that want a string
// representation of a complex value must convert it themselves.
//
// NormalizeValue applies the rule and additionally canonicalizes accepted
// values: all integer forms become int64 and float32 becomes float64, so
// downstream consumers see a fixed set of four types (string, bool, int64,
// float64) regardless of what the caller passed in.
//
// # Basic Usage
//
//	evt := event.Event{
//	    Action:  "login",
//	    Subject: "login-form",
//	    Attributes: map[string]interface{}{
//	        "user_id": 42,
//	        "sso":     true,
//	    },
//	}
//	if err := evt.Validate(); err != nil {
//	    // Action was empty
//	}
package event
