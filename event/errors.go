package event

import "errors"

// Validation errors returned by this package. Callers should match them
// with errors.Is rather than comparing error strings.
var (
	// ErrEmptyAction is returned when an Event has no action name.
	// An event without an action cannot be mapped to a span, since the
	// action is the span name.
	ErrEmptyAction = errors.New("event action is empty")

	// ErrValueNotScalar is returned when an attribute value cannot be
	// represented as a span attribute scalar (string, bool, int64, float64).
	ErrValueNotScalar = errors.New("attribute value is not a scalar")
)
