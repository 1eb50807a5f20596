package tracer

import "errors"

// ErrUnsupportedAttribute is returned by Span.SetAttribute when the value
// cannot be represented as a span attribute scalar. The span itself remains
// valid; only the offending attribute is dropped.
var ErrUnsupportedAttribute = errors.New("unsupported attribute value type")
