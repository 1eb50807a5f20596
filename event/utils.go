package event

import (
	"fmt"
	"math"
)

// NormalizeValue validates an attribute value against the package scalar
// rule and converts it to its canonical form.
//
// Accepted inputs and their canonical types:
//   - string          → string
//   - bool            → bool
//   - int, int8..int64, uint, uint8..uint32 → int64
//   - uint64 (when it fits in an int64)     → int64
//   - float32, float64                      → float64
//
// Everything else is rejected with an error wrapping ErrValueNotScalar,
// including nil, uint64 values above math.MaxInt64, and any composite type.
// The rejection error names the offending Go type so integrators can find
// the call site that produced it.
func NormalizeValue(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return val, nil
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case uint:
		if uint64(val) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint value %d overflows int64", ErrValueNotScalar, val)
		}
		return int64(val), nil
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint64 value %d overflows int64", ErrValueNotScalar, val)
		}
		return int64(val), nil
	case float32:
		return float64(val), nil
	case float64:
		return val, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrValueNotScalar, v)
	}
}
