package element

import (
	"math"

	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// ToFloat64 converts v to float64. Bool maps to 0 or 1.
func ToFloat64[E Element](v E) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case float16.Float16:
		return float64(x.Float32())
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint8:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		panic("unsupported element type")
	}
}

// FromFloat64 converts f to E.
//
// Integer kinds truncate toward zero and saturate at their range; NaN becomes 0.
// Bool is true for any nonzero value (NaN included).
func FromFloat64[E Element](f float64) E {
	var out E
	switch p := any(&out).(type) {
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	case *float16.Float16:
		*p = float16.Fromfloat32(float32(f))
	case *int32:
		*p = saturate[int32](f, math.MinInt32, math.MaxInt32)
	case *int64:
		*p = saturateInt64(f)
	case *uint8:
		*p = saturate[uint8](f, 0, math.MaxUint8)
	case *bool:
		*p = f != 0
	default:
		panic("unsupported element type")
	}
	return out
}

// Convert converts a single element between two kinds.
func Convert[To, From Element](v From) To {
	if same, ok := any(v).(To); ok {
		return same
	}
	// int64 does not round-trip through float64 above 2^53.
	if i, ok := any(v).(int64); ok {
		var out To
		switch p := any(&out).(type) {
		case *int32:
			*p = int32(max(min(i, math.MaxInt32), math.MinInt32))
			return out
		case *bool:
			*p = i != 0
			return out
		}
	}
	return FromFloat64[To](ToFloat64(v))
}

// ConvertSlice converts src into dst element by element. dst must be at least as long as src.
func ConvertSlice[To, From Element](dst []To, src []From) {
	if same, ok := any(src).([]To); ok {
		copy(dst, same)
		return
	}
	for i, v := range src {
		dst[i] = Convert[To](v)
	}
}

// saturate truncates f into [lo, hi]. The bounds must be exact in float64,
// which rules out int64 (see saturateInt64).
func saturate[I constraints.Integer](f float64, lo, hi I) I {
	switch {
	case math.IsNaN(f):
		return 0
	case f < float64(lo):
		return lo
	case f > float64(hi):
		return hi
	default:
		return I(f)
	}
}

func saturateInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= math.MinInt64:
		return math.MinInt64
	case f >= math.MaxInt64:
		return math.MaxInt64
	default:
		return int64(f)
	}
}
