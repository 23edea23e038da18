package element

import "github.com/x448/float16"

// Kind is the runtime tag of an element type.
type Kind int

// Supported element kinds.
const (
	Float32 Kind = iota
	Float64
	Float16
	Int32
	Int64
	Uint8
	Bool
)

// Size returns the byte size of one element of the kind.
func (k Kind) Size() int {
	switch k {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Float16:
		return 2
	case Uint8, Bool:
		return 1
	default:
		panic("unknown element kind")
	}
}

// IsFloat reports whether the kind is a floating point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64 || k == Float16
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// KindOf returns the Kind of E.
func KindOf[E Element]() Kind {
	var dummy E
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case float16.Float16:
		return Float16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		panic("unsupported element type")
	}
}
