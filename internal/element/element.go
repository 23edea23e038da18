// Package element provides the element types supported by the ndarray backend
// and the conversion and elementary math helpers shared by every kernel.
package element

import (
	"github.com/x448/float16"
)

// Float is the constraint for floating point elements.
type Float interface {
	float32 | float64
}

// Numeric is the constraint for elements that support arithmetic and ordering.
// Kernels are written against Numeric so that they monomorphize per element type.
// The set is closed: every member has a Kind.
type Numeric interface {
	Float | int32 | int64 | uint8
}

// Element is the constraint for everything a tensor can store.
//
// Bool exists for masks and comparison outputs. Float16 is a storage type:
// it converts to and from the other kinds but has no arithmetic kernels.
type Element interface {
	Numeric | bool | float16.Float16
}

// Zero returns the additive identity of E.
func Zero[E Element]() E {
	var zero E
	return zero
}

// One returns the multiplicative identity of E (true for bool).
func One[E Element]() E {
	return FromFloat64[E](1)
}
