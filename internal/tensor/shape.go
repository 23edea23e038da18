package tensor

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Shape represents the per-axis extents of a tensor. Its length is the rank.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one axis, every extent is
// positive and the element count fits in an int.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return errors.Wrap(ErrInvalidShape, "shape must have at least one dimension")
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return errors.Wrapf(ErrInvalidShape, "dimension %d is %d (must be > 0)", i, dim)
		}
		if n > math.MaxInt/dim {
			return errors.Wrapf(ErrInvalidShape, "shape %v: element count overflows int", s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as [d0 d1 ...].
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// CheckAxis returns an ErrOutOfRange error if dim is not a valid axis of s.
func (s Shape) CheckAxis(op string, dim int) error {
	if dim < 0 || dim >= len(s) {
		return errors.Wrapf(ErrOutOfRange, "%s: dimension %d out of range for %dD tensor", op, dim, len(s))
	}
	return nil
}

// BroadcastShapes reconciles two shapes of the same rank axis by axis.
//
// Extents are compatible if they are equal or one of them is 1; the result takes
// the larger one. Unlike NumPy, ranks are not padded: both shapes must have the
// same rank.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(1, 5) + (3, 5) → (3, 5)
//	(3, 4) + (3, 5) → error
func BroadcastShapes(a, b Shape) (Shape, error) {
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot broadcast %dD shape %v with %dD shape %v", len(a), a, len(b), b)
	}
	result := make(Shape, len(a))
	for i := range a {
		switch {
		case a[i] == b[i]:
			result[i] = a[i]
		case a[i] == 1:
			result[i] = b[i]
		case b[i] == 1:
			result[i] = a[i]
		default:
			return nil, errors.Wrapf(ErrShapeMismatch, "shapes %v and %v not broadcastable (dimension %d: %d vs %d)",
				a, b, i, a[i], b[i])
		}
	}
	return result, nil
}

// BroadcastStrides returns row-major strides of in laid out against out,
// with 0 on every axis where in has extent 1. Both shapes must have the same rank.
func BroadcastStrides(in, out Shape) []int {
	strides := in.ComputeStrides()
	for i := range in {
		if in[i] == 1 && out[i] != 1 {
			strides[i] = 0
		}
	}
	return strides
}

// FlatIndex maps a flat row-major index over a shape with strides outStrides to
// an offset in a buffer laid out with inStrides.
func FlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
