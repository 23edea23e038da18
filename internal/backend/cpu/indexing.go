package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Index restricts the leading len(ranges) axes of t to half-open ranges.
// Axes without a range are taken whole. The result is a view of t's storage.
//
// Ranges are never clamped: a range outside the axis fails with ErrOutOfRange.
func (cpu *Backend[E]) Index(t *tensor.Tensor[E], ranges []tensor.Range) (*tensor.Tensor[E], error) {
	return t.Slice(ranges)
}

// IndexAssign returns a copy of t whose region addressed by ranges holds value.
// value's shape must equal the region's shape. t is left unchanged.
func (cpu *Backend[E]) IndexAssign(t *tensor.Tensor[E], ranges []tensor.Range, value *tensor.Tensor[E]) (*tensor.Tensor[E], error) {
	region, err := tensor.RegionShape("indexAssign", t.Shape(), ranges)
	if err != nil {
		return nil, err
	}
	if !region.Equal(value.Shape()) {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "indexAssign: value shape %v does not match region %v",
			value.Shape(), region)
	}

	shape := t.Shape()
	out := t.ToSlice()
	strides := shape.ComputeStrides()
	base := 0
	for d, r := range ranges {
		base += r.Start * strides[d]
	}

	// Walk the region in row-major order, tracking the destination offset.
	src := value.Values()
	idx := make([]int, len(region))
	off := base
	for _, v := range src {
		out[off] = v
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			off += strides[d]
			if idx[d] < region[d] {
				break
			}
			off -= idx[d] * strides[d]
			idx[d] = 0
		}
	}
	return tensor.Wrap(out, shape), nil
}
