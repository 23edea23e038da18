package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Reshape returns a tensor with the same elements in the same order and a new
// shape. Contiguous inputs are reshaped without copying.
func (cpu *Backend[E]) Reshape(t *tensor.Tensor[E], shape tensor.Shape) (*tensor.Tensor[E], error) {
	return t.Reshape(shape)
}

// SwapDims exchanges two axes. The result is a view with swapped extents and strides.
func (cpu *Backend[E]) SwapDims(t *tensor.Tensor[E], dim1, dim2 int) (*tensor.Tensor[E], error) {
	return t.SwapAxes(dim1, dim2)
}

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same rank and the same extents on every other axis.
// The output extent along dim is the sum of the inputs' extents, in input order.
//
// Example:
//
//	a: [2, 3], b: [2, 3]
//	backend.Cat([]*tensor.Tensor[E]{a, b}, 0) // shape: [4, 3]
func (cpu *Backend[E]) Cat(tensors []*tensor.Tensor[E], dim int) (*tensor.Tensor[E], error) {
	if len(tensors) == 0 {
		return nil, errors.Wrap(tensor.ErrEmptyInput, "cat: at least one tensor required")
	}

	first := tensors[0].Shape()
	if err := first.CheckAxis("cat", dim); err != nil {
		return nil, err
	}

	outShape := first.Clone()
	outShape[dim] = 0
	for i, t := range tensors {
		shape := t.Shape()
		if len(shape) != len(first) {
			return nil, errors.Wrapf(tensor.ErrShapeMismatch, "cat: tensor %d has %d dimensions, expected %d",
				i, len(shape), len(first))
		}
		for d := range shape {
			if d != dim && shape[d] != first[d] {
				return nil, errors.Wrapf(tensor.ErrShapeMismatch, "cat: tensor %d dimension %d is %d, expected %d",
					i, d, shape[d], first[d])
			}
		}
		outShape[dim] += shape[dim]
	}

	// Each input contributes one block of shape[dim]*inner elements per outer index.
	outer := first[:dim].NumElements()
	inner := first[dim+1:].NumElements()
	out := make([]E, 0, outShape.NumElements())
	sources := make([][]E, len(tensors))
	for i, t := range tensors {
		sources[i] = t.Values()
	}
	for o := 0; o < outer; o++ {
		for i, t := range tensors {
			block := t.Shape()[dim] * inner
			out = append(out, sources[i][o*block:(o+1)*block]...)
		}
	}
	return tensor.Wrap(out, outShape), nil
}
