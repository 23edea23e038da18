package cpu

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *Backend[E]) AddScalar(x *tensor.Tensor[E], scalar E) *tensor.Tensor[E] {
	return mapWith(cpu, x, func(v E) E { return v + scalar })
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *Backend[E]) SubScalar(x *tensor.Tensor[E], scalar E) *tensor.Tensor[E] {
	return mapWith(cpu, x, func(v E) E { return v - scalar })
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *Backend[E]) MulScalar(x *tensor.Tensor[E], scalar E) *tensor.Tensor[E] {
	return mapWith(cpu, x, func(v E) E { return v * scalar })
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *Backend[E]) DivScalar(x *tensor.Tensor[E], scalar E) *tensor.Tensor[E] {
	return mapWith(cpu, x, func(v E) E { return v / scalar })
}

// Neg negates each element. Unsigned kinds wrap around.
func (cpu *Backend[E]) Neg(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	return mapWith(cpu, x, func(v E) E { return -v })
}
