package cpu

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Comparison operations - return bool tensors.
// Elements are compared directly, so unsigned kinds never underflow.

// Equal returns a == b element-wise.
func (cpu *Backend[E]) Equal(a, b *tensor.Tensor[E]) (*tensor.Tensor[bool], error) {
	return zipWith(cpu, "equal", a, b, func(x, y E) bool { return x == y })
}

// Greater returns a > b element-wise.
func (cpu *Backend[E]) Greater(a, b *tensor.Tensor[E]) (*tensor.Tensor[bool], error) {
	return zipWith(cpu, "greater", a, b, func(x, y E) bool { return x > y })
}

// GreaterEqual returns a >= b element-wise.
func (cpu *Backend[E]) GreaterEqual(a, b *tensor.Tensor[E]) (*tensor.Tensor[bool], error) {
	return zipWith(cpu, "greaterEqual", a, b, func(x, y E) bool { return x >= y })
}

// Lower returns a < b element-wise.
func (cpu *Backend[E]) Lower(a, b *tensor.Tensor[E]) (*tensor.Tensor[bool], error) {
	return zipWith(cpu, "lower", a, b, func(x, y E) bool { return x < y })
}

// LowerEqual returns a <= b element-wise.
func (cpu *Backend[E]) LowerEqual(a, b *tensor.Tensor[E]) (*tensor.Tensor[bool], error) {
	return zipWith(cpu, "lowerEqual", a, b, func(x, y E) bool { return x <= y })
}

// EqualScalar returns t == v element-wise.
func (cpu *Backend[E]) EqualScalar(t *tensor.Tensor[E], v E) *tensor.Tensor[bool] {
	return mapWith(cpu, t, func(x E) bool { return x == v })
}

// GreaterScalar returns t > v element-wise.
func (cpu *Backend[E]) GreaterScalar(t *tensor.Tensor[E], v E) *tensor.Tensor[bool] {
	return mapWith(cpu, t, func(x E) bool { return x > v })
}

// GreaterEqualScalar returns t >= v element-wise.
func (cpu *Backend[E]) GreaterEqualScalar(t *tensor.Tensor[E], v E) *tensor.Tensor[bool] {
	return mapWith(cpu, t, func(x E) bool { return x >= v })
}

// LowerScalar returns t < v element-wise.
func (cpu *Backend[E]) LowerScalar(t *tensor.Tensor[E], v E) *tensor.Tensor[bool] {
	return mapWith(cpu, t, func(x E) bool { return x < v })
}

// LowerEqualScalar returns t <= v element-wise.
func (cpu *Backend[E]) LowerEqualScalar(t *tensor.Tensor[E], v E) *tensor.Tensor[bool] {
	return mapWith(cpu, t, func(x E) bool { return x <= v })
}
