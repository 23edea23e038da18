package cpu

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// ToFullPrecision converts the tensor to float32, the backend's full-precision kind.
func (cpu *Backend[E]) ToFullPrecision(x *tensor.Tensor[E]) *tensor.Tensor[float32] {
	return tensor.Cast[float32](x)
}

// FromFullPrecision converts a float32 tensor to E.
// Integer kinds truncate toward zero and saturate at their limits.
func (cpu *Backend[E]) FromFullPrecision(x *tensor.Tensor[float32]) *tensor.Tensor[E] {
	return tensor.Cast[E](x)
}
