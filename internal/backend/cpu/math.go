package cpu

import (
	"github.com/born-ml/ndarray/internal/element"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Transcendental functions round-trip through float64. Integer kinds truncate
// the result; domain errors (log of non-positive, sqrt of negative) give NaN
// for floats and are not reported.

// Exp computes element-wise exponential: exp(x).
func (cpu *Backend[E]) Exp(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	return mapWith(cpu, x, element.Exp[E])
}

// Log computes element-wise natural logarithm: ln(x).
func (cpu *Backend[E]) Log(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	return mapWith(cpu, x, element.Log[E])
}

// Log1p computes element-wise ln(1 + x), accurate for small x.
func (cpu *Backend[E]) Log1p(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	return mapWith(cpu, x, element.Log1p[E])
}

// Powf raises every element to a float exponent.
func (cpu *Backend[E]) Powf(x *tensor.Tensor[E], exponent float32) *tensor.Tensor[E] {
	return mapWith(cpu, x, func(v E) E { return element.Powf(v, exponent) })
}

// Sqrt computes element-wise square root: sqrt(x).
func (cpu *Backend[E]) Sqrt(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	return mapWith(cpu, x, element.Sqrt[E])
}

// Cos computes element-wise cosine: cos(x).
func (cpu *Backend[E]) Cos(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	return mapWith(cpu, x, element.Cos[E])
}

// Sin computes element-wise sine: sin(x).
func (cpu *Backend[E]) Sin(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	return mapWith(cpu, x, element.Sin[E])
}

// Tanh computes element-wise hyperbolic tangent.
func (cpu *Backend[E]) Tanh(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	return mapWith(cpu, x, element.Tanh[E])
}

// Erf computes the element-wise Gauss error function.
func (cpu *Backend[E]) Erf(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	return mapWith(cpu, x, element.Erf[E])
}

// Relu computes max(x, 0) element-wise. NaN is passed through.
func (cpu *Backend[E]) Relu(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	var zero E
	return mapWith(cpu, x, func(v E) E {
		if v < zero {
			return zero
		}
		return v
	})
}
