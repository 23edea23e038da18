package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/element"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Element-wise binary operations. Operands must have identical shapes; broadcasting
// is left to the caller.

// Add performs element-wise addition.
func (cpu *Backend[E]) Add(a, b *tensor.Tensor[E]) (*tensor.Tensor[E], error) {
	return zipWith(cpu, "add", a, b, func(x, y E) E { return x + y })
}

// Sub performs element-wise subtraction.
func (cpu *Backend[E]) Sub(a, b *tensor.Tensor[E]) (*tensor.Tensor[E], error) {
	return zipWith(cpu, "sub", a, b, func(x, y E) E { return x - y })
}

// Mul performs element-wise multiplication.
func (cpu *Backend[E]) Mul(a, b *tensor.Tensor[E]) (*tensor.Tensor[E], error) {
	return zipWith(cpu, "mul", a, b, func(x, y E) E { return x * y })
}

// Div performs element-wise division.
// Integer division by zero panics; float division follows IEEE 754.
func (cpu *Backend[E]) Div(a, b *tensor.Tensor[E]) (*tensor.Tensor[E], error) {
	return zipWith(cpu, "div", a, b, func(x, y E) E { return x / y })
}

func checkSameShape[A, B element.Element](op string, a *tensor.Tensor[A], b *tensor.Tensor[B]) error {
	if !a.Shape().Equal(b.Shape()) {
		return errors.Wrapf(tensor.ErrShapeMismatch, "%s: shapes %v and %v differ", op, a.Shape(), b.Shape())
	}
	return nil
}

// zipWith applies f to corresponding elements of two same-shape tensors.
func zipWith[E element.Numeric, R element.Element](cpu *Backend[E], op string, a, b *tensor.Tensor[E], f func(x, y E) R) (*tensor.Tensor[R], error) {
	if err := checkSameShape(op, a, b); err != nil {
		return nil, err
	}
	av, bv := a.Values(), b.Values()
	out := make([]R, len(av))
	parallel.ForRange(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = f(av[i], bv[i])
		}
	}, cpu.cfg.Parallel)
	return tensor.Wrap(out, a.Shape()), nil
}

// mapWith applies f to every element of t.
func mapWith[E element.Numeric, R element.Element](cpu *Backend[E], t *tensor.Tensor[E], f func(x E) R) *tensor.Tensor[R] {
	src := t.Values()
	out := make([]R, len(src))
	parallel.ForRange(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = f(src[i])
		}
	}, cpu.cfg.Parallel)
	return tensor.Wrap(out, t.Shape())
}
