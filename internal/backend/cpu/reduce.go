package cpu

import (
	"github.com/born-ml/ndarray/internal/element"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Sum returns the sum of all elements as a tensor of shape [1].
// Integer kinds accumulate in E and wrap on overflow.
func (cpu *Backend[E]) Sum(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	var sum E
	for _, v := range x.Values() {
		sum += v
	}
	return tensor.Wrap([]E{sum}, tensor.Shape{1})
}

// Mean returns the mean of all elements as a tensor of shape [1].
// The sum is accumulated in float64.
func (cpu *Backend[E]) Mean(x *tensor.Tensor[E]) *tensor.Tensor[E] {
	var sum float64
	values := x.Values()
	for _, v := range values {
		sum += element.ToFloat64(v)
	}
	return tensor.Wrap([]E{element.FromFloat64[E](sum / float64(len(values)))}, tensor.Shape{1})
}

// SumDim sums tensor elements along dim. The result keeps the rank of x
// with shape[dim] = 1.
//
// Example:
//
//	x: [2, 3, 4]
//	backend.SumDim(x, 1) // shape: [2, 1, 4]
func (cpu *Backend[E]) SumDim(x *tensor.Tensor[E], dim int) (*tensor.Tensor[E], error) {
	return reduceDim(cpu, "sumDim", x, dim, func(row func(k int) E, n int) E {
		var sum E
		for k := 0; k < n; k++ {
			sum += row(k)
		}
		return sum
	})
}

// MeanDim computes the mean along dim. The result keeps the rank of x
// with shape[dim] = 1.
func (cpu *Backend[E]) MeanDim(x *tensor.Tensor[E], dim int) (*tensor.Tensor[E], error) {
	return reduceDim(cpu, "meanDim", x, dim, func(row func(k int) E, n int) E {
		var sum float64
		for k := 0; k < n; k++ {
			sum += element.ToFloat64(row(k))
		}
		return element.FromFloat64[E](sum / float64(n))
	})
}

// Argmax returns the position of the maximum along dim as int64 indices.
// The first occurrence wins on ties. NaN values are skipped; a row of only
// NaN yields 0.
func (cpu *Backend[E]) Argmax(x *tensor.Tensor[E], dim int) (*tensor.Tensor[int64], error) {
	return reduceDim(cpu, "argmax", x, dim, func(row func(k int) E, n int) int64 {
		return argExtreme(row, n, func(v, best E) bool { return v > best })
	})
}

// Argmin returns the position of the minimum along dim as int64 indices.
// Ties and NaN are handled as in Argmax.
func (cpu *Backend[E]) Argmin(x *tensor.Tensor[E], dim int) (*tensor.Tensor[int64], error) {
	return reduceDim(cpu, "argmin", x, dim, func(row func(k int) E, n int) int64 {
		return argExtreme(row, n, func(v, best E) bool { return v < best })
	})
}

// argExtreme scans a row and returns the first index whose value beats all
// earlier ones under better.
func argExtreme[E element.Numeric](row func(k int) E, n int, better func(v, best E) bool) int64 {
	bestIdx := -1
	var best E
	for k := 0; k < n; k++ {
		v := row(k)
		if v != v { // NaN
			continue
		}
		if bestIdx < 0 || better(v, best) {
			bestIdx, best = k, v
		}
	}
	return int64(max(bestIdx, 0))
}

// reduceDim collapses axis dim of x to extent 1 by applying reduce to every
// line of values along that axis.
//
// The row-major input is viewed as [outer, n, inner]; each output element
// (o, i) reduces the n values at o*n*inner + k*inner + i.
func reduceDim[E element.Numeric, R element.Element](cpu *Backend[E], op string, x *tensor.Tensor[E], dim int,
	reduce func(row func(k int) E, n int) R) (*tensor.Tensor[R], error) {
	shape := x.Shape()
	if err := shape.CheckAxis(op, dim); err != nil {
		return nil, err
	}

	n := shape[dim]
	outer := tensor.Shape(shape[:dim]).NumElements()
	inner := tensor.Shape(shape[dim+1:]).NumElements()

	data := x.Values()
	out := make([]R, outer*inner)
	parallel.For(len(out), func(j int) {
		base := (j/inner)*n*inner + j%inner
		out[j] = reduce(func(k int) E { return data[base+k*inner] }, n)
	}, cpu.cfg.Parallel)

	outShape := shape.Clone()
	outShape[dim] = 1
	return tensor.Wrap(out, outShape), nil
}
