package cpu

import (
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// MaskFill returns a copy of t with value written wherever mask is true.
// Elements where mask is false are copied unchanged, including NaN and Inf.
func (cpu *Backend[E]) MaskFill(t *tensor.Tensor[E], mask *tensor.Tensor[bool], value E) (*tensor.Tensor[E], error) {
	if err := checkSameShape("maskFill", t, mask); err != nil {
		return nil, err
	}
	src, m := t.Values(), mask.Values()
	out := make([]E, len(src))
	parallel.ForRange(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			if m[i] {
				out[i] = value
			} else {
				out[i] = src[i]
			}
		}
	}, cpu.cfg.Parallel)
	return tensor.Wrap(out, t.Shape()), nil
}
