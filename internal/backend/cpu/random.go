package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/random"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Random creates a tensor of the given shape with values drawn from dist.
//
// Draws come from the backend's generator and advance it, so a backend created
// with a fixed seed produces a reproducible sequence of tensors. The generator
// is locked for the duration of the draw.
func (cpu *Backend[E]) Random(shape tensor.Shape, dist random.Distribution) (*tensor.Tensor[E], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, "random")
	}
	values, err := random.SampleLocked[E](cpu.rng, dist, shape.NumElements())
	if err != nil {
		return nil, errors.WithMessage(err, "random")
	}
	return tensor.Wrap(values, shape), nil
}
