package cpu

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// FromData creates a tensor holding a copy of d's values.
func (cpu *Backend[E]) FromData(d tensor.Data[E]) (*tensor.Tensor[E], error) {
	return tensor.FromData(d)
}

// Empty creates a tensor of the given shape. Its values are zero.
func (cpu *Backend[E]) Empty(shape tensor.Shape) (*tensor.Tensor[E], error) {
	return tensor.Zeros[E](shape)
}

// ToData exports a copy of t's values and shape.
func (cpu *Backend[E]) ToData(t *tensor.Tensor[E]) tensor.Data[E] {
	return tensor.ToData(t)
}

// IntoData exports t's values and consumes t, without copying when possible.
func (cpu *Backend[E]) IntoData(t *tensor.Tensor[E]) tensor.Data[E] {
	return tensor.IntoData(t)
}

// Device returns the device holding t, which is always the CPU.
func (cpu *Backend[E]) Device(_ *tensor.Tensor[E]) tensor.Device {
	return cpu.device
}

// ToDevice is the identity: the CPU backend has a single device.
func (cpu *Backend[E]) ToDevice(t *tensor.Tensor[E], _ tensor.Device) *tensor.Tensor[E] {
	return t
}

// Detach is the identity: the CPU backend tracks no gradients.
func (cpu *Backend[E]) Detach(t *tensor.Tensor[E]) *tensor.Tensor[E] {
	return t
}
