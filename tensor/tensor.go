// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/element"
	"github.com/born-ml/ndarray/internal/random"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Type aliases for public API

// Element is a constraint for the kinds a tensor can store:
// float32, float64, int32, int64, uint8, bool and float16.Float16.
type Element = element.Element

// Numeric is a constraint for the kinds backends compute on:
// float32, float64, int32, int64, uint8.
type Numeric = element.Numeric

// Kind identifies an element type at runtime.
type Kind = element.Kind

// Element kind constants.
const (
	Float32 Kind = element.Float32
	Float64 Kind = element.Float64
	Float16 Kind = element.Float16
	Int32   Kind = element.Int32
	Int64   Kind = element.Int64
	Uint8   Kind = element.Uint8
	Bool    Kind = element.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the only device.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Range is a half-open interval [Start, End) along one axis, used by Index and IndexAssign.
type Range = tensor.Range

// Data is the flat export/import form of a tensor.
type Data[E Element] = tensor.Data[E]

// Tensor is a dense N-dimensional array of E.
//
// Tensors are values: operations return new tensors and never modify their
// operands. Views (Share, Reshape of contiguous data, SwapAxes, Slice) share
// storage without copying.
//
// Values may return the shared storage itself and must be treated as
// read-only. Use ToSlice for a copy that can be modified, or IntoData to take
// over a tensor's values.
//
// Example:
//
//	backend := cpu.New[float32]()
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	y, _ := backend.MatMul(x, x)
type Tensor[E Element] = tensor.Tensor[E]

// Ops is the operation set implemented by a backend for element type E.
type Ops[E Numeric] = tensor.Ops[E]

// Distribution describes how Random draws values.
type Distribution = random.Distribution

// Generator is a deterministic random source for a single owner.
type Generator = random.Generator

// Sentinel errors. Match with errors.Is.
var (
	ErrShapeMismatch      = tensor.ErrShapeMismatch
	ErrOutOfRange         = tensor.ErrOutOfRange
	ErrInvalidShape       = tensor.ErrInvalidShape
	ErrIncompatibleMatMul = tensor.ErrIncompatibleMatMul
	ErrEmptyInput         = tensor.ErrEmptyInput
)

// Creation functions

// FromSlice creates a tensor holding a copy of data.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[E Element](data []E, shape Shape) (*Tensor[E], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[E Element](shape Shape) (*Tensor[E], error) {
	return tensor.Zeros[E](shape)
}

// Ones creates a tensor filled with ones.
func Ones[E Element](shape Shape) (*Tensor[E], error) {
	return tensor.Ones[E](shape)
}

// Full creates a tensor filled with value.
//
// Example:
//
//	x, err := tensor.Full(tensor.Shape{2, 3}, float32(3.14))
func Full[E Element](shape Shape, value E) (*Tensor[E], error) {
	return tensor.Full(shape, value)
}

// NewData creates a validated Data.
func NewData[E Element](value []E, shape Shape) (Data[E], error) {
	return tensor.NewData(value, shape)
}

// FromData creates a tensor holding a copy of d's values.
func FromData[E Element](d Data[E]) (*Tensor[E], error) {
	return tensor.FromData(d)
}

// ToData exports a copy of t's values and shape.
func ToData[E Element](t *Tensor[E]) Data[E] {
	return tensor.ToData(t)
}

// IntoData exports t's values and consumes t, without copying when t owns its storage.
func IntoData[E Element](t *Tensor[E]) Data[E] {
	return tensor.IntoData(t)
}

// Cast converts every element of t to another kind.
//
// Example:
//
//	half := tensor.Cast[float16.Float16](x)
func Cast[To, From Element](t *Tensor[From]) *Tensor[To] {
	return tensor.Cast[To](t)
}

// Random distributions

// Standard is the uniform distribution on [0, 1).
func Standard() Distribution { return random.Standard() }

// Uniform is the uniform distribution on [low, high).
func Uniform(low, high float64) Distribution { return random.Uniform(low, high) }

// Bernoulli draws 1 with probability prob and 0 otherwise.
func Bernoulli(prob float64) Distribution { return random.Bernoulli(prob) }

// Normal is the normal distribution with the given mean and standard deviation.
func Normal(mean, std float64) Distribution { return random.Normal(mean, std) }

// NewGenerator creates a generator whose sequence is determined by seed.
func NewGenerator(seed uint64) *Generator {
	return random.NewGenerator(seed)
}
