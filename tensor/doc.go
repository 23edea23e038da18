// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense N-dimensional arrays and the operation set
// implemented by the ndarray backends.
//
// # Overview
//
// This package provides:
//   - Generic tensors (Tensor[E]) over float32, float64, int32, int64, uint8, bool and float16
//   - Row-major storage shared between views (Share, Slice, SwapAxes, Reshape)
//   - Flat value/shape export and import (Data)
//   - The Ops contract that backends implement
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndarray/backend/cpu"
//	    "github.com/born-ml/ndarray/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New[float32]()
//
//	    x, _ := backend.Random(tensor.Shape{2, 3}, tensor.Normal(0, 1))
//	    y, _ := tensor.Ones[float32](tensor.Shape{2, 3})
//	    z, _ := backend.Add(x, y)
//	    s, _ := backend.SumDim(z, 1) // Shape: [2, 1]
//	}
//
// # Shapes
//
// Binary operations require identical shapes; there is no implicit
// broadcasting. Only MatMul reconciles batch axes, one by one, where an
// extent of 1 is reused across the other operand.
//
// # Errors
//
// Operations that can reject their inputs return an error wrapping one of
// ErrShapeMismatch, ErrOutOfRange, ErrInvalidShape, ErrIncompatibleMatMul or
// ErrEmptyInput. Numeric domain issues are not checked: log of a negative
// float is NaN.
package tensor
