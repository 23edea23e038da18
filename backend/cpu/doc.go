// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Generic kernels for float32, float64, int32, int64 and uint8
//   - gonum BLAS for float32/float64 matrix multiplication
//   - Batched matmul with per-axis batch broadcasting
//   - Seeded random tensors
//
// # Basic Usage
//
//	backend := cpu.New[float64]()
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	y, _ := backend.MatMul(x, x)
//	idx, _ := backend.Argmax(y, 1)
//
// # Configuration
//
// Parallelism, BLAS use and the random seed are set with WithConfig, from
// DefaultConfig or a YAML file read by LoadConfig:
//
//	parallel:
//	  enabled: true
//	  num_workers: 8
//	  min_chunk_size: 4096
//	matmul:
//	  use_blas: true
//	random:
//	  seed: 42
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state; random draws are serialized
// on the backend's generator.
package cpu
