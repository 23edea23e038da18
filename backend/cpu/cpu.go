// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/config"
	"github.com/born-ml/ndarray/tensor"
)

// Backend represents the CPU backend implementation for element type E.
type Backend[E tensor.Numeric] = internalcpu.Backend[E]

// BatchMatrix is a copy of a tensor laid out as a batch of row-major matrices.
type BatchMatrix[E tensor.Numeric] = internalcpu.BatchMatrix[E]

// Option configures a Backend.
type Option = internalcpu.Option

// Config holds the backend tunables.
type Config = config.Config

// Compile-time check that Backend implements tensor.Ops.
var _ tensor.Ops[float32] = (*Backend[float32])(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndarray/backend/cpu"
//	    "github.com/born-ml/ndarray/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New[float32](cpu.WithGenerator(tensor.NewGenerator(42)))
//	    x, _ := backend.Random(tensor.Shape{2, 3}, tensor.Standard())
//	}
func New[E tensor.Numeric](opts ...Option) *Backend[E] {
	return internalcpu.New[E](opts...)
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return internalcpu.WithConfig(cfg)
}

// WithGenerator makes Random draw from g instead of the process-wide generator.
func WithGenerator(g *tensor.Generator) Option {
	return internalcpu.WithGenerator(g)
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}
