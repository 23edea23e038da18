// Package cpu implements the CPU backend with generic kernels and gonum BLAS integration.
package cpu

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/config"
	"github.com/born-ml/ndarray/internal/element"
	"github.com/born-ml/ndarray/internal/random"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Compile-time checks that Backend implements tensor.Ops for every numeric kind.
var (
	_ tensor.Ops[float32] = (*Backend[float32])(nil)
	_ tensor.Ops[float64] = (*Backend[float64])(nil)
	_ tensor.Ops[int32]   = (*Backend[int32])(nil)
	_ tensor.Ops[int64]   = (*Backend[int64])(nil)
	_ tensor.Ops[uint8]   = (*Backend[uint8])(nil)
)

// Backend implements tensor operations on CPU for element type E.
//
// A Backend holds no tensor state and is safe for concurrent use.
type Backend[E element.Numeric] struct {
	device tensor.Device
	cfg    config.Config
	rng    *random.Locked
}

// Option configures a Backend.
type Option func(*options)

type options struct {
	cfg config.Config
	gen *random.Generator
}

// WithConfig replaces the default configuration.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithGenerator makes Random draw from g instead of the process-wide generator.
// It takes precedence over a seed set in the configuration.
func WithGenerator(g *random.Generator) Option {
	return func(o *options) {
		o.gen = g
	}
}

// New creates a new CPU backend.
func New[E element.Numeric](opts ...Option) *Backend[E] {
	o := options{cfg: config.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	rng := random.Global()
	switch {
	case o.gen != nil:
		rng = random.NewLocked(o.gen)
	case o.cfg.Random.Seed != 0:
		rng = random.NewLocked(random.NewGenerator(o.cfg.Random.Seed))
	}

	klog.V(1).Infof("cpu: new %s backend (parallel=%t workers=%d blas=%t)",
		element.KindOf[E](), o.cfg.Parallel.Enabled, o.cfg.Parallel.NumWorkers, o.cfg.MatMul.UseBLAS)

	return &Backend[E]{
		device: tensor.CPU,
		cfg:    o.cfg,
		rng:    rng,
	}
}

// Name returns the backend name.
func (cpu *Backend[E]) Name() string {
	return "CPU"
}

// Config returns the configuration the backend was created with.
func (cpu *Backend[E]) Config() config.Config {
	return cpu.cfg
}
