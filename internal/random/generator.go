// Package random provides the seeded random generators used to create tensors
// from statistical distributions.
//
// A Generator is an explicit, single-owner context. Locked wraps one for
// shared use; Global returns the process-wide Locked instance, which is
// created on first use.
package random

import (
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/element"
)

// streamSalt is the second PCG word derived from the seed.
const streamSalt = 0x9e3779b97f4a7c15

// Generator is a deterministic PCG random source. It is not safe for concurrent use.
type Generator struct {
	seed uint64
	src  *rand.PCG
}

// NewGenerator creates a generator whose sequence is fully determined by seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{seed: seed, src: rand.NewPCG(seed, seed^streamSalt)}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Uint64 returns the next raw value and advances the generator.
func (g *Generator) Uint64() uint64 {
	return g.src.Uint64()
}

// sampler returns a function drawing one float64 from dist, reading from g.
func (g *Generator) sampler(dist Distribution) func() float64 {
	switch dist.Kind {
	case KindUniform:
		return distuv.Uniform{Min: dist.Low, Max: dist.High, Src: g.src}.Rand
	case KindBernoulli:
		return distuv.Bernoulli{P: dist.Prob, Src: g.src}.Rand
	case KindNormal:
		return distuv.Normal{Mu: dist.Mean, Sigma: dist.Std, Src: g.src}.Rand
	default:
		return distuv.Uniform{Min: 0, Max: 1, Src: g.src}.Rand
	}
}

// Sample draws n values of E from dist and advances g.
// Values are drawn as float64 and converted, so integer kinds truncate.
func Sample[E element.Element](g *Generator, dist Distribution, n int) ([]E, error) {
	if err := dist.Validate(); err != nil {
		return nil, err
	}
	draw := g.sampler(dist)
	out := make([]E, n)
	for i := range out {
		out[i] = element.FromFloat64[E](draw())
	}
	return out, nil
}

// Locked guards a Generator with a mutex so concurrent draws are serialized.
type Locked struct {
	mu   sync.Mutex
	gen  *Generator
	seed func() uint64
}

// NewLocked wraps an existing generator.
func NewLocked(g *Generator) *Locked {
	return &Locked{gen: g}
}

// Do runs fn with exclusive access to the generator, creating it on first use.
// The generator state advanced by fn is kept for the next call.
func (l *Locked) Do(fn func(g *Generator)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen == nil {
		if l.seed == nil {
			panic("random: locked generator has neither generator nor seed source")
		}
		l.gen = NewGenerator(l.seed())
		klog.V(1).Infof("random: initialized generator with seed %d", l.gen.Seed())
	}
	fn(l.gen)
}

// SampleLocked draws n values of E from dist while holding l's lock.
func SampleLocked[E element.Element](l *Locked, dist Distribution, n int) (out []E, err error) {
	l.Do(func(g *Generator) {
		out, err = Sample[E](g, dist, n)
	})
	return out, err
}

var global = &Locked{seed: rand.Uint64}

// Global returns the process-wide generator. It is seeded from entropy on first use.
func Global() *Locked {
	return global
}
