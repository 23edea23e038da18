package cpu

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/random"
	"github.com/born-ml/ndarray/internal/tensor"
)

func TestBackend_Random(t *testing.T) {
	backend := New[float32](WithGenerator(random.NewGenerator(42)))

	x := must.M1(backend.Random(tensor.Shape{4, 8}, random.Uniform(-1, 1)))
	assert.Equal(t, tensor.Shape{4, 8}, x.Shape())
	for _, v := range x.Values() {
		require.GreaterOrEqual(t, v, float32(-1))
		require.LessOrEqual(t, v, float32(1))
	}
}

func TestBackend_RandomSeeded(t *testing.T) {
	cfg := testConfig()
	cfg.Random.Seed = 42

	a := New[float64](WithConfig(cfg))
	b := New[float64](WithGenerator(random.NewGenerator(42)))

	a1 := must.M1(a.Random(tensor.Shape{3}, random.Normal(0, 1)))
	a2 := must.M1(a.Random(tensor.Shape{3}, random.Normal(0, 1)))
	b1 := must.M1(b.Random(tensor.Shape{3}, random.Normal(0, 1)))
	b2 := must.M1(b.Random(tensor.Shape{3}, random.Normal(0, 1)))

	assert.Equal(t, a1.Values(), b1.Values())
	assert.Equal(t, a2.Values(), b2.Values())
	assert.NotEqual(t, a1.Values(), a2.Values(), "generator state advances between calls")
}

func TestBackend_RandomBernoulli(t *testing.T) {
	backend := New[uint8](WithGenerator(random.NewGenerator(8)))
	ones := must.M1(backend.Random(tensor.Shape{100}, random.Bernoulli(1)))
	assert.Equal(t, []bool{true}, backend.EqualScalar(backend.Mean(ones), 1).Values())

	zeros := must.M1(backend.Random(tensor.Shape{100}, random.Bernoulli(0)))
	assert.Equal(t, []uint8{0}, backend.Sum(zeros).Values())
}

func TestBackend_RandomErrors(t *testing.T) {
	backend := New[float32](WithGenerator(random.NewGenerator(1)))

	_, err := backend.Random(tensor.Shape{0}, random.Standard())
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)

	_, err = backend.Random(tensor.Shape{2}, random.Uniform(3, 1))
	assert.ErrorIs(t, err, random.ErrInvalidDistribution)
}
