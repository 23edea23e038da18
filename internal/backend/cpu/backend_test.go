package cpu

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/config"
	"github.com/born-ml/ndarray/internal/element"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/random"
	"github.com/born-ml/ndarray/internal/tensor"
)

// testConfig splits even tiny inputs across workers so parallel paths run in tests.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Parallel = parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2}
	return cfg
}

// Helper to create test backend.
func newTestBackend[E element.Numeric]() *Backend[E] {
	return New[E](WithConfig(testConfig()))
}

// fromSlice builds a tensor for test setup.
func fromSlice[E element.Element](data []E, shape ...int) *tensor.Tensor[E] {
	return must.M1(tensor.FromSlice(data, tensor.Shape(shape)))
}

// arange returns a tensor holding 0, 1, ..., n-1 in the given shape.
func arange[E element.Numeric](shape ...int) *tensor.Tensor[E] {
	n := tensor.Shape(shape).NumElements()
	data := make([]E, n)
	for i := range data {
		data[i] = E(i)
	}
	return fromSlice(data, shape...)
}

func TestBackend_New(t *testing.T) {
	backend := New[float32]()
	require.NotNil(t, backend)
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, config.Default(), backend.Config())
	assert.Same(t, random.Global(), backend.rng)

	x := arange[float32](2)
	assert.Equal(t, tensor.CPU, backend.Device(x))
	assert.Same(t, x, backend.ToDevice(x, tensor.CPU))
	assert.Same(t, x, backend.Detach(x))
}

func TestBackend_Options(t *testing.T) {
	cfg := testConfig()
	cfg.Random.Seed = 9
	backend := New[int64](WithConfig(cfg))
	assert.Equal(t, cfg, backend.Config())
	assert.NotSame(t, random.Global(), backend.rng)

	gen := random.NewGenerator(1)
	backend = New[int64](WithConfig(cfg), WithGenerator(gen))
	backend.rng.Do(func(g *random.Generator) {
		assert.Same(t, gen, g, "explicit generator wins over the configured seed")
	})
}

func TestBackend_DataRoundTrip(t *testing.T) {
	backend := newTestBackend[float64]()

	d := must.M1(tensor.NewData([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2}))
	x := must.M1(backend.FromData(d))
	assert.Equal(t, d, backend.ToData(x))

	// FromData copies: the source slice may be reused.
	d.Value[0] = 100
	assert.Equal(t, 1.0, x.At(0, 0))

	out := backend.IntoData(x)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, out.Value)
	assert.Equal(t, tensor.Shape{3, 2}, out.Shape)

	_, err := backend.FromData(tensor.Data[float64]{Value: []float64{1, 2}, Shape: tensor.Shape{3}})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestBackend_Empty(t *testing.T) {
	backend := newTestBackend[uint8]()

	x := must.M1(backend.Empty(tensor.Shape{2, 2}))
	assert.Equal(t, tensor.Shape{2, 2}, x.Shape())
	assert.Equal(t, []uint8{0, 0, 0, 0}, x.Values())

	_, err := backend.Empty(tensor.Shape{2, 0})
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestBackend_FullPrecision(t *testing.T) {
	backend := newTestBackend[int32]()

	x := fromSlice([]int32{-2, 0, 7}, 3)
	full := backend.ToFullPrecision(x)
	assert.Equal(t, []float32{-2, 0, 7}, full.Values())

	back := backend.FromFullPrecision(fromSlice([]float32{1.9, -1.9, 3e10}, 3))
	assert.Equal(t, []int32{1, -1, 2147483647}, back.Values())
}
