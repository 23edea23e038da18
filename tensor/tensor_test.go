// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/born-ml/ndarray/backend/cpu"
	"github.com/born-ml/ndarray/tensor"
)

// TestOpsInterface verifies that every numeric CPU backend implements tensor.Ops.
func TestOpsInterface(_ *testing.T) {
	var _ tensor.Ops[float64] = cpu.New[float64]()
	var _ tensor.Ops[int32] = cpu.New[int32]()
	var _ tensor.Ops[int64] = cpu.New[int64]()
	var _ tensor.Ops[uint8] = cpu.New[uint8]()
}

func TestPublicAPI(t *testing.T) {
	backend := cpu.New[float32](cpu.WithGenerator(tensor.NewGenerator(42)))

	x := must.M1(backend.Random(tensor.Shape{2, 3}, tensor.Normal(0, 1)))
	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Equal(t, tensor.Float32, x.Kind())
	assert.Equal(t, tensor.CPU, backend.Device(x))

	ones := must.M1(tensor.Ones[float32](tensor.Shape{3, 1}))
	y := must.M1(backend.MatMul(x, ones))
	assert.Equal(t, tensor.Shape{2, 1}, y.Shape())

	sums := must.M1(backend.SumDim(x, 1))
	assert.InDeltaSlice(t, sums.Values(), y.Values(), 1e-5)

	_, err := backend.Add(x, ones)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestDataExport(t *testing.T) {
	d := must.M1(tensor.NewData([]int64{1, 2, 3, 4}, tensor.Shape{2, 2}))
	x := must.M1(tensor.FromData(d))
	assert.Equal(t, d, tensor.ToData(x))
	assert.Equal(t, d, tensor.IntoData(x))
}

func TestCastFloat16(t *testing.T) {
	x := must.M1(tensor.FromSlice([]float32{0.5, -2, 1024}, tensor.Shape{3}))
	half := tensor.Cast[float16.Float16](x)
	assert.Equal(t, tensor.Float16, half.Kind())
	require.Equal(t, float32(-2), half.At(1).Float32())

	back := tensor.Cast[float32](half)
	assert.Equal(t, x.Values(), back.Values())
}

func TestConfig(t *testing.T) {
	cfg := cpu.DefaultConfig()
	cfg.Random.Seed = 7
	a := cpu.New[float64](cpu.WithConfig(cfg))
	b := cpu.New[float64](cpu.WithConfig(cfg))

	dist := tensor.Uniform(-1, 1)
	assert.Equal(t,
		must.M1(a.Random(tensor.Shape{4}, dist)).Values(),
		must.M1(b.Random(tensor.Shape{4}, dist)).Values())
}
