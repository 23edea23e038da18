package cpu

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"

	"github.com/born-ml/ndarray/internal/tensor"
)

func TestBackend_Index(t *testing.T) {
	backend := newTestBackend[int32]()
	x := arange[int32](3, 4)

	t.Run("LeadingAxisOnly", func(t *testing.T) {
		got := must.M1(backend.Index(x, []tensor.Range{{Start: 1, End: 3}}))
		assert.Equal(t, tensor.Shape{2, 4}, got.Shape())
		assert.Equal(t, []int32{4, 5, 6, 7, 8, 9, 10, 11}, got.Values())
	})

	t.Run("AllAxes", func(t *testing.T) {
		got := must.M1(backend.Index(x, []tensor.Range{{Start: 0, End: 2}, {Start: 1, End: 3}}))
		assert.Equal(t, tensor.Shape{2, 2}, got.Shape())
		assert.Equal(t, []int32{1, 2, 5, 6}, got.Values())
	})

	t.Run("OfView", func(t *testing.T) {
		xt := must.M1(backend.SwapDims(x, 0, 1)) // [4, 3]
		got := must.M1(backend.Index(xt, []tensor.Range{{Start: 2, End: 4}, {Start: 1, End: 2}}))
		assert.Equal(t, tensor.Shape{2, 1}, got.Shape())
		assert.Equal(t, []int32{6, 7}, got.Values())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		bad := [][]tensor.Range{
			{{Start: 0, End: 4}},
			{{Start: -1, End: 2}},
			{{Start: 2, End: 2}},
			{{Start: 0, End: 1}, {Start: 3, End: 5}},
			{{Start: 0, End: 1}, {Start: 0, End: 1}, {Start: 0, End: 1}},
		}
		for _, ranges := range bad {
			_, err := backend.Index(x, ranges)
			assert.ErrorIs(t, err, tensor.ErrOutOfRange, "ranges %v", ranges)
		}
	})
}

func TestBackend_IndexAssign(t *testing.T) {
	backend := newTestBackend[float32]()
	x := must.M1(backend.Empty(tensor.Shape{3, 4}))
	value := fromSlice([]float32{1, 2, 3, 4}, 2, 2)

	got := must.M1(backend.IndexAssign(x, []tensor.Range{{Start: 1, End: 3}, {Start: 1, End: 3}}, value))
	assert.Equal(t, tensor.Shape{3, 4}, got.Shape())
	assert.Equal(t, []float32{
		0, 0, 0, 0,
		0, 1, 2, 0,
		0, 3, 4, 0,
	}, got.Values())

	// The input is not aliased by the result.
	assert.Equal(t, make([]float32, 12), x.Values())

	t.Run("WholeTrailingAxes", func(t *testing.T) {
		y := arange[float32](2, 2, 2)
		got := must.M1(backend.IndexAssign(y, []tensor.Range{{Start: 1, End: 2}}, fromSlice([]float32{9, 9, 9, 9}, 1, 2, 2)))
		assert.Equal(t, []float32{0, 1, 2, 3, 9, 9, 9, 9}, got.Values())
	})

	t.Run("SharedStorageUntouched", func(t *testing.T) {
		y := arange[float32](2, 2)
		view := y.Share()
		_ = must.M1(backend.IndexAssign(y, []tensor.Range{{Start: 0, End: 1}}, fromSlice([]float32{7, 7}, 1, 2)))
		assert.Equal(t, []float32{0, 1, 2, 3}, view.Values())
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := backend.IndexAssign(x, []tensor.Range{{Start: 2, End: 4}}, value)
		assert.ErrorIs(t, err, tensor.ErrOutOfRange)

		_, err = backend.IndexAssign(x, []tensor.Range{{Start: 0, End: 2}}, value)
		assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	})
}
