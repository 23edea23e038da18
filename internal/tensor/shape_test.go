package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_Validate(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		wantErr bool
	}{
		{"1D", Shape{5}, false},
		{"3D", Shape{2, 3, 4}, false},
		{"Empty", Shape{}, true},
		{"Zero", Shape{2, 0}, true},
		{"Negative", Shape{-1}, true},
		{"Overflow", Shape{math.MaxInt/2 + 1, 2}, true},
		{"LargestRepresentable", Shape{math.MaxInt}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidShape)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShape_Basics(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 3, s.Rank())
	assert.Equal(t, 24, s.NumElements())
	assert.Equal(t, []int{12, 4, 1}, s.ComputeStrides())
	assert.Equal(t, "[2 3 4]", s.String())
	assert.True(t, s.Equal(Shape{2, 3, 4}))
	assert.False(t, s.Equal(Shape{2, 3}))
	assert.False(t, s.Equal(Shape{2, 3, 5}))

	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 2, s[0])

	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShape_CheckAxis(t *testing.T) {
	s := Shape{2, 3}
	assert.NoError(t, s.CheckAxis("op", 0))
	assert.NoError(t, s.CheckAxis("op", 1))
	assert.ErrorIs(t, s.CheckAxis("op", 2), ErrOutOfRange)
	assert.ErrorIs(t, s.CheckAxis("op", -1), ErrOutOfRange)
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b, want Shape
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{2, 1, 4}, Shape{1, 3, 1}, Shape{2, 3, 4}},
		{Shape{}, Shape{}, Shape{}},
	}
	for _, tt := range tests {
		got, err := BroadcastShapes(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = BroadcastShapes(Shape{5}, Shape{3, 5})
	assert.ErrorIs(t, err, ErrShapeMismatch, "ranks are not padded")
}

func TestBroadcastStridesAndFlatIndex(t *testing.T) {
	in, out := Shape{1, 3}, Shape{2, 3}
	inStrides := BroadcastStrides(in, out)
	assert.Equal(t, []int{0, 1}, inStrides)

	outStrides := out.ComputeStrides()
	var got []int
	for i := 0; i < out.NumElements(); i++ {
		got = append(got, FlatIndex(i, outStrides, inStrides))
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, got)
}

func TestRegionShape(t *testing.T) {
	got, err := RegionShape("index", Shape{4, 5, 6}, []Range{{Start: 1, End: 3}, {Start: 0, End: 5}})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 5, 6}, got)
	assert.Equal(t, "1..3", Range{Start: 1, End: 3}.String())
	assert.Equal(t, 2, Range{Start: 1, End: 3}.Len())

	_, err = RegionShape("index", Shape{4}, []Range{{Start: 3, End: 1}})
	assert.ErrorIs(t, err, ErrOutOfRange)
}
