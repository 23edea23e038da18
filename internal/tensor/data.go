package tensor

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/element"
)

// Data is the flat export/import form of a tensor: values in row-major order
// plus the shape they fill.
type Data[E element.Element] struct {
	Value []E   `json:"value"`
	Shape Shape `json:"shape"`
}

// NewData creates a validated Data.
func NewData[E element.Element](value []E, shape Shape) (Data[E], error) {
	d := Data[E]{Value: value, Shape: shape}
	if err := d.Validate(); err != nil {
		return Data[E]{}, err
	}
	return d, nil
}

// Validate checks that the shape is valid and matches the number of values.
func (d Data[E]) Validate() error {
	if err := d.Shape.Validate(); err != nil {
		return err
	}
	if d.Shape.NumElements() != len(d.Value) {
		return errors.Wrapf(ErrShapeMismatch, "data: shape %v requires %d values, got %d",
			d.Shape, d.Shape.NumElements(), len(d.Value))
	}
	return nil
}

// FromData creates a tensor holding a copy of d's values.
func FromData[E element.Element](d Data[E]) (*Tensor[E], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return FromSlice(d.Value, d.Shape)
}

// ToData exports a copy of t's values and shape. t stays usable.
func ToData[E element.Element](t *Tensor[E]) Data[E] {
	return Data[E]{Value: t.ToSlice(), Shape: t.shape.Clone()}
}

// IntoData exports t's values and consumes t.
// When t is contiguous and the only reader of its storage, the storage is
// handed over without a copy.
func IntoData[E element.Element](t *Tensor[E]) Data[E] {
	defer t.Release()
	if t.IsUnique() && t.IsContiguous() && t.offset == 0 && len(t.buf.data) == t.NumElements() {
		return Data[E]{Value: t.buf.data, Shape: t.shape.Clone()}
	}
	return ToData(t)
}

// Cast converts every element of t to another kind.
func Cast[To, From element.Element](t *Tensor[From]) *Tensor[To] {
	src := t.Values()
	dst := make([]To, len(src))
	element.ConvertSlice(dst, src)
	return Wrap(dst, t.shape)
}
