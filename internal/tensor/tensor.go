// Package tensor provides the dense N-dimensional storage, shapes and the
// operation-set contract implemented by the ndarray backends.
package tensor

import (
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/element"
)

// storage is the shared element buffer behind one or more tensors.
// refs counts the tensor headers that may read it.
type storage[E element.Element] struct {
	data []E
	refs atomic.Int32
}

func newStorage[E element.Element](data []E) *storage[E] {
	s := &storage[E]{data: data}
	s.refs.Store(1)
	return s
}

// Tensor is a dense N-dimensional array of E.
//
// A Tensor is a value: operations return new tensors and never write into
// their operands. Views produced by Share, Index, Reshape and SwapAxes reuse
// the storage without copying. Rank is len(Shape()) and is fixed per instance.
type Tensor[E element.Element] struct {
	buf     *storage[E]
	shape   Shape
	strides []int
	offset  int
}

// Wrap creates a row-major tensor that takes ownership of data.
// Panics if len(data) does not match the shape; this is an internal invariant
// for kernels that size their output from the shape.
func Wrap[E element.Element](data []E, shape Shape) *Tensor[E] {
	if len(data) != shape.NumElements() {
		panic(fmt.Sprintf("tensor: %d values for shape %v", len(data), shape))
	}
	return &Tensor[E]{
		buf:     newStorage(data),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[E element.Element](data []E, shape Shape) (*Tensor[E], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	values := make([]E, len(data))
	copy(values, data)
	return Wrap(values, shape), nil
}

// Full creates a tensor filled with value.
func Full[E element.Element](shape Shape, value E) (*Tensor[E], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]E, shape.NumElements())
	if value != element.Zero[E]() {
		for i := range data {
			data[i] = value
		}
	}
	return Wrap(data, shape), nil
}

// Zeros creates a tensor filled with zeros.
func Zeros[E element.Element](shape Shape) (*Tensor[E], error) {
	return Full(shape, element.Zero[E]())
}

// Ones creates a tensor filled with ones.
func Ones[E element.Element](shape Shape) (*Tensor[E], error) {
	return Full(shape, element.One[E]())
}

// Shape returns the tensor's shape. The returned slice must not be modified.
func (t *Tensor[E]) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's strides in elements.
func (t *Tensor[E]) Strides() []int {
	return t.strides
}

// Rank returns the number of axes.
func (t *Tensor[E]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[E]) NumElements() int {
	return t.shape.NumElements()
}

// Kind returns the runtime element kind.
func (t *Tensor[E]) Kind() element.Kind {
	return element.KindOf[E]()
}

// Device returns the compute device, which is always CPU.
func (t *Tensor[E]) Device() Device {
	return CPU
}

// IsContiguous reports whether the tensor is laid out in standard row-major order.
func (t *Tensor[E]) IsContiguous() bool {
	for i, s := range t.shape.ComputeStrides() {
		if t.shape[i] != 1 && t.strides[i] != s {
			return false
		}
	}
	return true
}

// IsUnique reports whether no other tensor header reads this tensor's storage.
func (t *Tensor[E]) IsUnique() bool {
	return t.buf.refs.Load() == 1
}

// Values returns the elements in row-major order.
//
// For contiguous tensors this is the storage itself (zero-copy) and must be
// treated as read-only: writes show through every view of the storage.
// Other layouts are gathered into a new slice. Use ToSlice to get a copy.
func (t *Tensor[E]) Values() []E {
	if t.IsContiguous() {
		return t.buf.data[t.offset : t.offset+t.NumElements()]
	}
	return t.gather()
}

// ToSlice returns a copy of the elements in row-major order.
func (t *Tensor[E]) ToSlice() []E {
	if !t.IsContiguous() {
		return t.gather()
	}
	out := make([]E, t.NumElements())
	copy(out, t.Values())
	return out
}

// Contiguous returns t if it is already row-major, otherwise a row-major copy.
func (t *Tensor[E]) Contiguous() *Tensor[E] {
	if t.IsContiguous() {
		return t
	}
	return Wrap(t.gather(), t.shape)
}

// Share returns a new header over the same storage.
func (t *Tensor[E]) Share() *Tensor[E] {
	return t.view(t.shape.Clone(), append([]int(nil), t.strides...), t.offset)
}

// Clone creates a deep, row-major copy of the tensor.
func (t *Tensor[E]) Clone() *Tensor[E] {
	return Wrap(t.ToSlice(), t.shape)
}

// Release drops this header's claim on the storage. The tensor must not be used afterwards.
func (t *Tensor[E]) Release() {
	t.buf.refs.Add(-1)
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[E]) At(indices ...int) E {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := t.offset
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.strides[i]
	}
	return t.buf.data[offset]
}

// SwapAxes returns a view with axes d1 and d2 exchanged. No data is copied.
func (t *Tensor[E]) SwapAxes(d1, d2 int) (*Tensor[E], error) {
	if err := t.shape.CheckAxis("swap_dims", d1); err != nil {
		return nil, err
	}
	if err := t.shape.CheckAxis("swap_dims", d2); err != nil {
		return nil, err
	}
	shape := t.shape.Clone()
	strides := append([]int(nil), t.strides...)
	shape[d1], shape[d2] = shape[d2], shape[d1]
	strides[d1], strides[d2] = strides[d2], strides[d1]
	return t.view(shape, strides, t.offset), nil
}

// Slice returns a view restricted to ranges on the leading len(ranges) axes.
// Remaining axes are taken whole.
func (t *Tensor[E]) Slice(ranges []Range) (*Tensor[E], error) {
	if err := checkRanges("index", t.shape, ranges); err != nil {
		return nil, err
	}
	shape := t.shape.Clone()
	offset := t.offset
	for i, r := range ranges {
		shape[i] = r.Len()
		offset += r.Start * t.strides[i]
	}
	return t.view(shape, append([]int(nil), t.strides...), offset), nil
}

// Reshape returns a tensor with the same elements in the same row-major order
// and a new shape. Contiguous tensors are reshaped without copying.
func (t *Tensor[E]) Reshape(shape Shape) (*Tensor[E], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, "reshape")
	}
	if shape.NumElements() != t.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "reshape: %v -> %v (different number of elements)", t.shape, shape)
	}
	if !t.IsContiguous() {
		return Wrap(t.gather(), shape), nil
	}
	return t.view(shape.Clone(), shape.ComputeStrides(), t.offset), nil
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[E]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.Kind(), t.shape, t.Device())
}

func (t *Tensor[E]) view(shape Shape, strides []int, offset int) *Tensor[E] {
	t.buf.refs.Add(1)
	return &Tensor[E]{
		buf:     t.buf,
		shape:   shape,
		strides: strides,
		offset:  offset,
	}
}

// gather copies the logical elements into a new row-major slice by walking the strides.
func (t *Tensor[E]) gather() []E {
	n := t.NumElements()
	out := make([]E, n)
	idx := make([]int, len(t.shape))
	off := t.offset
	for i := 0; i < n; i++ {
		out[i] = t.buf.data[off]
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			off += t.strides[d]
			if idx[d] < t.shape[d] {
				break
			}
			off -= idx[d] * t.strides[d]
			idx[d] = 0
		}
	}
	return out
}
