package tensor

import (
	"github.com/born-ml/ndarray/internal/element"
	"github.com/born-ml/ndarray/internal/random"
)

// Ops is the operation set a backend implements for element type E.
// The front-end dispatches every tensor operation through it.
//
// Operations never modify their operands. Operations that can reject their
// inputs return an error wrapping one of the sentinels in errors.go; the rest
// cannot fail and return only the result.
//
// Implementations:
//   - cpu.Backend: pure Go, generic kernels with gonum BLAS for float matmul
type Ops[E element.Numeric] interface {
	// Creation and export
	FromData(d Data[E]) (*Tensor[E], error)
	Empty(shape Shape) (*Tensor[E], error)
	Random(shape Shape, dist random.Distribution) (*Tensor[E], error)
	ToData(t *Tensor[E]) Data[E]
	IntoData(t *Tensor[E]) Data[E]

	// Device handling (identity on CPU)
	Device(t *Tensor[E]) Device
	ToDevice(t *Tensor[E], device Device) *Tensor[E]
	Detach(t *Tensor[E]) *Tensor[E]

	// Element-wise binary operations (identical shapes required)
	Add(a, b *Tensor[E]) (*Tensor[E], error)
	Sub(a, b *Tensor[E]) (*Tensor[E], error)
	Mul(a, b *Tensor[E]) (*Tensor[E], error)
	Div(a, b *Tensor[E]) (*Tensor[E], error)

	// Scalar operations
	AddScalar(t *Tensor[E], v E) *Tensor[E]
	SubScalar(t *Tensor[E], v E) *Tensor[E]
	MulScalar(t *Tensor[E], v E) *Tensor[E]
	DivScalar(t *Tensor[E], v E) *Tensor[E]
	Neg(t *Tensor[E]) *Tensor[E]

	// Comparison operations (element-wise, return bool tensor)
	Equal(a, b *Tensor[E]) (*Tensor[bool], error)
	Greater(a, b *Tensor[E]) (*Tensor[bool], error)
	GreaterEqual(a, b *Tensor[E]) (*Tensor[bool], error)
	Lower(a, b *Tensor[E]) (*Tensor[bool], error)
	LowerEqual(a, b *Tensor[E]) (*Tensor[bool], error)
	EqualScalar(t *Tensor[E], v E) *Tensor[bool]
	GreaterScalar(t *Tensor[E], v E) *Tensor[bool]
	GreaterEqualScalar(t *Tensor[E], v E) *Tensor[bool]
	LowerScalar(t *Tensor[E], v E) *Tensor[bool]
	LowerEqualScalar(t *Tensor[E], v E) *Tensor[bool]
	MaskFill(t *Tensor[E], mask *Tensor[bool], v E) (*Tensor[E], error)

	// Math operations (element-wise)
	Exp(t *Tensor[E]) *Tensor[E]
	Log(t *Tensor[E]) *Tensor[E]
	Log1p(t *Tensor[E]) *Tensor[E]
	Powf(t *Tensor[E], exponent float32) *Tensor[E]
	Sqrt(t *Tensor[E]) *Tensor[E]
	Cos(t *Tensor[E]) *Tensor[E]
	Sin(t *Tensor[E]) *Tensor[E]
	Tanh(t *Tensor[E]) *Tensor[E]
	Erf(t *Tensor[E]) *Tensor[E]
	Relu(t *Tensor[E]) *Tensor[E]

	// Reduction operations
	Sum(t *Tensor[E]) *Tensor[E]
	Mean(t *Tensor[E]) *Tensor[E]
	SumDim(t *Tensor[E], dim int) (*Tensor[E], error)
	MeanDim(t *Tensor[E], dim int) (*Tensor[E], error)
	Argmax(t *Tensor[E], dim int) (*Tensor[int64], error)
	Argmin(t *Tensor[E], dim int) (*Tensor[int64], error)

	// Matrix operations
	MatMul(a, b *Tensor[E]) (*Tensor[E], error)

	// Shape and indexing operations
	Reshape(t *Tensor[E], shape Shape) (*Tensor[E], error)
	SwapDims(t *Tensor[E], dim1, dim2 int) (*Tensor[E], error)
	Index(t *Tensor[E], ranges []Range) (*Tensor[E], error)
	IndexAssign(t *Tensor[E], ranges []Range, value *Tensor[E]) (*Tensor[E], error)
	Cat(tensors []*Tensor[E], dim int) (*Tensor[E], error)

	// Precision conversion
	ToFullPrecision(t *Tensor[E]) *Tensor[float32]
	FromFullPrecision(t *Tensor[float32]) *Tensor[E]

	// Metadata
	Name() string
}
