package tensor

import "github.com/pkg/errors"

// Sentinel errors reported by tensor operations. Operations wrap them with the
// operation name and the offending shapes; match with errors.Is.
var (
	// ErrShapeMismatch is returned when operand shapes are incompatible.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrOutOfRange is returned for an axis or index range outside the tensor.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidShape is returned for shapes with no axes or non-positive extents.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrIncompatibleMatMul is returned when matrix inner dimensions differ.
	ErrIncompatibleMatMul = errors.New("incompatible matmul operands")

	// ErrEmptyInput is returned when an operation needs at least one tensor.
	ErrEmptyInput = errors.New("empty input")
)
