package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Range is a half-open interval [Start, End) along one axis.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// String formats the range as start..end.
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// checkRanges validates ranges against the leading axes of shape.
// Ranges are never clamped: each must satisfy 0 <= Start < End <= extent.
func checkRanges(op string, shape Shape, ranges []Range) error {
	if len(ranges) > len(shape) {
		return errors.Wrapf(ErrOutOfRange, "%s: %d ranges for %dD tensor", op, len(ranges), len(shape))
	}
	for i, r := range ranges {
		if r.Start < 0 || r.End > shape[i] || r.Start >= r.End {
			return errors.Wrapf(ErrOutOfRange, "%s: range %v invalid for dimension %d (size %d)", op, r, i, shape[i])
		}
	}
	return nil
}

// RegionShape returns the shape addressed by ranges on shape, validating them first.
func RegionShape(op string, shape Shape, ranges []Range) (Shape, error) {
	if err := checkRanges(op, shape, ranges); err != nil {
		return nil, err
	}
	region := shape.Clone()
	for i, r := range ranges {
		region[i] = r.Len()
	}
	return region, nil
}
