package tensor

import (
	"math"
	"strconv"
	"strings"
)

// Shape represents the per-axis extents of a tensor, outermost axis first.
//
// Shape{} is the shape of a scalar (or any non-sequence value) and
// Shape{0} is the shape of an empty sequence.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the number of leaves a tensor of this shape holds.
// A scalar shape holds one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// CheckedNumElements is NumElements with overflow detection. It reports
// false when an extent is negative or the product of the nonzero extents
// does not fit in an int, even if a zero extent makes the total 0.
func (s Shape) CheckedNumElements() (int, bool) {
	n, empty := 1, false
	for _, dim := range s {
		switch {
		case dim < 0:
			return 0, false
		case dim == 0:
			empty = true
		case n > math.MaxInt/dim:
			return 0, false
		default:
			n *= dim
		}
	}
	if empty {
		return 0, true
	}
	return n, true
}

// Validate checks that no extent is negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return &TypeContractError{
				Op:      "shape",
				Message: "invalid extent at axis " + strconv.Itoa(i) + ": " + strconv.Itoa(dim) + " (must be >= 0)",
			}
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape, counted in
// elements: stride[i] = product of all extents after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String renders the shape in compact bracketed form, e.g. [2,3].
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, dim := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(dim))
	}
	b.WriteByte(']')
	return b.String()
}

// ParseShape parses a comma separated extent list such as "2,3,1" or
// "[2,3,1]".
func ParseShape(text string) (Shape, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")
	if strings.TrimSpace(text) == "" {
		return nil, &TypeContractError{Op: "shape", Message: "The sizes must be an array!"}
	}

	parts := strings.Split(text, ",")
	shape := make(Shape, len(parts))
	for i, part := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, &TypeContractError{Op: "shape", Message: "invalid extent " + strconv.Quote(part) + " at axis " + strconv.Itoa(i)}
		}
		shape[i] = dim
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}
