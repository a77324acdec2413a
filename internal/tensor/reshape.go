package tensor

// Flatten returns the leaves of v in row-major (depth-first, left-to-right)
// order. v must be a non-ragged sequence.
func Flatten(v Value) ([]Value, error) {
	if !v.seq {
		return nil, &TypeContractError{Op: "flatten", Message: "The input array must be an array!"}
	}
	shape, err := InferShape(v)
	if err != nil {
		return nil, err
	}

	flat := make([]Value, 0, shape.NumElements())
	return appendLeaves(flat, v), nil
}

func appendLeaves(dst []Value, v Value) []Value {
	if !v.seq {
		return append(dst, v)
	}
	for _, item := range v.items {
		dst = appendLeaves(dst, item)
	}
	return dst
}

// Reshape regroups the leaves of v into target, preserving row-major order.
//
// The source is flattened first, so any non-ragged rank can be reshaped into
// any target whose extents multiply to the same element count. A target of
// length 1 unwraps to a flat sequence.
//
// Errors:
//   - *TypeContractError if v is not a sequence, or target is empty or has
//     a negative extent.
//   - *RaggedShapeError if v is ragged.
//   - *ReshapeSizeError if the element counts differ or the target's extent
//     product overflows int.
//
// Example:
//
//	y, _ := tensor.Reshape(tensor.Numbers(1, 2, 3, 4, 5, 6), tensor.Shape{2, 3})
//	// y = [[1,2,3],[4,5,6]]
func Reshape(v Value, target Shape) (Value, error) {
	if !v.seq {
		return Value{}, &TypeContractError{Op: "reshape", Message: "The input array must be an array!"}
	}
	if len(target) == 0 || target.Validate() != nil {
		return Value{}, &TypeContractError{Op: "reshape", Message: "The sizes must be an array!"}
	}

	source, err := InferShape(v)
	if err != nil {
		return Value{}, err
	}
	size := source.NumElements()
	if product, ok := target.CheckedNumElements(); !ok || product != size {
		return Value{}, &ReshapeSizeError{Source: source, Target: target.Clone(), Size: size}
	}

	flat := appendLeaves(make([]Value, 0, size), v)
	return nest(flat, target, target.ComputeStrides()), nil
}

// nest groups flat into shape using its row-major strides. len(flat) must
// equal shape.NumElements(). Each slice of flat becomes a fresh node so no
// two results share storage.
func nest(flat []Value, shape Shape, strides []int) Value {
	if len(shape) == 1 {
		items := make([]Value, len(flat))
		copy(items, flat)
		return node(items)
	}

	stride := strides[0]
	items := make([]Value, shape[0])
	for i := range items {
		items[i] = nest(flat[i*stride:(i+1)*stride], shape[1:], strides[1:])
	}
	return node(items)
}
