package tensor

// InferShape computes the extent of every axis of v, outermost first.
//
// Rules:
//   - A leaf (or null) has shape [] (rank 0).
//   - An empty sequence has shape [0].
//   - A sequence of leaves has shape [len].
//   - A sequence of sequences has shape [len, ...shape of element 0], and
//     every other element must have exactly that sub-shape.
//
// The walk is depth-first and left-to-right, so the error names the first
// ragged element in that order. Runs in O(total element count).
//
// Example:
//
//	_, err := tensor.InferShape(x) // x = [[2,3],[1,2],[4]]
//	// err: Element arr[2] should have 2 elements, but has 1 elements
func InferShape(v Value) (Shape, error) {
	if !v.seq {
		return Shape{}, nil
	}
	return inferShape(v, nil)
}

func inferShape(v Value, path IndexPath) (Shape, error) {
	n := len(v.items)
	if n == 0 {
		return Shape{0}, nil
	}

	first := v.items[0]
	if !first.seq {
		for i := 1; i < n; i++ {
			if item := v.items[i]; item.seq {
				return nil, &RaggedShapeError{Path: path.With(i), Got: len(item.items), WantLeaf: true}
			}
		}
		return Shape{n}, nil
	}

	sub, err := inferShape(first, path.With(0))
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := checkShape(v.items[i], sub, path.With(i)); err != nil {
			return nil, err
		}
	}

	shape := make(Shape, 0, len(sub)+1)
	shape = append(shape, n)
	return append(shape, sub...), nil
}

// checkShape verifies that v has exactly the shape want.
func checkShape(v Value, want Shape, path IndexPath) error {
	if len(want) == 0 {
		if v.seq {
			return &RaggedShapeError{Path: path, Got: len(v.items), WantLeaf: true}
		}
		return nil
	}

	if !v.seq {
		return &RaggedShapeError{Path: path, Want: want[0], GotLeaf: true}
	}
	if len(v.items) != want[0] {
		return &RaggedShapeError{Path: path, Got: len(v.items), Want: want[0]}
	}
	for i, item := range v.items {
		if err := checkShape(item, want[1:], path.With(i)); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of leaves in v. A leaf counts as one element.
// Ragged inputs are rejected with the same error InferShape reports.
func Size(v Value) (int, error) {
	shape, err := InferShape(v)
	if err != nil {
		return 0, err
	}
	return shape.NumElements(), nil
}
