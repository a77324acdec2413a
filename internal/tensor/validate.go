package tensor

// ValidateMatrix1D returns an error unless v has rank exactly 1.
//
// A ragged v yields the *RaggedShapeError from InferShape; a well-formed v
// of another rank yields a *RankMismatchError.
func ValidateMatrix1D(v Value) error {
	return validateRank(v, 1)
}

// ValidateMatrix2D returns an error unless v has rank exactly 2.
func ValidateMatrix2D(v Value) error {
	return validateRank(v, 2)
}

// ValidateRank returns an error unless v has the given rank.
func ValidateRank(v Value, rank int) error {
	return validateRank(v, rank)
}

func validateRank(v Value, rank int) error {
	shape, err := InferShape(v)
	if err != nil {
		return err
	}
	if len(shape) != rank {
		return &RankMismatchError{Value: v, Shape: shape, Want: rank}
	}
	return nil
}

// ValidateMatrixType walks every leaf of v (any rank, depth-first) and
// returns an *ElementTypeError for the first leaf whose kind is not in
// allowed. Null leaves never match.
//
// Shape is not checked: a ragged v whose leaves all conform passes.
// A non-sequence v is rejected with a *TypeContractError.
//
// Example:
//
//	x := [[["1",1]],[["3",true]]]
//	tensor.ValidateMatrixType(x, tensor.Kinds(tensor.String, tensor.Number, tensor.Bool)) // nil
//	tensor.ValidateMatrixType(x, tensor.Kinds(tensor.String, tensor.Number))              // fails at arr[1][0][1]
func ValidateMatrixType(v Value, allowed KindSet) error {
	if !v.seq {
		return &TypeContractError{
			Op:      "validateMatrixType",
			Message: "The matrix must be an array, got " + Render(v),
		}
	}
	return checkKinds(v, allowed, nil)
}

func checkKinds(v Value, allowed KindSet, path IndexPath) error {
	for i, item := range v.items {
		if item.seq {
			if err := checkKinds(item, allowed, path.With(i)); err != nil {
				return err
			}
			continue
		}
		if !allowed.Has(item.kind) {
			return &ElementTypeError{Path: path.With(i), Value: item, Allowed: allowed}
		}
	}
	return nil
}

// ValidateFitInputs is the entry contract of supervised fit methods: X must
// be rank 2 and y rank 1.
//
// It validates shape class only. Whether X has as many rows as y has
// elements is left to the calling algorithm.
func ValidateFitInputs(x, y Value) error {
	if err := ValidateMatrix2D(x); err != nil {
		return err
	}
	return ValidateMatrix1D(y)
}
