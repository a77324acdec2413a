package tensor

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the engine unwraps to exactly one of
// these, so callers can match with errors.Is and inspect details with
// errors.As.
var (
	ErrTypeContract = errors.New("tensor: input is not a sequence")
	ErrRaggedShape  = errors.New("tensor: ragged shape")
	ErrRankMismatch = errors.New("tensor: rank mismatch")
	ErrElementType  = errors.New("tensor: element type not allowed")
	ErrReshapeSize  = errors.New("tensor: reshape size mismatch")
)

// TypeContractError reports an input that is not a sequence (or not a shape)
// where one was required.
type TypeContractError struct {
	Op      string // Operation that rejected the input (e.g., "reshape")
	Message string
}

// Error implements the error interface.
func (e *TypeContractError) Error() string {
	return e.Message
}

// Unwrap returns ErrTypeContract.
func (e *TypeContractError) Unwrap() error {
	return ErrTypeContract
}

// RaggedShapeError reports the first element whose length differs from its
// siblings at the same depth.
//
// Got and Want are element counts. GotLeaf is set when a scalar was found
// where a sequence was expected; WantLeaf when a sequence was found where a
// scalar was expected.
type RaggedShapeError struct {
	Path     IndexPath
	Got      int
	Want     int
	GotLeaf  bool
	WantLeaf bool
}

// Error implements the error interface.
func (e *RaggedShapeError) Error() string {
	switch {
	case e.WantLeaf:
		return fmt.Sprintf("Element %s should be a scalar, but has %d elements", e.Path, e.Got)
	case e.GotLeaf:
		return fmt.Sprintf("Element %s should have %d elements, but is a scalar", e.Path, e.Want)
	default:
		return fmt.Sprintf("Element %s should have %d elements, but has %d elements", e.Path, e.Want, e.Got)
	}
}

// Unwrap returns ErrRaggedShape.
func (e *RaggedShapeError) Unwrap() error {
	return ErrRaggedShape
}

// RankMismatchError reports a tensor whose inferred rank differs from the
// rank required by a contract.
type RankMismatchError struct {
	Value Value
	Shape Shape
	Want  int
}

// Error implements the error interface.
func (e *RankMismatchError) Error() string {
	return fmt.Sprintf("The matrix is not %dD shaped: %s of %s", e.Want, Render(e.Value), e.Shape)
}

// Unwrap returns ErrRankMismatch.
func (e *RankMismatchError) Unwrap() error {
	return ErrRankMismatch
}

// ElementTypeError reports the first leaf whose kind is outside the allowed
// set.
type ElementTypeError struct {
	Path    IndexPath
	Value   Value
	Allowed KindSet
}

// Error implements the error interface.
func (e *ElementTypeError) Error() string {
	return fmt.Sprintf("Element %s is %s of type %s, but the matrix only allows %s",
		e.Path, Render(e.Value), e.Value.Kind(), e.Allowed)
}

// Unwrap returns ErrElementType.
func (e *ElementTypeError) Unwrap() error {
	return ErrElementType
}

// ReshapeSizeError reports a target shape whose element count differs from
// the source tensor's.
type ReshapeSizeError struct {
	Source Shape // Inferred shape of the source tensor
	Target Shape
	Size   int // Element count of the source tensor
}

// Error implements the error interface.
func (e *ReshapeSizeError) Error() string {
	product, ok := e.Target.CheckedNumElements()
	if !ok {
		return fmt.Sprintf("Target array shape %s cannot be reshaped into %s: extent product overflows int",
			e.Source, e.Target)
	}
	return fmt.Sprintf("Target array shape %s cannot be reshaped into %d", e.Source, product)
}

// Unwrap returns ErrReshapeSize.
func (e *ReshapeSizeError) Unwrap() error {
	return ErrReshapeSize
}
