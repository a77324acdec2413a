// Copyright 2025 Kalimdor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/kalimdor-ml/kalimdor/internal/parallel"
	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// Value is an immutable nested tensor value.
type Value = tensor.Value

// Shape represents the per-axis extents of a tensor, outermost first.
// Example: Shape{2, 3} is a 2×3 matrix; Shape{0} an empty sequence.
type Shape = tensor.Shape

// IndexPath locates an element through nested levels; used in errors.
type IndexPath = tensor.IndexPath

// Kind is the runtime type tag of a leaf value.
type Kind = tensor.Kind

// KindSet is a set of accepted leaf kinds.
type KindSet = tensor.KindSet

// Leaf kinds.
const (
	Invalid Kind = tensor.Invalid
	Number  Kind = tensor.Number
	String  Kind = tensor.String
	Bool    Kind = tensor.Bool
)

// AllKinds accepts numbers, strings and booleans.
const AllKinds = tensor.AllKinds

// Error kinds, matched with errors.Is.
var (
	ErrTypeContract = tensor.ErrTypeContract
	ErrRaggedShape  = tensor.ErrRaggedShape
	ErrRankMismatch = tensor.ErrRankMismatch
	ErrElementType  = tensor.ErrElementType
	ErrReshapeSize  = tensor.ErrReshapeSize
)

// Detailed error types, extracted with errors.As.
type (
	TypeContractError = tensor.TypeContractError
	RaggedShapeError  = tensor.RaggedShapeError
	RankMismatchError = tensor.RankMismatchError
	ElementTypeError  = tensor.ElementTypeError
	ReshapeSizeError  = tensor.ReshapeSizeError
)

// ParallelConfig controls batch helpers such as ValidateAll.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Null returns the null leaf.
func Null() Value { return tensor.Null() }

// Num returns a number leaf.
func Num(f float64) Value { return tensor.Num(f) }

// Str returns a string leaf.
func Str(s string) Value { return tensor.Str(s) }

// Boolean returns a boolean leaf.
func Boolean(b bool) Value { return tensor.Boolean(b) }

// Seq returns a sequence of values.
func Seq(items ...Value) Value { return tensor.Seq(items...) }

// Numbers returns a rank-1 sequence of numbers.
func Numbers(xs ...float64) Value { return tensor.Numbers(xs...) }

// Strings returns a rank-1 sequence of strings.
func Strings(xs ...string) Value { return tensor.Strings(xs...) }

// Matrix returns a rank-2 sequence of numbers.
func Matrix(rows [][]float64) Value { return tensor.Matrix(rows) }

// Kinds builds a KindSet.
func Kinds(kinds ...Kind) KindSet { return tensor.Kinds(kinds...) }

// ParseKinds builds a KindSet from names such as "number" or "boolean".
func ParseKinds(names []string) (KindSet, error) { return tensor.ParseKinds(names) }

// ParseShape parses "2,3" or "[2,3]".
func ParseShape(text string) (Shape, error) { return tensor.ParseShape(text) }

// FromAny converts nested Go slices and scalars into a Value.
func FromAny(x any) (Value, error) { return tensor.FromAny(x) }

// ToAny converts a Value into nested []any, float64, string, bool and nil.
func ToAny(v Value) any { return tensor.ToAny(v) }

// Render serializes a Value in compact bracketed notation.
func Render(v Value) string { return tensor.Render(v) }

// Equal reports deep equality of two values.
func Equal(a, b Value) bool { return tensor.Equal(a, b) }

// InferShape computes the shape of v or reports the first ragged element.
func InferShape(v Value) (Shape, error) { return tensor.InferShape(v) }

// Size returns the number of leaves of a non-ragged value.
func Size(v Value) (int, error) { return tensor.Size(v) }

// ValidateMatrix1D fails unless v has rank 1.
func ValidateMatrix1D(v Value) error { return tensor.ValidateMatrix1D(v) }

// ValidateMatrix2D fails unless v has rank 2.
func ValidateMatrix2D(v Value) error { return tensor.ValidateMatrix2D(v) }

// ValidateRank fails unless v has the given rank.
func ValidateRank(v Value, rank int) error { return tensor.ValidateRank(v, rank) }

// ValidateMatrixType fails at the first leaf whose kind is not allowed.
func ValidateMatrixType(v Value, allowed KindSet) error {
	return tensor.ValidateMatrixType(v, allowed)
}

// ValidateFitInputs fails unless x is rank 2 and y is rank 1.
func ValidateFitInputs(x, y Value) error { return tensor.ValidateFitInputs(x, y) }

// ValidateAll runs check over values concurrently; lowest failing index wins.
func ValidateAll(values []Value, check func(Value) error, cfg ParallelConfig) error {
	return tensor.ValidateAll(values, check, cfg)
}

// Flatten returns the leaves of v in row-major order.
func Flatten(v Value) ([]Value, error) { return tensor.Flatten(v) }

// Reshape regroups the leaves of v into target in row-major order.
func Reshape(v Value, target Shape) (Value, error) { return tensor.Reshape(v, target) }

// Float64s returns the numbers of a rank-1 numeric tensor.
func Float64s(v Value) ([]float64, error) { return tensor.Float64s(v) }

// Float64Matrix returns the rows of a rank-2 numeric tensor.
func Float64Matrix(v Value) ([][]float64, error) { return tensor.Float64Matrix(v) }
