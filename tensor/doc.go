// Copyright 2025 Kalimdor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the validation and reshape engine for kalimdor.
//
// # Overview
//
// Every algorithm in kalimdor (clustering, linear models, preprocessing,
// metrics) passes its inputs through this package before doing any numeric
// work. The package provides:
//   - Value: an immutable, arbitrarily nested tensor (leaf or sequence)
//   - InferShape: rank and per-axis extents, with exact ragged localization
//   - ValidateMatrix1D / ValidateMatrix2D / ValidateFitInputs: rank contracts
//   - ValidateMatrixType: element-type membership over a KindSet
//   - Flatten / Reshape: row-major regrouping between arbitrary ranks
//
// # Basic Usage
//
//	x, err := tensor.FromAny([][]float64{{1, 2}, {3, 4}})
//	if err != nil {
//	    return err
//	}
//	shape, err := tensor.InferShape(x)      // [2,2]
//	col, err := tensor.Reshape(x, tensor.Shape{4, 1})
//
// # Shapes
//
// Shapes are derived, never stored. A leaf has shape [], an empty sequence
// [0]. Every level must be uniform: either all leaves, or all sequences of
// one length. A ragged value is reported at its first offending element in
// depth-first, left-to-right order:
//
//	[[2,3],[1,2],[4]]  ->  Element arr[2] should have 2 elements, but has 1 elements
//
// # Errors
//
// Errors come in five kinds, each matched with errors.Is:
//   - ErrTypeContract: a sequence (or shape) was required but not given
//   - ErrRaggedShape: sibling lengths differ (*RaggedShapeError)
//   - ErrRankMismatch: rank differs from the contract (*RankMismatchError)
//   - ErrElementType: a leaf kind is not allowed (*ElementTypeError)
//   - ErrReshapeSize: element counts differ (*ReshapeSizeError)
//
// The first violation found is returned; errors are never collected.
// Messages embed a compact rendering of the offending value and shape.
//
// # Concurrency
//
// All functions are pure and stateless. They may be called from any number
// of goroutines; ValidateAll fans a batch out across workers.
package tensor
