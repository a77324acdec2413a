// Copyright 2025 Kalimdor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package preprocessing transforms numeric feature matrices.
//
// Example usage:
//
//	x := tensor.Matrix([][]float64{{1, -1, 2}, {2, 0, 0}})
//	unit, err := preprocessing.Normalize(x, preprocessing.NormL2)
//	if err != nil {
//	    log.Fatal(err)
//	}
package preprocessing

import (
	"github.com/kalimdor-ml/kalimdor/internal/preprocessing"
	"github.com/kalimdor-ml/kalimdor/tensor"
)

// Binarizer maps values above Threshold to 1 and the rest to 0.
type Binarizer = preprocessing.Binarizer

// MinMaxScaler maps values linearly into a feature range.
type MinMaxScaler = preprocessing.MinMaxScaler

// PolynomialFeatures expands features into polynomial terms.
type PolynomialFeatures = preprocessing.PolynomialFeatures

// Norm names a row norm for Normalize.
type Norm = preprocessing.Norm

// Supported norms.
const (
	NormL1  = preprocessing.NormL1
	NormL2  = preprocessing.NormL2
	NormMax = preprocessing.NormMax
)

// DefaultDegree is the conventional quadratic expansion.
const DefaultDegree = preprocessing.DefaultDegree

// Errors returned alongside the tensor engine's validation errors.
var (
	ErrEmpty         = preprocessing.ErrEmpty
	ErrUnknownNorm   = preprocessing.ErrUnknownNorm
	ErrInvalidDegree = preprocessing.ErrInvalidDegree
	ErrInvalidRange  = preprocessing.ErrInvalidRange
	ErrNotFitted     = preprocessing.ErrNotFitted
)

// AddDummyFeature prepends a column filled with value to X.
func AddDummyFeature(x tensor.Value, value float64) (tensor.Value, error) {
	return preprocessing.AddDummyFeature(x, value)
}

// Normalize scales every row of X to unit norm.
func Normalize(x tensor.Value, norm Norm) (tensor.Value, error) {
	return preprocessing.Normalize(x, norm)
}

// NewMinMaxScaler returns a scaler targeting [lo, hi].
func NewMinMaxScaler(lo, hi float64) (*MinMaxScaler, error) {
	return preprocessing.NewMinMaxScaler(lo, hi)
}

// NewPolynomialFeatures returns an expander for the given degree.
func NewPolynomialFeatures(degree int) (*PolynomialFeatures, error) {
	return preprocessing.NewPolynomialFeatures(degree)
}
