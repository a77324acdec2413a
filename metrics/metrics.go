// Copyright 2025 Kalimdor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metrics scores predictions against ground truth.
//
// Example usage:
//
//	mae, err := metrics.MeanAbsoluteError(
//	    tensor.Numbers(3, -0.5, 2, 7),
//	    tensor.Numbers(2.5, 0, 2, 8),
//	    metrics.Options{},
//	) // 0.5
package metrics

import (
	"github.com/kalimdor-ml/kalimdor/internal/metrics"
	"github.com/kalimdor-ml/kalimdor/tensor"
)

// Options configures the regression metrics.
type Options = metrics.Options

// Errors returned alongside the tensor engine's validation errors.
var (
	ErrShapeMismatch = metrics.ErrShapeMismatch
	ErrEmpty         = metrics.ErrEmpty
)

// MeanAbsoluteError returns the (optionally weighted) mean absolute error.
func MeanAbsoluteError(yTrue, yPred tensor.Value, opts Options) (float64, error) {
	return metrics.MeanAbsoluteError(yTrue, yPred, opts)
}

// MeanSquaredError returns the (optionally weighted) mean squared error.
func MeanSquaredError(yTrue, yPred tensor.Value, opts Options) (float64, error) {
	return metrics.MeanSquaredError(yTrue, yPred, opts)
}

// AccuracyScore returns the fraction (or count) of matching labels.
func AccuracyScore(yTrue, yPred tensor.Value, normalize bool) (float64, error) {
	return metrics.AccuracyScore(yTrue, yPred, normalize)
}

// ZeroOneLoss returns the fraction (or count) of mismatched labels.
func ZeroOneLoss(yTrue, yPred tensor.Value, normalize bool) (float64, error) {
	return metrics.ZeroOneLoss(yTrue, yPred, normalize)
}

// ConfusionMatrix counts (true, predicted) label pairs over the sorted labels.
func ConfusionMatrix(yTrue, yPred tensor.Value) (matrix, labels tensor.Value, err error) {
	return metrics.ConfusionMatrix(yTrue, yPred)
}
