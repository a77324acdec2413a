// Copyright 2025 Kalimdor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linear fits linear models.
//
// Example usage:
//
//	r, err := linear.NewRidge(linear.DefaultRidgeConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := r.Fit(x, y); err != nil {
//	    log.Fatal(err)
//	}
//	pred, err := r.Predict(x)
package linear

import (
	"github.com/kalimdor-ml/kalimdor/internal/linear"
)

// RidgeConfig controls Ridge.
type RidgeConfig = linear.RidgeConfig

// Ridge is L2-regularized least squares.
type Ridge = linear.Ridge

// Errors returned alongside the tensor engine's validation errors.
var (
	ErrInvalidAlpha   = linear.ErrInvalidAlpha
	ErrSampleMismatch = linear.ErrSampleMismatch
	ErrEmpty          = linear.ErrEmpty
	ErrNotFitted      = linear.ErrNotFitted
)

// DefaultRidgeConfig returns Alpha 1 with an intercept.
func DefaultRidgeConfig() RidgeConfig {
	return linear.DefaultRidgeConfig()
}

// NewRidge validates cfg and returns an unfitted model.
func NewRidge(cfg RidgeConfig) (*Ridge, error) {
	return linear.NewRidge(cfg)
}
