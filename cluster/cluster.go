// Copyright 2025 Kalimdor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cluster groups samples with k-means.
//
// Example usage:
//
//	km, err := cluster.New(cluster.DefaultConfig(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := km.Fit(x) // x: rank-2 numeric tensor
package cluster

import (
	"github.com/kalimdor-ml/kalimdor/internal/cluster"
)

// Config controls k-means.
type Config = cluster.Config

// Result is the outcome of KMeans.Fit.
type Result = cluster.Result

// KMeans clusters samples by Lloyd's algorithm.
type KMeans = cluster.KMeans

// Errors returned alongside the tensor engine's validation errors.
var (
	ErrInvalidConfig = cluster.ErrInvalidConfig
	ErrTooFewSamples = cluster.ErrTooFewSamples
	ErrNotFitted     = cluster.ErrNotFitted
)

// DefaultConfig returns a Config for k clusters.
func DefaultConfig(k int) Config {
	return cluster.DefaultConfig(k)
}

// New validates cfg and returns an unfitted model.
func New(cfg Config) (*KMeans, error) {
	return cluster.New(cfg)
}
