// Copyright 2025 Kalimdor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package datasets provides small built-in datasets as tensor values.
//
// Example usage:
//
//	iris, err := datasets.Iris()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	shape, _ := tensor.InferShape(iris.Data) // [150,4]
package datasets

import (
	"github.com/kalimdor-ml/kalimdor/internal/datasets"
)

// Dataset is a labelled feature matrix.
type Dataset = datasets.Dataset

// Iris loads Fisher's Iris flower dataset (150 samples, 4 features, 3 classes).
func Iris() (*Dataset, error) {
	return datasets.Iris()
}
