// Copyright 2025 Kalimdor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/kalimdor-ml/kalimdor/tensor"
)

// TestPublicAPI exercises the engine through the public aliases.
func TestPublicAPI(t *testing.T) {
	x, err := tensor.FromAny([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if err != nil {
		t.Fatalf("FromAny failed: %v", err)
	}

	shape, err := tensor.InferShape(x)
	if err != nil {
		t.Fatalf("InferShape failed: %v", err)
	}
	if !shape.Equal(tensor.Shape{3, 2}) {
		t.Errorf("InferShape() = %v, want [3,2]", shape)
	}

	if err := tensor.ValidateFitInputs(x, tensor.Numbers(1, 2, 3)); err != nil {
		t.Errorf("ValidateFitInputs() error = %v", err)
	}

	err = tensor.ValidateFitInputs(x, x)
	var rank *tensor.RankMismatchError
	if !errors.As(err, &rank) {
		t.Fatalf("expected RankMismatchError, got %T", err)
	}
	if rank.Want != 1 {
		t.Errorf("Want = %d, want 1", rank.Want)
	}
}

// TestPublicReshape verifies the reshape arithmetic examples.
func TestPublicReshape(t *testing.T) {
	got, err := tensor.Reshape(tensor.Numbers(1, 2, 3, 4, 5, 6), tensor.Shape{2, 3, 1})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if want := "[[[1],[2],[3]],[[4],[5],[6]]]"; tensor.Render(got) != want {
		t.Errorf("Reshape() = %s, want %s", tensor.Render(got), want)
	}

	_, err = tensor.Reshape(tensor.Seq(), tensor.Shape{1})
	if !errors.Is(err, tensor.ErrReshapeSize) {
		t.Errorf("expected ErrReshapeSize, got %v", err)
	}
}

// TestPublicMatrixType verifies multi-kind allowances.
func TestPublicMatrixType(t *testing.T) {
	v, err := tensor.FromAny([]any{[]any{[]any{"1", 1}}, []any{[]any{"3", true}}})
	if err != nil {
		t.Fatalf("FromAny failed: %v", err)
	}

	if err := tensor.ValidateMatrixType(v, tensor.Kinds(tensor.String, tensor.Number, tensor.Bool)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := tensor.ValidateMatrixType(v, tensor.Kinds(tensor.String, tensor.Number)); !errors.Is(err, tensor.ErrElementType) {
		t.Errorf("expected ErrElementType, got %v", err)
	}
}

// TestPublicValidateAll checks the batch helper.
func TestPublicValidateAll(t *testing.T) {
	batch := []tensor.Value{tensor.Numbers(1), tensor.Numbers(2, 3)}
	if err := tensor.ValidateAll(batch, tensor.ValidateMatrix1D, tensor.DefaultParallelConfig()); err != nil {
		t.Errorf("ValidateAll() error = %v", err)
	}
}
