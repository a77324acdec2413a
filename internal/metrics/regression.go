package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// Options configures the regression metrics.
type Options struct {
	// SampleWeight is an optional rank-1 tensor with one weight per sample.
	// The null Value means uniform weights.
	SampleWeight tensor.Value
}

// MeanAbsoluteError returns the mean absolute error of yPred against yTrue.
//
// Inputs are rank 1 ([samples]) or rank 2 ([samples, outputs]) with equal
// shapes. Rank-2 errors are averaged uniformly over outputs.
//
// Example:
//
//	MeanAbsoluteError(tensor.Numbers(3, -0.5, 2, 7), tensor.Numbers(2.5, 0, 2, 8), Options{}) // 0.5
func MeanAbsoluteError(yTrue, yPred tensor.Value, opts Options) (float64, error) {
	return regressionLoss(yTrue, yPred, opts, math.Abs)
}

// MeanSquaredError returns the mean squared error of yPred against yTrue.
// Shapes and weights follow MeanAbsoluteError.
func MeanSquaredError(yTrue, yPred tensor.Value, opts Options) (float64, error) {
	return regressionLoss(yTrue, yPred, opts, func(d float64) float64 { return d * d })
}

func regressionLoss(yTrue, yPred tensor.Value, opts Options, loss func(float64) float64) (float64, error) {
	truth, err := samples(yTrue)
	if err != nil {
		return 0, fmt.Errorf("yTrue: %w", err)
	}
	pred, err := samples(yPred)
	if err != nil {
		return 0, fmt.Errorf("yPred: %w", err)
	}
	if err := sameShape(yTrue, yPred); err != nil {
		return 0, err
	}
	if len(truth) == 0 {
		return 0, ErrEmpty
	}

	weights, err := sampleWeights(opts.SampleWeight, len(truth))
	if err != nil {
		return 0, err
	}

	perSample := make([]float64, len(truth))
	for i := range truth {
		diff := make([]float64, len(truth[i]))
		floats.SubTo(diff, truth[i], pred[i])
		for j, d := range diff {
			diff[j] = loss(d)
		}
		perSample[i] = stat.Mean(diff, nil)
	}
	return stat.Mean(perSample, weights), nil
}

// samples returns v as rows of outputs: rank-1 input yields one output per row.
func samples(v tensor.Value) ([][]float64, error) {
	if err := tensor.ValidateMatrix1D(v); err == nil {
		xs, err := tensor.Float64s(v)
		if err != nil {
			return nil, err
		}
		rows := make([][]float64, len(xs))
		for i, x := range xs {
			rows[i] = []float64{x}
		}
		return rows, nil
	}
	return tensor.Float64Matrix(v)
}

func sameShape(a, b tensor.Value) error {
	sa, err := tensor.InferShape(a)
	if err != nil {
		return err
	}
	sb, err := tensor.InferShape(b)
	if err != nil {
		return err
	}
	if !sa.Equal(sb) {
		return fmt.Errorf("%w: yTrue %s and yPred %s", ErrShapeMismatch, sa, sb)
	}
	return nil
}

// sampleWeights returns nil for uniform weights.
func sampleWeights(w tensor.Value, n int) ([]float64, error) {
	if w.IsNull() {
		return nil, nil
	}
	weights, err := tensor.Float64s(w)
	if err != nil {
		return nil, fmt.Errorf("sample weight: %w", err)
	}
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d sample weights for %d samples", ErrShapeMismatch, len(weights), n)
	}
	return weights, nil
}
