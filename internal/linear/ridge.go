// Package linear fits linear models.
package linear

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

var (
	// ErrInvalidAlpha is returned for a negative regularization strength.
	ErrInvalidAlpha = errors.New("linear: alpha must be >= 0")

	// ErrSampleMismatch is returned when X and y have different row counts.
	ErrSampleMismatch = errors.New("linear: X and y have different numbers of samples")

	// ErrEmpty is returned when X has no samples or no features.
	ErrEmpty = errors.New("linear: empty input")

	// ErrNotFitted is returned by Predict before Fit.
	ErrNotFitted = errors.New("linear: model is not fitted")
)

// RidgeConfig controls Ridge.
type RidgeConfig struct {
	Alpha        float64 // L2 penalty; 0 is ordinary least squares.
	FitIntercept bool
}

// DefaultRidgeConfig returns Alpha 1 with an intercept.
func DefaultRidgeConfig() RidgeConfig {
	return RidgeConfig{Alpha: 1, FitIntercept: true}
}

// Ridge is L2-regularized least squares, solved in closed form:
//
//	(XᵀX + αI) w = Xᵀy
//
// With FitIntercept, X and y are centered first and the intercept is not
// penalized.
type Ridge struct {
	cfg       RidgeConfig
	coef      *mat.VecDense
	intercept float64
}

// NewRidge validates cfg and returns an unfitted model.
func NewRidge(cfg RidgeConfig) (*Ridge, error) {
	if cfg.Alpha < 0 {
		return nil, fmt.Errorf("%w, got %g", ErrInvalidAlpha, cfg.Alpha)
	}
	return &Ridge{cfg: cfg}, nil
}

// Fit learns weights from X [samples, features] and y [samples].
func (r *Ridge) Fit(x, y tensor.Value) error {
	if err := tensor.ValidateFitInputs(x, y); err != nil {
		return err
	}
	if x.Len() != y.Len() {
		return fmt.Errorf("%w: %d rows in X, %d in y", ErrSampleMismatch, x.Len(), y.Len())
	}
	a, err := design(x)
	if err != nil {
		return err
	}
	ys, err := tensor.Float64s(y)
	if err != nil {
		return err
	}

	rows, cols := a.Dims()
	b := mat.NewVecDense(rows, ys)

	means := make([]float64, cols)
	yMean := 0.0
	if r.cfg.FitIntercept {
		for j := range cols {
			col := mat.Col(nil, j, a)
			means[j] = stat.Mean(col, nil)
			for i := range rows {
				a.Set(i, j, col[i]-means[j])
			}
		}
		yMean = stat.Mean(ys, nil)
		for i := range rows {
			b.SetVec(i, ys[i]-yMean)
		}
	}

	var gram mat.Dense
	gram.Mul(a.T(), a)
	for j := range cols {
		gram.Set(j, j, gram.At(j, j)+r.cfg.Alpha)
	}
	var rhs mat.VecDense
	rhs.MulVec(a.T(), b)

	var w mat.VecDense
	if err := w.SolveVec(&gram, &rhs); err != nil {
		return fmt.Errorf("solve normal equations: %w", err)
	}

	r.coef = &w
	r.intercept = yMean - mat.Dot(&w, mat.NewVecDense(cols, means))
	return nil
}

// Predict returns X·w + intercept as a rank-1 tensor.
func (r *Ridge) Predict(x tensor.Value) (tensor.Value, error) {
	if r.coef == nil {
		return tensor.Value{}, ErrNotFitted
	}
	if err := tensor.ValidateMatrix2D(x); err != nil {
		return tensor.Value{}, err
	}
	a, err := design(x)
	if err != nil {
		return tensor.Value{}, err
	}
	if _, cols := a.Dims(); cols != r.coef.Len() {
		return tensor.Value{}, fmt.Errorf("X has %d features, model has %d", cols, r.coef.Len())
	}

	var out mat.VecDense
	out.MulVec(a, r.coef)
	preds := make([]float64, out.Len())
	for i := range preds {
		preds[i] = out.AtVec(i) + r.intercept
	}
	return tensor.Numbers(preds...), nil
}

// Coef returns the learned weights, one per feature.
func (r *Ridge) Coef() tensor.Value {
	if r.coef == nil {
		return tensor.Null()
	}
	return tensor.Numbers(mat.Col(nil, 0, r.coef)...)
}

// Intercept returns the learned bias, 0 without FitIntercept.
func (r *Ridge) Intercept() float64 {
	return r.intercept
}

// design converts a numeric rank-2 tensor into a dense matrix.
func design(x tensor.Value) (*mat.Dense, error) {
	rows, err := tensor.Float64Matrix(x)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	data := make([]float64, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), len(rows[0]), data), nil
}
