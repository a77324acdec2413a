package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalimdor-ml/kalimdor/internal/datasets"
	"github.com/kalimdor-ml/kalimdor/internal/metrics"
	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

func TestRidge_ExactFit(t *testing.T) {
	// y = 1 + 2*x1 + 3*x2
	x := tensor.Matrix([][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}})
	y := tensor.Numbers(1, 3, 4, 6, 8)

	r, err := NewRidge(RidgeConfig{Alpha: 0, FitIntercept: true})
	require.NoError(t, err)
	require.NoError(t, r.Fit(x, y))

	coef, err := tensor.Float64s(r.Coef())
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3}, coef, 1e-9)
	assert.InDelta(t, 1, r.Intercept(), 1e-9)

	pred, err := r.Predict(tensor.Matrix([][]float64{{3, 3}}))
	require.NoError(t, err)
	got, err := tensor.Float64s(pred)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{16}, got, 1e-9)
}

func TestRidge_Shrinkage(t *testing.T) {
	x := tensor.Matrix([][]float64{{1}, {2}})
	y := tensor.Numbers(1, 2)

	r, err := NewRidge(RidgeConfig{Alpha: 1})
	require.NoError(t, err)
	require.NoError(t, r.Fit(x, y))

	// w = Σxy / (Σx² + α) = 5 / 6
	coef, err := tensor.Float64s(r.Coef())
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5.0 / 6.0}, coef, 1e-12)
	assert.Zero(t, r.Intercept())
}

func TestRidge_Iris(t *testing.T) {
	iris, err := datasets.Iris()
	require.NoError(t, err)

	r, err := NewRidge(DefaultRidgeConfig())
	require.NoError(t, err)
	require.NoError(t, r.Fit(iris.Data, iris.Targets))

	pred, err := r.Predict(iris.Data)
	require.NoError(t, err)

	mse, err := metrics.MeanSquaredError(iris.Targets, pred, metrics.Options{})
	require.NoError(t, err)
	assert.Less(t, mse, 0.1)
}

func TestRidge_Invalid(t *testing.T) {
	_, err := NewRidge(RidgeConfig{Alpha: -1})
	assert.ErrorIs(t, err, ErrInvalidAlpha)

	r, err := NewRidge(DefaultRidgeConfig())
	require.NoError(t, err)

	_, err = r.Predict(tensor.Matrix([][]float64{{1}}))
	assert.ErrorIs(t, err, ErrNotFitted)
	assert.True(t, r.Coef().IsNull())

	tests := []struct {
		name    string
		x, y    tensor.Value
		wantErr error
	}{
		{"y rank 2", tensor.Matrix([][]float64{{1}}), tensor.Matrix([][]float64{{1}}), tensor.ErrRankMismatch},
		{"X rank 1", tensor.Numbers(1, 2), tensor.Numbers(1, 2), tensor.ErrRankMismatch},
		{"ragged X", tensor.Matrix([][]float64{{1, 2}, {3}}), tensor.Numbers(1, 2), tensor.ErrRaggedShape},
		{"row mismatch", tensor.Matrix([][]float64{{1}, {2}}), tensor.Numbers(1), ErrSampleMismatch},
		{"string X", tensor.Seq(tensor.Strings("a")), tensor.Numbers(1), tensor.ErrElementType},
		{"string y", tensor.Matrix([][]float64{{1}}), tensor.Strings("a"), tensor.ErrElementType},
		{"no features", tensor.Seq(tensor.Numbers()), tensor.Numbers(1), ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, r.Fit(tt.x, tt.y), tt.wantErr)
		})
	}

	require.NoError(t, r.Fit(tensor.Matrix([][]float64{{1}, {2}}), tensor.Numbers(1, 2)))
	_, err = r.Predict(tensor.Matrix([][]float64{{1, 2}}))
	assert.Error(t, err)
}
