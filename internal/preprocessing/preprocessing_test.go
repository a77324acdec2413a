package preprocessing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// assertMatrixInDelta compares a rank-2 tensor with want element-wise.
func assertMatrixInDelta(t *testing.T, want [][]float64, got tensor.Value) {
	t.Helper()
	rows, err := tensor.Float64Matrix(got)
	require.NoError(t, err)
	require.Len(t, rows, len(want))
	for i := range want {
		assert.InDeltaSlice(t, want[i], rows[i], 1e-12, "row %d", i)
	}
}

func TestAddDummyFeature(t *testing.T) {
	x1 := tensor.Matrix([][]float64{{0, 1}, {1, 0}})
	x2 := tensor.Matrix([][]float64{{0, 1, 2}, {1, 0, 3}})

	tests := []struct {
		name  string
		x     tensor.Value
		value float64
		want  string
	}{
		{"X1 default", x1, 1, "[[1,0,1],[1,1,0]]"},
		{"X2 default", x2, 1, "[[1,0,1,2],[1,1,0,3]]"},
		{"X1 value 2", x1, 2, "[[2,0,1],[2,1,0]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDummyFeature(tt.x, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tensor.Render(got))
		})
	}
}

func TestAddDummyFeature_Invalid(t *testing.T) {
	_, err := AddDummyFeature(tensor.Boolean(true), 1)
	require.ErrorIs(t, err, tensor.ErrRankMismatch)
	assert.EqualError(t, err, "The matrix is not 2D shaped: true of []")

	_, err = AddDummyFeature(tensor.Num(1), 1)
	assert.EqualError(t, err, "The matrix is not 2D shaped: 1 of []")

	_, err = AddDummyFeature(tensor.Seq(tensor.Strings("a")), 1)
	assert.ErrorIs(t, err, tensor.ErrElementType)

	_, err = AddDummyFeature(tensor.Seq(), 1)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBinarizer(t *testing.T) {
	x := tensor.Matrix([][]float64{{1, -1, 2}, {2, 0, 0}, {0, 1, -1}})
	b := Binarizer{Threshold: 0}

	require.NoError(t, b.Fit(x))
	got, err := b.Transform(x)
	require.NoError(t, err)
	assert.Equal(t, "[[1,0,1],[1,0,0],[0,1,0]]", tensor.Render(got))

	got, err = Binarizer{Threshold: 1.5}.Transform(x)
	require.NoError(t, err)
	assert.Equal(t, "[[0,0,1],[1,0,0],[0,0,0]]", tensor.Render(got))
}

func TestBinarizer_Invalid(t *testing.T) {
	b := Binarizer{}

	err := b.Fit(tensor.Seq())
	assert.EqualError(t, err, "X cannot be empty")

	_, err = b.Transform(tensor.Seq())
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = b.Transform(tensor.Str("?"))
	assert.ErrorIs(t, err, tensor.ErrRankMismatch)

	_, err = b.Transform(tensor.Null())
	assert.ErrorIs(t, err, tensor.ErrRankMismatch)
}

func TestNormalize(t *testing.T) {
	x := tensor.Matrix([][]float64{{1, -1, 2}, {2, 0, 0}, {0, 1, -1}})

	tests := []struct {
		norm Norm
		want [][]float64
	}{
		{NormL2, [][]float64{
			{0.4082482904638631, -0.4082482904638631, 0.8164965809277261},
			{1, 0, 0},
			{0, 0.7071067811865475, -0.7071067811865475},
		}},
		{NormL1, [][]float64{{0.25, -0.25, 0.5}, {1, 0, 0}, {0, 0.5, -0.5}}},
		{NormMax, [][]float64{{0.5, -0.5, 1}, {1, 0, 0}, {0, 1, -1}}},
	}
	for _, tt := range tests {
		t.Run(string(tt.norm), func(t *testing.T) {
			got, err := Normalize(x, tt.norm)
			require.NoError(t, err)
			assertMatrixInDelta(t, tt.want, got)
		})
	}
}

func TestNormalize_ZeroRow(t *testing.T) {
	got, err := Normalize(tensor.Matrix([][]float64{{0, 0}, {3, 4}}), NormL2)
	require.NoError(t, err)
	assertMatrixInDelta(t, [][]float64{{0, 0}, {0.6, 0.8}}, got)
}

func TestNormalize_Invalid(t *testing.T) {
	x := tensor.Matrix([][]float64{{1}})

	_, err := Normalize(x, "test")
	require.ErrorIs(t, err, ErrUnknownNorm)
	assert.EqualError(t, err, "test is not a recognised normalization method")

	_, err = Normalize(tensor.Seq(), NormL1)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Normalize(tensor.Str("aisjd"), NormL1)
	assert.ErrorIs(t, err, tensor.ErrRankMismatch)
}

func TestMinMaxScaler(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		want   []float64
	}{
		{"unit range", 0, 1, []float64{0, 0.5, 1}},
		{"percent", 0, 100, []float64{0, 50, 100}},
		{"symmetric", -100, 100, []float64{-100, 0, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinMaxScaler(tt.lo, tt.hi)
			require.NoError(t, err)

			got, err := s.FitTransform(tensor.Numbers(4, 5, 6))
			require.NoError(t, err)
			xs, err := tensor.Float64s(got)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, xs, 1e-12)
		})
	}
}

func TestMinMaxScaler_FitMatrix(t *testing.T) {
	matrix := tensor.Matrix([][]float64{
		{7, 0.27, 0.36, 20.7, 0.045, 45, 170, 1.001, 3, 0.45, 8.8},
		{6.3, 0.3, 0.34, 1.6, 0.049, 14, 132, 0.994, 3.3, 0.49, 9.5},
		{8.1, 0.28, 0.4, 6.9, 0.05, 30, 97, 0.9951, 3.26, 0.44, 10.1},
		{7.2, 0.23, 0.32, 8.5, 0.058, 47, 186, 0.9956, 3.19, 0.4, 9.9},
		{7.2, 0.23, 0.32, 8.5, 0.058, 47, 186, 0.9956, 3.19, 0.4, 9.9},
	})

	s, err := NewMinMaxScaler(0, 1)
	require.NoError(t, err)
	require.NoError(t, s.Fit(matrix))

	data := tensor.Numbers(1, 2, 3)
	got, err := s.Transform(data)
	require.NoError(t, err)
	xs, err := tensor.Float64s(got)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.005135651088817423, 0.01051329621806706, 0.015890941347316695}, xs, 1e-9)

	back, err := s.InverseTransform(got)
	require.NoError(t, err)
	ys, err := tensor.Float64s(back)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, ys, 1e-9)
}

func TestMinMaxScaler_ConstantData(t *testing.T) {
	s, err := NewMinMaxScaler(0, 1)
	require.NoError(t, err)

	got, err := s.FitTransform(tensor.Numbers(3, 3))
	require.NoError(t, err)
	assert.Equal(t, "[0,0]", tensor.Render(got))
}

func TestMinMaxScaler_Invalid(t *testing.T) {
	_, err := NewMinMaxScaler(1, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	s, err := NewMinMaxScaler(0, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Fit(tensor.Num(1)), ErrEmpty)
	assert.ErrorIs(t, s.Fit(tensor.Seq()), ErrEmpty)
	assert.ErrorIs(t, s.Fit(tensor.Strings("?")), tensor.ErrElementType)
	assert.ErrorIs(t, s.Fit(tensor.Matrix([][]float64{{1, 2}, {3}})), tensor.ErrRaggedShape)

	_, err = s.Transform(tensor.Numbers(1))
	assert.ErrorIs(t, err, ErrNotFitted)

	_, err = s.FitTransform(tensor.Num(1))
	assert.EqualError(t, err, "The matrix is not 1D shaped: 1 of []")

	_, err = s.FitTransform(tensor.Seq())
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, s.Fit(tensor.Numbers(0, 1)))
	_, err = s.InverseTransform(tensor.Num(1))
	assert.EqualError(t, err, "The matrix is not 1D shaped: 1 of []")

	_, err = s.InverseTransform(tensor.Seq())
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestPolynomialFeatures(t *testing.T) {
	x := tensor.Matrix([][]float64{{0, 1}, {2, 3}, {4, 5}})

	tests := []struct {
		degree int
		want   string
	}{
		{1, "[[1,0,1],[1,2,3],[1,4,5]]"},
		{DefaultDegree, "[[1,0,1,0,0,1],[1,2,3,4,6,9],[1,4,5,16,20,25]]"},
		{3, "[[1,0,1,0,0,1,0,0,0,1],[1,2,3,4,6,9,8,12,18,27],[1,4,5,16,20,25,64,80,100,125]]"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("degree %d", tt.degree), func(t *testing.T) {
			p, err := NewPolynomialFeatures(tt.degree)
			require.NoError(t, err)
			assert.Equal(t, tt.degree, p.Degree())

			got, err := p.Transform(x)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tensor.Render(got))
		})
	}
}

func TestPolynomialFeatures_Invalid(t *testing.T) {
	_, err := NewPolynomialFeatures(0)
	assert.ErrorIs(t, err, ErrInvalidDegree)

	p, err := NewPolynomialFeatures(DefaultDegree)
	require.NoError(t, err)

	_, err = p.Transform(tensor.Null())
	assert.ErrorIs(t, err, tensor.ErrRankMismatch)

	_, err = p.Transform(tensor.Seq())
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = p.Transform(tensor.Num(1))
	assert.EqualError(t, err, "The matrix is not 2D shaped: 1 of []")

	_, err = p.Transform(tensor.Seq(tensor.Seq(tensor.Num(1), tensor.Boolean(true))))
	assert.ErrorIs(t, err, tensor.ErrElementType)
}

func TestCombinations(t *testing.T) {
	assert.Equal(t, [][]int{{}, {0}, {1}, {0, 0}, {0, 1}, {1, 1}}, combinations(2, 2))
	assert.Len(t, combinations(3, 3), 20)
}
