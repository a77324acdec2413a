package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// dense validates X as a non-empty numeric matrix.
func dense(x tensor.Value) (*mat.Dense, error) {
	if x.IsSequence() && x.Len() == 0 {
		return nil, ErrEmpty
	}
	rows, err := tensor.Float64Matrix(x)
	if err != nil {
		return nil, err
	}

	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrEmpty
	}
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// toValue converts m back into a rank-2 tensor.
func toValue(m mat.Matrix) tensor.Value {
	r, _ := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}
	return tensor.Matrix(rows)
}
