package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// AddDummyFeature prepends a column filled with value to X.
//
// Example:
//
//	AddDummyFeature([[0,1],[1,0]], 1) // [[1,0,1],[1,1,0]]
func AddDummyFeature(x tensor.Value, value float64) (tensor.Value, error) {
	m, err := dense(x)
	if err != nil {
		return tensor.Value{}, err
	}

	r, c := m.Dims()
	out := mat.NewDense(r, c+1, nil)
	for i := range r {
		out.Set(i, 0, value)
	}
	out.Slice(0, r, 1, c+1).(*mat.Dense).Copy(m)
	return toValue(out), nil
}
