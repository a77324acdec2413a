package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// Binarizer maps values above Threshold to 1 and the rest to 0.
type Binarizer struct {
	Threshold float64
}

// Fit validates X. Binarizer is stateless.
func (b Binarizer) Fit(x tensor.Value) error {
	_, err := dense(x)
	return err
}

// Transform binarizes every element of X.
func (b Binarizer) Transform(x tensor.Value) (tensor.Value, error) {
	m, err := dense(x)
	if err != nil {
		return tensor.Value{}, err
	}

	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		if v > b.Threshold {
			return 1
		}
		return 0
	}, m)
	return toValue(&out), nil
}
