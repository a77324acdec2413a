package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// Norm names a row norm.
type Norm string

// Supported norms.
const (
	NormL1  Norm = "l1"
	NormL2  Norm = "l2"
	NormMax Norm = "max"
)

// Normalize scales every row of X to unit norm. Rows whose norm is zero are
// left unchanged.
func Normalize(x tensor.Value, norm Norm) (tensor.Value, error) {
	var l float64
	switch norm {
	case NormL1:
		l = 1
	case NormL2:
		l = 2
	case NormMax:
		l = math.Inf(1)
	default:
		return tensor.Value{}, fmt.Errorf("%s is %w", norm, ErrUnknownNorm)
	}

	m, err := dense(x)
	if err != nil {
		return tensor.Value{}, err
	}

	r, _ := m.Dims()
	for i := range r {
		row := m.RawRowView(i)
		if n := floats.Norm(row, l); n != 0 {
			floats.Scale(1/n, row)
		}
	}
	return toValue(m), nil
}
