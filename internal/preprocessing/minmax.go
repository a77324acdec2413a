package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// MinMaxScaler maps values linearly from the fitted [min, max] into a
// feature range. The fitted bounds are global over every element of X.
type MinMaxScaler struct {
	rangeMin, rangeMax float64
	dataMin, dataMax   float64
	fitted             bool
}

// NewMinMaxScaler returns a scaler targeting [lo, hi].
func NewMinMaxScaler(lo, hi float64) (*MinMaxScaler, error) {
	if lo >= hi {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
	}
	return &MinMaxScaler{rangeMin: lo, rangeMax: hi}, nil
}

// Fit records the minimum and maximum of X, a numeric tensor of any rank >= 1.
func (s *MinMaxScaler) Fit(x tensor.Value) error {
	if !x.IsSequence() || x.Len() == 0 {
		return fmt.Errorf("cannot fit: %w", ErrEmpty)
	}
	if _, err := tensor.InferShape(x); err != nil {
		return err
	}
	if err := tensor.ValidateMatrixType(x, tensor.Kinds(tensor.Number)); err != nil {
		return err
	}

	leaves, err := tensor.Flatten(x)
	if err != nil {
		return err
	}
	if len(leaves) == 0 {
		return fmt.Errorf("cannot fit: %w", ErrEmpty)
	}
	xs := make([]float64, len(leaves))
	for i, leaf := range leaves {
		xs[i], _ = leaf.Float()
	}

	s.dataMin, s.dataMax = floats.Min(xs), floats.Max(xs)
	s.fitted = true
	return nil
}

// Transform scales a rank-1 numeric tensor with the fitted bounds.
func (s *MinMaxScaler) Transform(x tensor.Value) (tensor.Value, error) {
	xs, err := s.vector(x)
	if err != nil {
		return tensor.Value{}, err
	}

	scale := (s.rangeMax - s.rangeMin) / s.span()
	for i, v := range xs {
		xs[i] = (v-s.dataMin)*scale + s.rangeMin
	}
	return tensor.Numbers(xs...), nil
}

// FitTransform fits on x, then transforms it.
func (s *MinMaxScaler) FitTransform(x tensor.Value) (tensor.Value, error) {
	if err := tensor.ValidateMatrix1D(x); err != nil {
		return tensor.Value{}, err
	}
	if err := s.Fit(x); err != nil {
		return tensor.Value{}, err
	}
	return s.Transform(x)
}

// InverseTransform undoes Transform.
func (s *MinMaxScaler) InverseTransform(x tensor.Value) (tensor.Value, error) {
	xs, err := s.vector(x)
	if err != nil {
		return tensor.Value{}, err
	}

	scale := s.span() / (s.rangeMax - s.rangeMin)
	for i, v := range xs {
		xs[i] = (v-s.rangeMin)*scale + s.dataMin
	}
	return tensor.Numbers(xs...), nil
}

// vector validates a non-empty rank-1 numeric input on a fitted scaler.
func (s *MinMaxScaler) vector(x tensor.Value) ([]float64, error) {
	xs, err := tensor.Float64s(x)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, ErrEmpty
	}
	if !s.fitted {
		return nil, ErrNotFitted
	}
	return xs, nil
}

// span is the fitted data range; constant data maps onto rangeMin.
func (s *MinMaxScaler) span() float64 {
	if d := s.dataMax - s.dataMin; d != 0 {
		return d
	}
	return 1
}
