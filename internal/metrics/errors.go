package metrics

import "errors"

var (
	// ErrShapeMismatch is returned when yTrue, yPred or weights disagree in shape.
	ErrShapeMismatch = errors.New("metrics: shape mismatch")

	// ErrEmpty is returned for inputs without samples.
	ErrEmpty = errors.New("metrics: empty input")
)
