package preprocessing

import "errors"

var (
	// ErrEmpty is returned when X has no samples.
	ErrEmpty = errors.New("X cannot be empty")

	// ErrUnknownNorm is returned by Normalize for an unsupported norm.
	ErrUnknownNorm = errors.New("not a recognised normalization method")

	// ErrInvalidDegree is returned for a polynomial degree below 1.
	ErrInvalidDegree = errors.New("degree must be >= 1")

	// ErrInvalidRange is returned when a feature range has min >= max.
	ErrInvalidRange = errors.New("feature range minimum must be smaller than maximum")

	// ErrNotFitted is returned when a scaler is used before Fit.
	ErrNotFitted = errors.New("scaler is not fitted")
)
