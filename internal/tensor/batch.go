package tensor

import (
	"github.com/kalimdor-ml/kalimdor/internal/parallel"
)

// ValidateAll runs check on every value, fanning out across goroutines
// according to cfg. Each check sees only its own value, so no coordination
// is needed. The error of the lowest failing index is returned.
//
// Example:
//
//	err := tensor.ValidateAll(batch, tensor.ValidateMatrix2D, parallel.DefaultConfig())
func ValidateAll(values []Value, check func(Value) error, cfg parallel.Config) error {
	return parallel.ForErr(len(values), func(i int) error {
		return check(values[i])
	}, cfg)
}

// InferShapes infers the shape of every value concurrently.
func InferShapes(values []Value, cfg parallel.Config) ([]Shape, error) {
	shapes := make([]Shape, len(values))
	err := parallel.ForErr(len(values), func(i int) error {
		shape, err := InferShape(values[i])
		shapes[i] = shape
		return err
	}, cfg)
	if err != nil {
		return nil, err
	}
	return shapes, nil
}
