package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalimdor-ml/kalimdor/internal/parallel"
)

func TestValidateAll(t *testing.T) {
	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	batch := make([]Value, 50)
	for i := range batch {
		batch[i] = Matrix([][]float64{{1, 2}, {3, 4}})
	}
	require.NoError(t, ValidateAll(batch, ValidateMatrix2D, cfg))

	batch[31] = Numbers(1, 2)
	batch[17] = Matrix([][]float64{{1}, {2, 3}})

	err := ValidateAll(batch, ValidateMatrix2D, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRaggedShape, "index 17 fails before index 31")
}

func TestInferShapes(t *testing.T) {
	values := []Value{Numbers(1, 2, 3), Matrix([][]float64{{1}, {2}}), Num(1)}

	shapes, err := InferShapes(values, parallel.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []Shape{{3}, {2, 1}, {}}, shapes)

	_, err = InferShapes([]Value{Matrix([][]float64{{1}, {}})}, parallel.Sequential())
	var ragged *RaggedShapeError
	assert.True(t, errors.As(err, &ragged))
}

func TestConcurrentInference(t *testing.T) {
	v := Matrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	cfg := parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1}

	parallel.For(200, func(int) {
		shape, err := InferShape(v)
		if err != nil || !shape.Equal(Shape{2, 3}) {
			t.Errorf("InferShape() = %v, %v", shape, err)
		}
		if _, err := Reshape(v, Shape{3, 2}); err != nil {
			t.Errorf("Reshape() error = %v", err)
		}
	}, cfg)
}
