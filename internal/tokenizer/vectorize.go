package tokenizer

import (
	"errors"
	"fmt"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// ErrInvalidWidth is returned for a negative Vectorize width.
var ErrInvalidWidth = errors.New("tokenizer: width must be >= 0")

// Vectorize encodes every string of a rank-1 tensor and returns a rank-2
// number tensor of shape [len(docs), width]. Rows shorter than width are
// filled with pad; longer rows are truncated. A width of 0 uses the longest
// encoded row.
func Vectorize(enc Encoder, docs tensor.Value, width int, pad int32) (tensor.Value, error) {
	if width < 0 {
		return tensor.Value{}, fmt.Errorf("%w, got %d", ErrInvalidWidth, width)
	}

	texts, err := texts(docs)
	if err != nil {
		return tensor.Value{}, err
	}

	encoded := make([][]int32, len(texts))
	longest := 0
	for i, text := range texts {
		ids, err := enc.Encode(text)
		if err != nil {
			return tensor.Value{}, fmt.Errorf("encode element %d with %s: %w", i, enc.Name(), err)
		}
		encoded[i] = ids
		longest = max(longest, len(ids))
	}
	if width == 0 {
		width = longest
	}

	rows := make([][]float64, len(encoded))
	for i, ids := range encoded {
		row := make([]float64, width)
		for j := range row {
			if j < len(ids) {
				row[j] = float64(ids[j])
			} else {
				row[j] = float64(pad)
			}
		}
		rows[i] = row
	}
	return tensor.Matrix(rows), nil
}

// texts unwraps a rank-1 string tensor.
func texts(docs tensor.Value) ([]string, error) {
	if err := tensor.ValidateMatrix1D(docs); err != nil {
		return nil, err
	}
	if err := tensor.ValidateMatrixType(docs, tensor.Kinds(tensor.String)); err != nil {
		return nil, err
	}

	out := make([]string, docs.Len())
	for i := range out {
		out[i], _ = docs.At(i).Text()
	}
	return out, nil
}
