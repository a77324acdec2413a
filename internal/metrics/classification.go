package metrics

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// AccuracyScore returns the fraction of labels in yPred equal to yTrue, or
// the number of matches when normalize is false.
//
// Labels are rank-1 tensors of numbers, strings or booleans.
func AccuracyScore(yTrue, yPred tensor.Value, normalize bool) (float64, error) {
	truth, pred, err := labelPairs(yTrue, yPred)
	if err != nil {
		return 0, err
	}

	matches := 0
	for i := range truth {
		if tensor.Equal(truth[i], pred[i]) {
			matches++
		}
	}
	if !normalize {
		return float64(matches), nil
	}
	return float64(matches) / float64(len(truth)), nil
}

// ZeroOneLoss returns the fraction of misclassified labels, or their count
// when normalize is false.
func ZeroOneLoss(yTrue, yPred tensor.Value, normalize bool) (float64, error) {
	truth, pred, err := labelPairs(yTrue, yPred)
	if err != nil {
		return 0, err
	}

	misses := 0
	for i := range truth {
		if !tensor.Equal(truth[i], pred[i]) {
			misses++
		}
	}
	if !normalize {
		return float64(misses), nil
	}
	return float64(misses) / float64(len(truth)), nil
}

// ConfusionMatrix counts label pairs. Entry [i][j] is the number of samples
// with true label labels[i] predicted as labels[j]. Labels are the sorted
// union of both inputs, which must share a single kind.
//
// Example:
//
//	m, labels, _ := ConfusionMatrix(
//	    tensor.Strings("cat", "ant", "cat", "cat", "ant", "bird"),
//	    tensor.Strings("ant", "ant", "cat", "cat", "ant", "cat"))
//	// labels: ["ant","bird","cat"]
//	// m:      [[2,0,0],[0,0,1],[1,0,2]]
func ConfusionMatrix(yTrue, yPred tensor.Value) (matrix, labels tensor.Value, err error) {
	truth, pred, err := labelPairs(yTrue, yPred)
	if err != nil {
		return tensor.Value{}, tensor.Value{}, err
	}

	kind := truth[0].Kind()
	allowed := tensor.Kinds(kind)
	if err := tensor.ValidateMatrixType(yTrue, allowed); err != nil {
		return tensor.Value{}, tensor.Value{}, fmt.Errorf("yTrue: %w", err)
	}
	if err := tensor.ValidateMatrixType(yPred, allowed); err != nil {
		return tensor.Value{}, tensor.Value{}, fmt.Errorf("yPred: %w", err)
	}

	uniq := sortedLabels(append(append([]tensor.Value{}, truth...), pred...))
	index := make(map[string]int, len(uniq))
	for i, l := range uniq {
		index[tensor.Render(l)] = i
	}

	counts := mat.NewDense(len(uniq), len(uniq), nil)
	for i := range truth {
		r, c := index[tensor.Render(truth[i])], index[tensor.Render(pred[i])]
		counts.Set(r, c, counts.At(r, c)+1)
	}

	rows := make([][]float64, len(uniq))
	for i := range rows {
		rows[i] = mat.Row(nil, i, counts)
	}
	return tensor.Matrix(rows), tensor.Seq(uniq...), nil
}

// labelPairs validates two rank-1 label tensors of equal non-zero length.
func labelPairs(yTrue, yPred tensor.Value) (truth, pred []tensor.Value, err error) {
	if err := tensor.ValidateMatrix1D(yTrue); err != nil {
		return nil, nil, fmt.Errorf("yTrue: %w", err)
	}
	if err := tensor.ValidateMatrix1D(yPred); err != nil {
		return nil, nil, fmt.Errorf("yPred: %w", err)
	}
	if err := tensor.ValidateMatrixType(yTrue, tensor.AllKinds); err != nil {
		return nil, nil, fmt.Errorf("yTrue: %w", err)
	}
	if err := tensor.ValidateMatrixType(yPred, tensor.AllKinds); err != nil {
		return nil, nil, fmt.Errorf("yPred: %w", err)
	}
	if yTrue.Len() != yPred.Len() {
		return nil, nil, fmt.Errorf("%w: %d true labels and %d predictions", ErrShapeMismatch, yTrue.Len(), yPred.Len())
	}
	if yTrue.Len() == 0 {
		return nil, nil, ErrEmpty
	}
	return yTrue.Items(), yPred.Items(), nil
}

// sortedLabels returns the distinct labels in ascending order. Inputs share
// one kind.
func sortedLabels(values []tensor.Value) []tensor.Value {
	seen := make(map[string]struct{}, len(values))
	var uniq []tensor.Value
	for _, v := range values {
		key := tensor.Render(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, v)
	}

	sort.Slice(uniq, func(i, j int) bool {
		a, b := uniq[i], uniq[j]
		if x, ok := a.Float(); ok {
			y, _ := b.Float()
			return x < y
		}
		if x, ok := a.Text(); ok {
			y, _ := b.Text()
			return x < y
		}
		x, _ := a.Truth()
		y, _ := b.Truth()
		return !x && y
	})
	return uniq
}
