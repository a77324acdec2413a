package loader

import (
	"errors"
	"fmt"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// ErrUnknownColumn is returned when a requested target column does not exist.
var ErrUnknownColumn = errors.New("loader: unknown column")

// Table is a rectangular set of records with optional column names.
type Table struct {
	Columns []string
	Values  tensor.Value // One sequence per record
	rows    [][]tensor.Value
}

// Dataset is a table split into a feature matrix and a target vector,
// ready for ValidateFitInputs.
type Dataset struct {
	X        tensor.Value // [samples, features]
	Y        tensor.Value // [samples]; null when no target was requested
	Features []string
	Target   string
}

func newTable(columns []string, rows [][]tensor.Value) *Table {
	records := make([]tensor.Value, len(rows))
	for i, row := range rows {
		records[i] = tensor.Seq(row...)
	}
	return &Table{Columns: columns, Values: tensor.Seq(records...), rows: rows}
}

// Split separates the named target column from the features. An empty
// target keeps every column as a feature and leaves Y null.
func (t *Table) Split(target string) (*Dataset, error) {
	if target == "" {
		return &Dataset{X: t.Values, Features: t.Columns}, nil
	}

	col := -1
	for i, name := range t.Columns {
		if name == target {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, target)
	}

	features := make([]string, 0, len(t.Columns)-1)
	features = append(features, t.Columns[:col]...)
	features = append(features, t.Columns[col+1:]...)

	xs := make([]tensor.Value, len(t.rows))
	ys := make([]tensor.Value, len(t.rows))
	for i, row := range t.rows {
		if col >= len(row) {
			return nil, fmt.Errorf("record %d has %d fields, target column is %d", i, len(row), col)
		}
		rest := make([]tensor.Value, 0, len(row)-1)
		rest = append(rest, row[:col]...)
		rest = append(rest, row[col+1:]...)
		xs[i] = tensor.Seq(rest...)
		ys[i] = row[col]
	}

	return &Dataset{
		X:        tensor.Seq(xs...),
		Y:        tensor.Seq(ys...),
		Features: features,
		Target:   target,
	}, nil
}
