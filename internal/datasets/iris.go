// Package datasets provides small built-in datasets as tensor values.
package datasets

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/kalimdor-ml/kalimdor/internal/loader"
	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

//go:embed iris.csv
var irisCSV []byte

// Dataset is a labelled feature matrix.
type Dataset struct {
	Data         tensor.Value // [samples, features], numbers
	Targets      tensor.Value // [samples], class indices
	TargetNames  []string     // Class index -> label
	FeatureNames []string
	Description  string
}

const irisDescription = `Iris Plants Database (R.A. Fisher, 1936).
150 samples, 50 per class, 4 numeric attributes in cm:
sepal length, sepal width, petal length, petal width.
Classes: Iris Setosa, Iris Versicolour, Iris Virginica.`

// Iris loads Fisher's Iris flower dataset: 150 samples of 4 features and
// 3 classes ("setosa", "versicolor", "virginica").
func Iris() (*Dataset, error) {
	ds, err := loader.ReadCSV(bytes.NewReader(irisCSV), loader.CSVOptions{
		Header: true,
		Target: "target",
	})
	if err != nil {
		return nil, fmt.Errorf("load iris: %w", err)
	}
	if err := tensor.ValidateFitInputs(ds.X, ds.Y); err != nil {
		return nil, fmt.Errorf("load iris: %w", err)
	}

	return &Dataset{
		Data:         ds.X,
		Targets:      ds.Y,
		TargetNames:  []string{"setosa", "versicolor", "virginica"},
		FeatureNames: ds.Features,
		Description:  irisDescription,
	}, nil
}
