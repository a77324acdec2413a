// Copyright 2025 Kalimdor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loader reads tensor values from JSON, YAML, CSV and SQL sources.
//
// Loaders only convert input into tensor.Value; ragged or mixed input is
// returned as-is and rejected later by the tensor validators.
//
// Example usage:
//
//	import (
//	    "github.com/kalimdor-ml/kalimdor/loader"
//	    "github.com/kalimdor-ml/kalimdor/tensor"
//	)
//
//	ds, err := loader.ReadCSV(f, loader.CSVOptions{Header: true, Target: "label"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tensor.ValidateFitInputs(ds.X, ds.Y); err != nil {
//	    log.Fatal(err)
//	}
package loader

import (
	"context"
	"database/sql"
	"io"

	"github.com/kalimdor-ml/kalimdor/internal/loader"
	"github.com/kalimdor-ml/kalimdor/tensor"
)

// Format represents a serialized tensor format.
type Format = loader.Format

// Supported formats.
const (
	FormatUnknown Format = loader.FormatUnknown
	FormatJSON    Format = loader.FormatJSON
	FormatYAML    Format = loader.FormatYAML
	FormatCSV     Format = loader.FormatCSV
)

// CSVOptions controls how CSV records become tensor values.
type CSVOptions = loader.CSVOptions

// Table is a rectangular set of records with optional column names.
type Table = loader.Table

// Dataset is a table split into a feature matrix X and a target vector Y.
type Dataset = loader.Dataset

// ErrUnknownColumn is returned when a requested target column does not exist.
var ErrUnknownColumn = loader.ErrUnknownColumn

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) Format {
	return loader.DetectFormat(path)
}

// ParseJSON decodes a JSON document into a Value.
func ParseJSON(data []byte) (tensor.Value, error) {
	return loader.ParseJSON(data)
}

// ParseYAML decodes a YAML document into a Value.
func ParseYAML(data []byte) (tensor.Value, error) {
	return loader.ParseYAML(data)
}

// LoadFile reads a tensor from path, auto-detecting the format.
//
// Supported extensions:
//   - .json
//   - .yaml, .yml
//   - .csv (loaded as a rank-2 table using opts)
func LoadFile(path string, opts CSVOptions) (tensor.Value, error) {
	return loader.LoadFile(path, opts)
}

// ReadCSVTable reads every record of r into a Table.
func ReadCSVTable(r io.Reader, opts CSVOptions) (*Table, error) {
	return loader.ReadCSVTable(r, opts)
}

// ReadCSV reads r and splits it into features and the opts.Target column.
func ReadCSV(r io.Reader, opts CSVOptions) (*Dataset, error) {
	return loader.ReadCSV(r, opts)
}

// OpenSQLite opens a SQLite database using the pure-Go driver.
func OpenSQLite(path string) (*sql.DB, error) {
	return loader.OpenSQLite(path)
}

// QueryTable runs query against db and returns the rows as a Table.
func QueryTable(ctx context.Context, db *sql.DB, query string, args ...any) (*Table, error) {
	return loader.QueryTable(ctx, db, query, args...)
}

// QueryDataset runs query and splits the target column from the features.
func QueryDataset(ctx context.Context, db *sql.DB, target, query string, args ...any) (*Dataset, error) {
	return loader.QueryDataset(ctx, db, target, query, args...)
}
