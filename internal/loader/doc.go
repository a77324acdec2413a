// Package loader turns serialized data into tensor values for kalimdor.
//
// This package is the boundary layer in front of the tensor engine. It reads:
//   - JSON: nested arrays of numbers, strings, booleans and null
//   - YAML: the same structures in YAML syntax
//   - CSV: tables, optionally split into a feature matrix and a target column
//   - SQL: query results from any database/sql driver (SQLite built in)
//
// Loaders only convert; they never check shapes. Ragged or mixed input is
// produced as-is and rejected by the engine's validators, so every shape
// error carries the same index-path diagnostics regardless of the source.
//
// Example:
//
//	v, err := loader.LoadFile("X.json", loader.CSVOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	shape, err := tensor.InferShape(v)
package loader
