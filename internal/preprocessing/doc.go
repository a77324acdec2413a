// Package preprocessing transforms numeric feature matrices.
//
// Inputs are tensor values validated by the tensor engine: matrices must be
// rank 2 and numeric, vectors rank 1. Empty inputs fail with ErrEmpty.
//
// Available transforms:
//   - AddDummyFeature: prepend a constant column
//   - Binarizer: threshold values to 0/1
//   - Normalize: scale rows to unit l1, l2 or max norm
//   - MinMaxScaler: map values into a feature range
//   - PolynomialFeatures: expand features into polynomial terms
package preprocessing
