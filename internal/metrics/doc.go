// Package metrics scores predictions against ground truth.
//
// Every function validates its inputs with the tensor engine before
// computing anything, so malformed input fails with the engine's typed
// errors (ErrRankMismatch, ErrRaggedShape, ErrElementType) and
// disagreement between arguments fails with ErrShapeMismatch.
package metrics
