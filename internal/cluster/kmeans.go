// Package cluster groups samples with k-means.
package cluster

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/kalimdor-ml/kalimdor/internal/parallel"
	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

var (
	// ErrInvalidConfig is returned by New for out-of-range settings.
	ErrInvalidConfig = errors.New("cluster: invalid config")

	// ErrTooFewSamples is returned when X has fewer rows than clusters.
	ErrTooFewSamples = errors.New("cluster: fewer samples than clusters")

	// ErrNotFitted is returned by Predict before Fit.
	ErrNotFitted = errors.New("cluster: model is not fitted")
)

// Config controls k-means.
type Config struct {
	K        int             // Number of clusters.
	MaxIter  int             // Upper bound on Lloyd iterations.
	Tol      float64         // Stop when no centroid moves further than Tol.
	Parallel parallel.Config // Fan-out for the assignment step.
}

// DefaultConfig returns a Config for k clusters.
func DefaultConfig(k int) Config {
	return Config{
		K:        k,
		MaxIter:  300,
		Tol:      1e-4,
		Parallel: parallel.DefaultConfig(),
	}
}

// Result is the outcome of Fit.
type Result struct {
	Centroids  tensor.Value   // [K, features]
	Clusters   []tensor.Value // Members of each cluster in input order, [n_k, features]
	Labels     tensor.Value   // [samples], cluster index per sample
	Iterations int
}

// KMeans clusters samples by Lloyd's algorithm. Centroids start at the
// first K rows of X, so results are deterministic.
type KMeans struct {
	cfg       Config
	centroids [][]float64
}

// New validates cfg and returns an unfitted model.
func New(cfg Config) (*KMeans, error) {
	switch {
	case cfg.K < 1:
		return nil, fmt.Errorf("%w: K must be >= 1, got %d", ErrInvalidConfig, cfg.K)
	case cfg.MaxIter < 1:
		return nil, fmt.Errorf("%w: MaxIter must be >= 1, got %d", ErrInvalidConfig, cfg.MaxIter)
	case cfg.Tol < 0:
		return nil, fmt.Errorf("%w: Tol must be >= 0, got %g", ErrInvalidConfig, cfg.Tol)
	}
	return &KMeans{cfg: cfg}, nil
}

// Fit clusters the rows of X, a rank-2 numeric tensor.
func (km *KMeans) Fit(x tensor.Value) (*Result, error) {
	rows, err := tensor.Float64Matrix(x)
	if err != nil {
		return nil, err
	}
	if len(rows) < km.cfg.K {
		return nil, fmt.Errorf("%w: %d samples, K=%d", ErrTooFewSamples, len(rows), km.cfg.K)
	}

	centroids := make([][]float64, km.cfg.K)
	for i := range centroids {
		centroids[i] = append([]float64(nil), rows[i]...)
	}

	labels := make([]int, len(rows))
	iter := 0
	for iter < km.cfg.MaxIter {
		iter++
		assign(rows, centroids, labels, km.cfg.Parallel)
		if update(rows, centroids, labels) <= km.cfg.Tol {
			break
		}
	}
	// Labels must agree with the final centroids.
	assign(rows, centroids, labels, km.cfg.Parallel)
	km.centroids = centroids

	return &Result{
		Centroids:  tensor.Matrix(centroids),
		Clusters:   members(rows, labels, km.cfg.K),
		Labels:     labelValue(labels),
		Iterations: iter,
	}, nil
}

// Predict returns the nearest fitted centroid for each row of X.
func (km *KMeans) Predict(x tensor.Value) (tensor.Value, error) {
	if km.centroids == nil {
		return tensor.Value{}, ErrNotFitted
	}
	rows, err := tensor.Float64Matrix(x)
	if err != nil {
		return tensor.Value{}, err
	}
	for i, row := range rows {
		if len(row) != len(km.centroids[0]) {
			return tensor.Value{}, fmt.Errorf("row %d has %d features, model has %d", i, len(row), len(km.centroids[0]))
		}
	}

	labels := make([]int, len(rows))
	assign(rows, km.centroids, labels, km.cfg.Parallel)
	return labelValue(labels), nil
}

// assign sets labels[i] to the nearest centroid; ties go to the lower index.
func assign(rows, centroids [][]float64, labels []int, cfg parallel.Config) {
	parallel.For(len(rows), func(i int) {
		best, bestDist := 0, floats.Distance(rows[i], centroids[0], 2)
		for c := 1; c < len(centroids); c++ {
			if d := floats.Distance(rows[i], centroids[c], 2); d < bestDist {
				best, bestDist = c, d
			}
		}
		labels[i] = best
	}, cfg)
}

// update moves each centroid to the mean of its members and returns the
// largest shift. Empty clusters keep their centroid.
func update(rows, centroids [][]float64, labels []int) float64 {
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for c := range sums {
		sums[c] = make([]float64, len(centroids[c]))
	}
	for i, row := range rows {
		floats.Add(sums[labels[i]], row)
		counts[labels[i]]++
	}

	shift := 0.0
	for c := range centroids {
		if counts[c] == 0 {
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
		shift = max(shift, floats.Distance(sums[c], centroids[c], 2))
		centroids[c] = sums[c]
	}
	return shift
}

func members(rows [][]float64, labels []int, k int) []tensor.Value {
	groups := make([][][]float64, k)
	for i, row := range rows {
		groups[labels[i]] = append(groups[labels[i]], row)
	}
	out := make([]tensor.Value, k)
	for c, g := range groups {
		out[c] = tensor.Matrix(g)
	}
	return out
}

func labelValue(labels []int) tensor.Value {
	xs := make([]float64, len(labels))
	for i, l := range labels {
		xs[i] = float64(l)
	}
	return tensor.Numbers(xs...)
}
