package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// PolynomialFeatures expands features into every monomial of degree at
// most Degree, bias column first, then by degree, then lexicographically.
//
// Example, Degree 2 on [a, b]: [1, a, b, a², ab, b²].
type PolynomialFeatures struct {
	degree int
}

// DefaultDegree is the conventional quadratic expansion.
const DefaultDegree = 2

// NewPolynomialFeatures returns an expander for the given degree.
func NewPolynomialFeatures(degree int) (*PolynomialFeatures, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidDegree, degree)
	}
	return &PolynomialFeatures{degree: degree}, nil
}

// Degree returns the maximum monomial degree.
func (p *PolynomialFeatures) Degree() int {
	return p.degree
}

// Transform expands every row of X.
func (p *PolynomialFeatures) Transform(x tensor.Value) (tensor.Value, error) {
	m, err := dense(x)
	if err != nil {
		return tensor.Value{}, err
	}

	r, c := m.Dims()
	terms := combinations(c, p.degree)
	out := mat.NewDense(r, len(terms), nil)
	for i := range r {
		for j, term := range terms {
			v := 1.0
			for _, f := range term {
				v *= m.At(i, f)
			}
			out.Set(i, j, v)
		}
	}
	return toValue(out), nil
}

// combinations lists feature index multisets of size 0..degree, each
// non-decreasing, ordered by size then lexicographically.
func combinations(features, degree int) [][]int {
	terms := [][]int{{}}
	prev := [][]int{{}}
	for range degree {
		var next [][]int
		for _, term := range prev {
			start := 0
			if len(term) > 0 {
				start = term[len(term)-1]
			}
			for f := start; f < features; f++ {
				t := make([]int, len(term)+1)
				copy(t, term)
				t[len(term)] = f
				next = append(next, t)
			}
		}
		terms = append(terms, next...)
		prev = next
	}
	return terms
}
