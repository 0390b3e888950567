package gp

import (
	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// PointSet is an ordered collection of fixed-dimension training inputs.
//
// A PointSet is shared by reference: the GaussianProcess holds the same
// instance the caller constructed it with, so a caller can keep a handle
// for incremental reuse. Mutating a shared PointSet after construction
// silently invalidates the GP's cached covariance and factorization; the
// GP performs no change detection.
type PointSet struct {
	dim    int
	points [][]float64
}

// NewPointSet creates an empty point set whose points all have the given
// dimension.
func NewPointSet(dim int) *PointSet {
	return &PointSet{dim: dim}
}

// Dim returns the dimension of the points in the set.
func (s *PointSet) Dim() int {
	return s.dim
}

// Len returns the number of points in the set.
func (s *PointSet) Len() int {
	return len(s.points)
}

// At returns the i-th point. The returned slice aliases internal storage
// and must not be modified.
func (s *PointSet) At(i int) []float64 {
	return s.points[i]
}

// Add appends a copy of x to the set. It returns a DimensionError if x
// does not have the set's dimension.
func (s *PointSet) Add(x []float64) error {
	if len(x) != s.dim {
		return errors.NewDimensionError("PointSet.Add", s.dim, len(x), 1)
	}
	p := make([]float64, s.dim)
	copy(p, x)
	s.points = append(s.points, p)
	return nil
}
