package gp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigp/core/parallel"
)

// Row count above which covariance rows are filled on multiple cores.
// Kernel evaluations across matrix entries are independent, so this is a
// pure performance knob.
const covarianceParallelThreshold = 64

// computeCovariance fills the active n×n block of the covariance buffer
// from the current kernel and point set.
//
// The diagonal is the unit prior variance inflated by observation noise.
// Off-diagonal entries are computed once for j < i and mirrored, halving
// the kernel evaluations. Rows are disjoint, so the parallel fill is
// race-free.
func (g *GaussianProcess) computeCovariance() {
	n := g.points.Len()

	parallel.ParallelizeWithThreshold(n, covarianceParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			g.covariance.SetSym(i, i, 1.0+g.noise)

			for j := 0; j < i; j++ {
				g.covariance.SetSym(j, i, g.kernel.Evaluate(g.points.At(i), g.points.At(j)))
			}
		}
	})
}

// crossCovariance fills dst with the kernel similarity between x and every
// training point. dst must have length points.Len().
func (g *GaussianProcess) crossCovariance(dst *mat.VecDense, x []float64) {
	for i := 0; i < g.points.Len(); i++ {
		dst.SetVec(i, g.kernel.Evaluate(g.points.At(i), x))
	}
}
