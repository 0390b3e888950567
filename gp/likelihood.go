package gp

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigp/kernel"
)

// TrainingLogLikelihood is the hyperparameter-learning objective: the
// negative marginal log-likelihood of the training targets as a function
// of the kernel's hyperparameter vector.
//
// Cost and Gradient temporarily write the candidate parameters into the
// shared kernel and restore the previous values before returning, so an
// optimizer can probe the objective freely without leaving the kernel in
// an intermediate state.
type TrainingLogLikelihood struct {
	Points  *PointSet
	Targets mat.Vector
	Kernel  kernel.Kernel
	Noise   float64
}

// Cost returns the negative marginal log-likelihood at params:
//
//	-log p(y | X, θ) = 0.5 yᵀ K⁻¹ y + 0.5 log|K| + n/2 log 2π
//
// with K the kernel matrix at θ plus noise on the diagonal. Parameter
// vectors for which K is not positive-definite get +Inf, which a
// line-search optimizer treats as an overlong step.
func (c *TrainingLogLikelihood) Cost(params []float64) float64 {
	view := c.Kernel.Params()
	saved := make([]float64, len(view))
	copy(saved, view)
	copy(view, params)
	defer copy(view, saved)

	n := c.Points.Len()
	k := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		k.SetSym(i, i, 1.0+c.Noise)
		for j := 0; j < i; j++ {
			k.SetSym(j, i, c.Kernel.Evaluate(c.Points.At(i), c.Points.At(j)))
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(k); !ok {
		return math.Inf(1)
	}

	alpha := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(alpha, c.Targets); err != nil {
		return math.Inf(1)
	}

	ll := -0.5*mat.Dot(c.Targets, alpha) - 0.5*chol.LogDet() - 0.5*float64(n)*math.Log(2*math.Pi)
	return -ll
}

// Gradient estimates the gradient of Cost at params by central finite
// differences and stores it in grad. The Kernel interface exposes no
// parameter derivatives, so the gradient is numerical.
func (c *TrainingLogLikelihood) Gradient(grad, params []float64) {
	fd.Gradient(grad, c.Cost, params, &fd.Settings{Formula: fd.Central})
}
