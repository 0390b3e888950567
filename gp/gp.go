// Package gp implements Gaussian Process regression.
//
// A GaussianProcess couples a covariance kernel with a set of training
// points and targets. Construction computes the noise-regularized training
// covariance matrix, its Cholesky factorization, and the cached regression
// weights; Evaluate and EvaluateTrainingPoint consume that cached state
// read-only, and LearnHyperparams refines the kernel's hyperparameters by
// maximizing the marginal log-likelihood of the training data.
//
// The model is single-threaded: callers that share an instance across
// goroutines must serialize LearnHyperparams against all reads.
package gp

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/scigp/kernel"
	"github.com/YuminosukeSato/scigp/pkg/errors"
	"github.com/YuminosukeSato/scigp/pkg/log"
)

// Standard deviation of the randomly sampled targets used by the
// bootstrapping constructors.
const bootstrapTargetSigma = 0.1

// GaussianProcess is a Gaussian Process regression model with a fixed
// point capacity.
//
// All internal buffers are allocated once, sized to the capacity chosen at
// construction; only the leading n entries are meaningful, where n is the
// current number of training points.
//
// The kernel and point set are shared with the caller. Any external
// mutation of the kernel's hyperparameters or of the point set between
// operations invalidates the cached covariance, factorization, and
// regression weights; the model trusts that only LearnHyperparams mutates
// the kernel through this object.
type GaussianProcess struct {
	kernel    kernel.Kernel
	noise     float64
	points    *PointSet
	maxPoints int

	// Capacity-sized buffers; entries [0, points.Len()) are valid.
	targets    *mat.VecDense
	covariance *mat.SymDense
	regressed  *mat.VecDense

	// Cached factorization of the active covariance block. Recomputed by
	// refresh whenever the kernel, points, or targets change.
	chol mat.Cholesky

	logger log.Logger
	src    rand.Source
}

// New creates a GaussianProcess bootstrapped with a small synthetic
// training set: maxPoints/10 + 1 points drawn uniformly from [-1, 1]^dim
// with targets drawn from a Normal(0, 0.1) distribution. This form exists
// for testing and warm-starting; use NewFromData for real training sets.
func New(k kernel.Kernel, noise float64, dim, maxPoints int, opts ...Option) (*GaussianProcess, error) {
	const op = "gp.New"

	if dim < 1 {
		return nil, errors.NewValidationError("dim", "must be at least 1", dim)
	}
	g, err := newModel(op, k, noise, NewPointSet(dim), maxPoints, opts)
	if err != nil {
		return nil, err
	}

	unif := distuv.Uniform{Min: -1, Max: 1, Src: g.src}
	normal := distuv.Normal{Mu: 0, Sigma: bootstrapTargetSigma, Src: g.src}

	for i := 0; i < maxPoints/10+1; i++ {
		x := make([]float64, dim)
		for j := range x {
			x[j] = unif.Rand()
		}
		if err := g.points.Add(x); err != nil {
			return nil, errors.Wrap(err, op)
		}
		g.targets.SetVec(i, normal.Rand())
	}

	if err := g.refresh(op); err != nil {
		return nil, err
	}
	return g, nil
}

// NewFromPoints creates a GaussianProcess over the supplied points with
// targets drawn from a Normal(0, 0.1) distribution. The point set is
// shared, not copied.
func NewFromPoints(k kernel.Kernel, noise float64, points *PointSet, maxPoints int, opts ...Option) (*GaussianProcess, error) {
	const op = "gp.NewFromPoints"

	g, err := newModel(op, k, noise, points, maxPoints, opts)
	if err != nil {
		return nil, err
	}

	normal := distuv.Normal{Mu: 0, Sigma: bootstrapTargetSigma, Src: g.src}
	for i := 0; i < points.Len(); i++ {
		g.targets.SetVec(i, normal.Rand())
	}

	if err := g.refresh(op); err != nil {
		return nil, err
	}
	return g, nil
}

// NewFromData creates a GaussianProcess over a fully specified training
// set. The point set is shared, not copied; the targets are copied into
// the model's capacity-sized buffer.
func NewFromData(k kernel.Kernel, noise float64, points *PointSet, targets []float64, maxPoints int, opts ...Option) (*GaussianProcess, error) {
	const op = "gp.NewFromData"

	g, err := newModel(op, k, noise, points, maxPoints, opts)
	if err != nil {
		return nil, err
	}
	if points.Len() != len(targets) {
		return nil, errors.NewDimensionError(op, points.Len(), len(targets), 0)
	}

	for i, y := range targets {
		g.targets.SetVec(i, y)
	}

	if err := g.refresh(op); err != nil {
		return nil, err
	}
	return g, nil
}

// newModel validates the shared constructor preconditions and allocates
// the capacity-sized buffers.
func newModel(op string, k kernel.Kernel, noise float64, points *PointSet, maxPoints int, opts []Option) (*GaussianProcess, error) {
	if k == nil {
		return nil, errors.NewValidationError("kernel", "must not be nil", nil)
	}
	if points == nil {
		return nil, errors.NewValidationError("points", "must not be nil", nil)
	}
	if maxPoints < 1 {
		return nil, errors.NewValidationError("maxPoints", "must be at least 1", maxPoints)
	}
	if noise <= 0 {
		return nil, errors.NewValidationError("noise", "must be positive", noise)
	}
	if points.Len() > maxPoints {
		return nil, errors.Wrapf(errors.ErrCapacityExceeded, "%s: %d points with capacity %d", op, points.Len(), maxPoints)
	}

	g := &GaussianProcess{
		kernel:     k,
		noise:      noise,
		points:     points,
		maxPoints:  maxPoints,
		targets:    mat.NewVecDense(maxPoints, nil),
		covariance: mat.NewSymDense(maxPoints, nil),
		regressed:  mat.NewVecDense(maxPoints, nil),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.GetLoggerWithName("gp").With(
			log.ModelNameKey, "GaussianProcess",
		)
	}
	if g.src == nil {
		g.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return g, nil
}

// refresh re-derives all cached state from the current kernel, points,
// and targets: the covariance block, its Cholesky factorization, and the
// regression weights. Every mutating path must end here.
func (g *GaussianProcess) refresh(op string) error {
	n := g.points.Len()
	if n == 0 {
		return errors.Wrap(errors.ErrEmptyData, op)
	}

	g.computeCovariance()

	if ok := g.chol.Factorize(g.covariance.SliceSym(0, n)); !ok {
		return errors.NewModelError(op, "covariance factorization failed", errors.ErrNotPositiveDefinite)
	}

	reg := g.regressed.SliceVec(0, n).(*mat.VecDense)
	if err := g.chol.SolveVecTo(reg, g.targets.SliceVec(0, n)); err != nil {
		return errors.NewModelError(op, "regression solve failed", err)
	}

	g.logger.Debug("Cached state resynchronized",
		log.PointsKey, n,
		log.DimensionKey, g.points.Dim(),
		log.NoiseKey, g.noise,
	)
	return nil
}

// Evaluate returns the posterior mean and variance at the query point x.
//
// The variance can come out marginally negative from floating-point error
// when x nearly coincides with a training point; callers that need a
// nonnegative value should clamp it.
func (g *GaussianProcess) Evaluate(x []float64) (mean, variance float64, err error) {
	const op = "GaussianProcess.Evaluate"

	if len(x) != g.points.Dim() {
		return 0, 0, errors.NewDimensionError(op, g.points.Dim(), len(x), 1)
	}

	n := g.points.Len()
	cross := mat.NewVecDense(n, nil)
	g.crossCovariance(cross, x)

	return g.posterior(op, cross)
}

// EvaluateTrainingPoint returns the posterior mean and variance at the
// i-th training point without re-running the kernel against the whole
// set. The cross covariance is read out of the i-th covariance column,
// with the noise nugget subtracted from the self term: observation noise
// is regularization, not kernel similarity.
func (g *GaussianProcess) EvaluateTrainingPoint(i int) (mean, variance float64, err error) {
	const op = "GaussianProcess.EvaluateTrainingPoint"

	n := g.points.Len()
	if i < 0 || i >= n {
		return 0, 0, errors.Wrapf(errors.ErrIndexOutOfRange, "%s: index %d with %d training points", op, i, n)
	}

	cross := mat.NewVecDense(n, nil)
	for j := 0; j < n; j++ {
		cross.SetVec(j, g.covariance.At(j, i))
	}
	cross.SetVec(i, cross.AtVec(i)-g.noise)

	return g.posterior(op, cross)
}

// posterior applies the shared mean/variance formulas to a cross-covariance
// vector, reusing the cached factorization for an O(n²) solve.
func (g *GaussianProcess) posterior(op string, cross *mat.VecDense) (float64, float64, error) {
	n := cross.Len()

	mean := mat.Dot(cross, g.regressed.SliceVec(0, n))

	solved := mat.NewVecDense(n, nil)
	if err := g.chol.SolveVecTo(solved, cross); err != nil {
		return 0, 0, errors.NewModelError(op, "cholesky solve failed", err)
	}
	variance := 1.0 - mat.Dot(cross, solved)

	return mean, variance, nil
}

// LogLikelihood returns the marginal log-likelihood of the training
// targets under the current kernel and noise, computed from the cached
// factorization.
func (g *GaussianProcess) LogLikelihood() (float64, error) {
	const op = "GaussianProcess.LogLikelihood"

	n := g.points.Len()
	dataFit := mat.Dot(g.targets.SliceVec(0, n), g.regressed.SliceVec(0, n))
	ll := -0.5*dataFit - 0.5*g.chol.LogDet() - 0.5*float64(n)*math.Log(2*math.Pi)

	if err := errors.CheckScalar(op, ll, 0); err != nil {
		return 0, err
	}
	return ll, nil
}

// Len returns the number of training points.
func (g *GaussianProcess) Len() int {
	return g.points.Len()
}

// Dim returns the dimension of the training points.
func (g *GaussianProcess) Dim() int {
	return g.points.Dim()
}

// MaxPoints returns the fixed capacity chosen at construction.
func (g *GaussianProcess) MaxPoints() int {
	return g.maxPoints
}

// Noise returns the observation-noise term added to the covariance
// diagonal.
func (g *GaussianProcess) Noise() float64 {
	return g.noise
}

// Kernel returns the shared kernel. Mutating its hyperparameters outside
// LearnHyperparams invalidates the model's cached state.
func (g *GaussianProcess) Kernel() kernel.Kernel {
	return g.kernel
}

// Points returns the shared point set.
func (g *GaussianProcess) Points() *PointSet {
	return g.points
}

// Targets returns a read-only view of the active training targets.
func (g *GaussianProcess) Targets() mat.Vector {
	return g.targets.SliceVec(0, g.points.Len())
}

// Covariance returns a read-only view of the active block of the training
// covariance matrix.
func (g *GaussianProcess) Covariance() mat.Symmetric {
	return g.covariance.SliceSym(0, g.points.Len())
}

// Regressed returns a read-only view of the cached regression weights
// (the solve of the covariance against the targets).
func (g *GaussianProcess) Regressed() mat.Vector {
	return g.regressed.SliceVec(0, g.points.Len())
}
