package gp

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigp/kernel"
	scigperrors "github.com/YuminosukeSato/scigp/pkg/errors"
	"github.com/YuminosukeSato/scigp/pkg/log"
)

// twoPointModel builds the reference scenario: a 1-D RBF kernel with unit
// length scale, training points x=0 (y=1) and x=1 (y=-1), noise 0.1.
func twoPointModel(t *testing.T) *GaussianProcess {
	t.Helper()

	k, err := kernel.NewRBF([]float64{1.0})
	require.NoError(t, err)

	points := NewPointSet(1)
	require.NoError(t, points.Add([]float64{0.0}))
	require.NoError(t, points.Add([]float64{1.0}))

	g, err := NewFromData(k, 0.1, points, []float64{1.0, -1.0}, 10, WithLogger(log.NewNopLogger()))
	require.NoError(t, err)
	return g
}

// sineModel builds a 1-D model over noisy sin(πx) samples.
func sineModel(t *testing.T, lengthScale, noise float64) *GaussianProcess {
	t.Helper()

	k, err := kernel.NewRBF([]float64{lengthScale})
	require.NoError(t, err)

	points := NewPointSet(1)
	targets := make([]float64, 0, 9)
	for i := 0; i <= 8; i++ {
		x := -1.0 + 0.25*float64(i)
		require.NoError(t, points.Add([]float64{x}))
		targets = append(targets, math.Sin(math.Pi*x))
	}

	g, err := NewFromData(k, noise, points, targets, 20, WithLogger(log.NewNopLogger()))
	require.NoError(t, err)
	return g
}

func TestTwoPointScenario(t *testing.T) {
	g := twoPointModel(t)

	cov := g.Covariance()
	r, c := cov.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)

	offDiag := math.Exp(-0.5)
	assert.InDelta(t, 1.1, cov.At(0, 0), 1e-12)
	assert.InDelta(t, 1.1, cov.At(1, 1), 1e-12)
	assert.InDelta(t, offDiag, cov.At(0, 1), 1e-12)
	assert.Equal(t, cov.At(0, 1), cov.At(1, 0))

	mean, variance, err := g.Evaluate([]float64{0.0})
	require.NoError(t, err)

	// Closed form for two symmetric targets: mean = (1-k)/(1.1-k).
	wantMean := (1 - offDiag) / (1.1 - offDiag)
	assert.InDelta(t, wantMean, mean, 1e-12)
	assert.Greater(t, mean, 0.5)
	assert.Less(t, mean, 1.0, "noise attenuates the prediction below the target")

	assert.GreaterOrEqual(t, variance, 0.0)
	assert.LessOrEqual(t, variance, 1.0)
}

func TestCovarianceSymmetryAndDiagonal(t *testing.T) {
	const noise = 0.05

	k, err := kernel.NewMatern52(0.8)
	require.NoError(t, err)

	g, err := New(k, noise, 3, 100, WithRandSource(rand.NewPCG(7, 11)), WithLogger(log.NewNopLogger()))
	require.NoError(t, err)

	n := g.Len()
	require.Equal(t, 100/10+1, n)

	cov := g.Covariance()
	for i := 0; i < n; i++ {
		assert.InDelta(t, 1.0+noise, cov.At(i, i), 1e-12)
		for j := 0; j < n; j++ {
			assert.Equal(t, cov.At(i, j), cov.At(j, i), "covariance must be symmetric")
		}
	}
}

func TestRegressionConsistency(t *testing.T) {
	g := sineModel(t, 0.5, 0.1)

	n := g.Len()
	var ky mat.VecDense
	ky.MulVec(g.Covariance(), g.Regressed())

	for i := 0; i < n; i++ {
		assert.InDelta(t, g.Targets().AtVec(i), ky.AtVec(i), 1e-8,
			"covariance times regressed must reproduce the targets")
	}
}

func TestEvaluateSelfConsistency(t *testing.T) {
	g := sineModel(t, 0.5, 1e-6)

	for i := 0; i < g.Len(); i++ {
		qMean, qVar, err := g.Evaluate(g.Points().At(i))
		require.NoError(t, err)

		tMean, tVar, err := g.EvaluateTrainingPoint(i)
		require.NoError(t, err)

		assert.InDelta(t, tMean, qMean, 1e-6)
		assert.InDelta(t, tVar, qVar, 1e-6)
	}
}

func TestEvaluateIdempotence(t *testing.T) {
	g := sineModel(t, 0.5, 0.1)
	query := []float64{0.3}

	n := g.Len()
	covBefore := mat.NewSymDense(n, nil)
	covBefore.CopySym(g.Covariance())
	regBefore := mat.VecDenseCopyOf(g.Regressed())

	mean1, var1, err := g.Evaluate(query)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		mean, variance, err := g.Evaluate(query)
		require.NoError(t, err)
		assert.Equal(t, mean1, mean)
		assert.Equal(t, var1, variance)
	}

	assert.True(t, mat.Equal(covBefore, g.Covariance()), "Evaluate must not mutate the covariance")
	assert.True(t, mat.Equal(regBefore, g.Regressed()), "Evaluate must not mutate the regression weights")
}

func TestEvaluateFarFromData(t *testing.T) {
	g := sineModel(t, 0.5, 0.1)

	mean, variance, err := g.Evaluate([]float64{250.0})
	require.NoError(t, err)

	// With no nearby training point the posterior reverts to the prior.
	assert.InDelta(t, 0.0, mean, 1e-9)
	assert.InDelta(t, 1.0, variance, 1e-9)
}

func TestEvaluateDimensionMismatch(t *testing.T) {
	g := twoPointModel(t)

	_, _, err := g.Evaluate([]float64{0.0, 1.0})
	require.Error(t, err)

	var dimErr *scigperrors.DimensionError
	assert.True(t, scigperrors.As(err, &dimErr))
}

func TestEvaluateTrainingPointOutOfRange(t *testing.T) {
	g := twoPointModel(t)

	_, _, err := g.EvaluateTrainingPoint(g.Len())
	require.Error(t, err)
	assert.True(t, scigperrors.Is(err, scigperrors.ErrIndexOutOfRange))

	_, _, err = g.EvaluateTrainingPoint(-1)
	require.Error(t, err)
	assert.True(t, scigperrors.Is(err, scigperrors.ErrIndexOutOfRange))
}

func TestConstructorPreconditions(t *testing.T) {
	k, err := kernel.NewRBF([]float64{1.0})
	require.NoError(t, err)

	points := NewPointSet(1)
	require.NoError(t, points.Add([]float64{0.0}))

	tests := []struct {
		name string
		fn   func() error
	}{
		{"nil kernel", func() error {
			_, err := New(nil, 0.1, 1, 10)
			return err
		}},
		{"zero noise", func() error {
			_, err := New(k, 0.0, 1, 10)
			return err
		}},
		{"negative noise", func() error {
			_, err := NewFromPoints(k, -0.1, points, 10)
			return err
		}},
		{"zero capacity", func() error {
			_, err := New(k, 0.1, 1, 0)
			return err
		}},
		{"zero dimension", func() error {
			_, err := New(k, 0.1, 0, 10)
			return err
		}},
		{"nil points", func() error {
			_, err := NewFromPoints(k, 0.1, nil, 10)
			return err
		}},
		{"capacity exceeded", func() error {
			_, err := NewFromPoints(k, 0.1, points, 0)
			return err
		}},
		{"target size mismatch", func() error {
			_, err := NewFromData(k, 0.1, points, []float64{1.0, 2.0}, 10)
			return err
		}},
		{"empty point set", func() error {
			_, err := NewFromPoints(k, 0.1, NewPointSet(1), 10)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.fn())
		})
	}
}

func TestCapacityExceededSentinel(t *testing.T) {
	k, err := kernel.NewRBF([]float64{1.0})
	require.NoError(t, err)

	points := NewPointSet(1)
	require.NoError(t, points.Add([]float64{0.0}))
	require.NoError(t, points.Add([]float64{1.0}))

	_, err = NewFromPoints(k, 0.1, points, 1)
	require.Error(t, err)
	assert.True(t, scigperrors.Is(err, scigperrors.ErrCapacityExceeded))
}

func TestBootstrapConstructorDeterministic(t *testing.T) {
	build := func() *GaussianProcess {
		k, err := kernel.NewRBF([]float64{1.0, 1.0})
		require.NoError(t, err)
		g, err := New(k, 0.1, 2, 50,
			WithRandSource(rand.NewPCG(42, 43)),
			WithLogger(log.NewNopLogger()),
		)
		require.NoError(t, err)
		return g
	}

	a := build()
	b := build()

	require.Equal(t, 50/10+1, a.Len())
	require.Equal(t, a.Len(), b.Len())

	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.Points().At(i), b.Points().At(i))
		assert.Equal(t, a.Targets().AtVec(i), b.Targets().AtVec(i))
	}
}

func TestBootstrapSamplesInRange(t *testing.T) {
	k, err := kernel.NewRBF([]float64{1.0, 1.0, 1.0})
	require.NoError(t, err)

	g, err := New(k, 0.1, 3, 200,
		WithRandSource(rand.NewPCG(5, 6)),
		WithLogger(log.NewNopLogger()),
	)
	require.NoError(t, err)

	for i := 0; i < g.Len(); i++ {
		for _, v := range g.Points().At(i) {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
		// Normal(0, 0.1) targets stay well inside unit range.
		assert.Less(t, math.Abs(g.Targets().AtVec(i)), 1.0)
	}
}

func TestAccessors(t *testing.T) {
	g := twoPointModel(t)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 1, g.Dim())
	assert.Equal(t, 10, g.MaxPoints())
	assert.Equal(t, 0.1, g.Noise())
	assert.NotNil(t, g.Kernel())
	assert.Equal(t, 2, g.Points().Len())
	assert.Equal(t, 2, g.Regressed().Len())
}
