// Package scigp provides Gaussian Process regression for Go.
//
// SciGP builds a probabilistic regression model from a set of training
// input vectors and scalar targets. For any query point it predicts a
// posterior mean and variance, and it can refine its own kernel
// hyperparameters by maximizing the marginal log-likelihood of the
// training data with a quasi-Newton optimizer.
//
// # Packages
//
//   - gp: the regression engine (covariance construction, Cholesky
//     posterior solver, hyperparameter learning)
//   - kernel: covariance kernels (squared exponential, Matérn family)
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//
// # Quick Start
//
//	k, _ := kernel.NewRBF([]float64{0.5})
//	points := gp.NewPointSet(1)
//	_ = points.Add([]float64{0.0})
//	_ = points.Add([]float64{1.0})
//
//	model, err := gp.NewFromData(k, 0.1, points, []float64{1.0, -1.0}, 10)
//	if err != nil {
//		log.Fatal(err)
//	}
//	mean, variance, err := model.Evaluate([]float64{0.5})
//
// Hyperparameter learning mutates the kernel in place and resynchronizes
// all cached state:
//
//	ok, err := model.LearnHyperparams()
//
// All numerically sensitive operations are backed by gonum's dense linear
// algebra, and every exported operation validates its inputs and returns
// structured errors with stack traces.
package scigp
