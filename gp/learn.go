package gp

import (
	"gonum.org/v1/gonum/optimize"

	"github.com/YuminosukeSato/scigp/pkg/errors"
	"github.com/YuminosukeSato/scigp/pkg/log"
)

// Optimizer budgets. All finite so a LearnHyperparams call always
// terminates; tuning them trades training quality against time.
const (
	learnMaxIterations      = 100
	learnMaxFuncEvaluations = 5000
	learnMaxGradEvaluations = 5000
	learnLBFGSStore         = 15
)

// LearnHyperparams refines the kernel's hyperparameters by maximizing the
// marginal log-likelihood of the training data with an L-BFGS line-search
// optimizer, then re-derives the covariance, factorization, and regression
// weights from the updated kernel.
//
// The returned bool reports whether the optimizer produced a usable
// solution; running out of iteration budget still counts as usable.
// The kernel is NOT rolled back on failure: a failed optimization leaves
// the kernel, and all cached state, in the post-attempt configuration.
// The kernel mutation is visible to every other holder of the same kernel.
func (g *GaussianProcess) LearnHyperparams() (ok bool, err error) {
	const op = "GaussianProcess.LearnHyperparams"
	defer errors.Recover(&err, op)

	params := g.kernel.Params()
	if len(params) == 0 {
		return false, errors.NewValueError(op, "kernel has no hyperparameters")
	}

	n := g.points.Len()
	cost := &TrainingLogLikelihood{
		Points:  g.points,
		Targets: g.targets.SliceVec(0, n),
		Kernel:  g.kernel,
		Noise:   g.noise,
	}

	// Marshal the kernel parameters into a flat buffer for the optimizer.
	x0 := make([]float64, len(params))
	copy(x0, params)

	g.logger.Info("Hyperparameter learning started",
		log.OperationKey, log.OperationLearn,
		log.PointsKey, n,
		log.ParamsKey, x0,
	)

	problem := optimize.Problem{
		Func: cost.Cost,
		Grad: cost.Gradient,
	}
	settings := &optimize.Settings{
		MajorIterations: learnMaxIterations,
		FuncEvaluations: learnMaxFuncEvaluations,
		GradEvaluations: learnMaxGradEvaluations,
	}
	method := &optimize.LBFGS{Store: learnLBFGSStore}

	result, solveErr := optimize.Minimize(problem, x0, settings, method)

	usable := solveErr == nil && result != nil
	if result != nil {
		// Unmarshal the final parameters back into the shared kernel,
		// even when the optimizer failed: no rollback.
		copy(params, result.X)

		switch result.Status {
		case optimize.Failure, optimize.NotTerminated:
			usable = false
		case optimize.IterationLimit, optimize.FunctionEvaluationLimit, optimize.GradientEvaluationLimit:
			// An exhausted budget still leaves a usable iterate.
			usable = true
		}
	}

	// Re-derive covariance, factorization, and regression weights from the
	// new kernel state before anything reads them.
	if rerr := g.refresh(op); rerr != nil {
		return false, rerr
	}

	if !usable {
		msg := ""
		if solveErr != nil {
			msg = solveErr.Error()
		}
		warning := errors.NewConvergenceWarning("L-BFGS", learnMaxIterations, msg)
		errors.Warn(warning)
		g.logger.Warn("Hyperparameter learning did not produce a usable solution",
			log.OperationKey, log.OperationLearn,
			log.ErrAttrKey, warning,
		)
		return false, nil
	}

	g.logger.Info("Hyperparameter learning finished",
		log.OperationKey, log.OperationLearn,
		log.IterationsKey, result.Stats.MajorIterations,
		log.StatusKey, result.Status.String(),
		log.ObjectiveKey, result.F,
		log.ParamsKey, result.X,
	)
	return true, nil
}
