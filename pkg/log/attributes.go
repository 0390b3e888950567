// Package log defines standard attribute keys for Gaussian Process
// operations.
//
// Using these keys consistently enables filtering and analysis of structured
// log output across the library. The keys follow a hierarchical naming
// convention (e.g., "model.name", "data.points").

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model emitting the record.
	// Example: "GaussianProcess"
	ModelNameKey = "model.name"

	// ComponentKey identifies the package performing the operation.
	// Examples: "gp", "kernel", "metrics"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	// Standard values: OperationFit, OperationPredict, OperationLearn.
	OperationKey = "ml.operation"
)

// Standard values for OperationKey.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationLearn   = "learn_hyperparams"
)

// Data shape and model configuration.
const (
	// PointsKey is the number of training points in the model.
	PointsKey = "data.points"

	// DimensionKey is the dimension of the input vectors.
	DimensionKey = "data.dimension"

	// NoiseKey is the observation-noise term on the covariance diagonal.
	NoiseKey = "gp.noise"

	// ParamsKey is the kernel hyperparameter vector.
	ParamsKey = "gp.kernel_params"
)

// Optimizer context.
const (
	// IterationsKey is the number of major iterations the optimizer ran.
	IterationsKey = "optimizer.iterations"

	// StatusKey is the optimizer's termination status.
	StatusKey = "optimizer.status"

	// ObjectiveKey is the objective value at termination
	// (negative log marginal likelihood).
	ObjectiveKey = "optimizer.objective"
)
