// Package kernel provides covariance kernels for Gaussian Process
// regression.
//
// A kernel is a symmetric similarity function between two input vectors,
// parameterized by a hyperparameter vector. Every kernel in this package is
// normalized to unit self-similarity, k(x, x) = 1, so that a Gaussian
// Process prior built from it has a unit diagonal before observation noise
// is added.
package kernel

// Kernel evaluates the similarity between two input vectors and exposes a
// mutable view of its hyperparameters.
//
// Implementations must be symmetric (Evaluate(a, b) == Evaluate(b, a)) and
// return 1 when a == b. Both arguments must have the dimension the kernel
// was constructed for.
type Kernel interface {
	// Evaluate returns the similarity between a and b.
	Evaluate(a, b []float64) float64

	// Params returns the kernel's hyperparameter vector. The returned
	// slice aliases the kernel's internal storage: writing to it changes
	// the kernel, and the change is visible to every holder of the same
	// kernel. Callers that hand the parameters to an optimizer should
	// copy them out and back explicitly.
	Params() []float64
}
