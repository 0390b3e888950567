package kernel

import (
	"math"

	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// RBF is the squared-exponential (radial basis function) kernel with one
// length scale per input dimension (automatic relevance determination):
//
//	k(a, b) = exp(-0.5 * Σ_d ((a_d - b_d) / l_d)²)
//
// The hyperparameter vector is the length scales. Because each length
// scale enters squared, the kernel is insensitive to their sign, which
// keeps unconstrained optimizers out of trouble.
type RBF struct {
	lengthScales []float64
}

var _ Kernel = (*RBF)(nil)

// NewRBF creates an RBF kernel with the given per-dimension length scales.
// The slice is copied; mutate the kernel afterwards through Params.
func NewRBF(lengthScales []float64) (*RBF, error) {
	if len(lengthScales) == 0 {
		return nil, errors.NewValidationError("lengthScales", "must not be empty", lengthScales)
	}
	for _, l := range lengthScales {
		if l == 0 {
			return nil, errors.NewValidationError("lengthScales", "must be non-zero", lengthScales)
		}
	}
	ls := make([]float64, len(lengthScales))
	copy(ls, lengthScales)
	return &RBF{lengthScales: ls}, nil
}

// Evaluate returns exp(-0.5 * Σ ((a_d - b_d)/l_d)²).
// a and b must have the same length as the kernel's length-scale vector.
func (k *RBF) Evaluate(a, b []float64) float64 {
	var sum float64
	for d := range k.lengthScales {
		diff := (a[d] - b[d]) / k.lengthScales[d]
		sum += diff * diff
	}
	return math.Exp(-0.5 * sum)
}

// Params returns the mutable length-scale vector.
func (k *RBF) Params() []float64 {
	return k.lengthScales
}
