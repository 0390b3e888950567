package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// Matern32 is the Matérn kernel with smoothness ν = 3/2 and a single
// length scale shared across dimensions:
//
//	k(r) = (1 + √3 r/l) * exp(-√3 r/l),  r = ‖a - b‖
//
// The hyperparameter vector is [l]. The length scale is used through its
// absolute value so the kernel stays valid under unconstrained
// optimization.
type Matern32 struct {
	params []float64
}

var _ Kernel = (*Matern32)(nil)

// NewMatern32 creates a Matérn 3/2 kernel with the given length scale.
func NewMatern32(lengthScale float64) (*Matern32, error) {
	if lengthScale == 0 {
		return nil, errors.NewValidationError("lengthScale", "must be non-zero", lengthScale)
	}
	return &Matern32{params: []float64{lengthScale}}, nil
}

// Evaluate returns the Matérn 3/2 similarity between a and b.
func (k *Matern32) Evaluate(a, b []float64) float64 {
	s := math.Sqrt(3) * dist(a, b) / math.Abs(k.params[0])
	return (1 + s) * math.Exp(-s)
}

// Params returns the mutable hyperparameter vector [lengthScale].
func (k *Matern32) Params() []float64 {
	return k.params
}

// Matern52 is the Matérn kernel with smoothness ν = 5/2 and a single
// length scale shared across dimensions:
//
//	k(r) = (1 + √5 r/l + 5r²/3l²) * exp(-√5 r/l),  r = ‖a - b‖
type Matern52 struct {
	params []float64
}

var _ Kernel = (*Matern52)(nil)

// NewMatern52 creates a Matérn 5/2 kernel with the given length scale.
func NewMatern52(lengthScale float64) (*Matern52, error) {
	if lengthScale == 0 {
		return nil, errors.NewValidationError("lengthScale", "must be non-zero", lengthScale)
	}
	return &Matern52{params: []float64{lengthScale}}, nil
}

// Evaluate returns the Matérn 5/2 similarity between a and b.
func (k *Matern52) Evaluate(a, b []float64) float64 {
	s := math.Sqrt(5) * dist(a, b) / math.Abs(k.params[0])
	return (1 + s + s*s/3) * math.Exp(-s)
}

// Params returns the mutable hyperparameter vector [lengthScale].
func (k *Matern52) Params() []float64 {
	return k.params
}

func dist(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}
