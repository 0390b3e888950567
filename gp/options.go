package gp

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/scigp/pkg/log"
)

// Option is a function that configures a GaussianProcess at construction.
type Option func(*GaussianProcess)

// WithRandSource sets the random source used by the bootstrapping
// constructors to sample points and targets. Injecting a seeded source
// makes construction deterministic and testable.
func WithRandSource(src rand.Source) Option {
	return func(g *GaussianProcess) {
		g.src = src
	}
}

// WithLogger sets the structured logger used by the model.
func WithLogger(logger log.Logger) Option {
	return func(g *GaussianProcess) {
		g.logger = logger
	}
}
