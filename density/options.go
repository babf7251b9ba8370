package density

import "math/rand"

// Option configures an Estimator at construction time.
type Option func(*Estimator)

// WithRand overrides the estimator's random source, used only for
// Quickselect's pivot choice. Deterministic seeding is acceptable: no
// public contract depends on a particular RNG, only on the resulting
// order statistic.
func WithRand(rng *rand.Rand) Option {
	return func(e *Estimator) {
		e.rng = rng
	}
}
