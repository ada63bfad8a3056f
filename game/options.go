package game

import (
	"math/rand"

	"github.com/lixenwraith/xgalaga/status"
)

// Option customizes Game construction
type Option func(*options)

type options struct {
	rng      *rand.Rand
	seed     int64
	seeded   bool
	registry *status.Registry
}

// WithRand injects the random source, it takes precedence over WithSeed
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed seeds a private random source, overriding the config seed
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithStatus shares a metrics registry with the host
func WithStatus(r *status.Registry) Option {
	return func(o *options) { o.registry = r }
}
