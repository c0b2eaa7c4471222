// SPDX-License-Identifier: MIT

// Package braid: functional configuration.
// Option values configure constructors and generators:
//   - WithDeltaCache selects the per-width cache of the fundamental element D.
//   - WithSeed / WithRand control the randomness used by Random.
//
// Defaults are deterministic: seed 0 selects DefaultSeed, and without
// WithDeltaCache every braid shares one package-level cache.
package braid

import "math/rand"

// DefaultSeed is used when no seed (or seed 0) is supplied to Random.
const DefaultSeed int64 = 1

const (
	panicNilDeltaCache = "braid: WithDeltaCache: cache must be non-nil"
	panicNilRand       = "braid: WithRand: rng must be non-nil"
)

// sharedDeltas backs every braid built without WithDeltaCache.
var sharedDeltas = NewDeltaCache()

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	deltas *DeltaCache // cache of D per width; never nil after gatherOptions
	seed   int64       // 0 ⇒ DefaultSeed
	rng    *rand.Rand  // explicit generator; overrides seed when set
}

// WithDeltaCache makes the braid use c for its fundamental elements.
// Braids built from different caches interoperate; D(n) is a pure function of n.
func WithDeltaCache(c *DeltaCache) Option {
	if c == nil {
		panic(panicNilDeltaCache)
	}

	return func(o *Options) { o.deltas = c }
}

// WithSeed fixes the seed used by Random. Seed 0 maps to DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand supplies the generator used by Random. It is consumed, not copied,
// and *rand.Rand is not safe for concurrent use.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(o *Options) { o.rng = r }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{deltas: sharedDeltas}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
