// SPDX-License-Identifier: MIT

// Package braid: deterministic random braids.
//
// Goals:
//   - Determinism: same seed ⇒ identical braid across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a generator passed via
//     WithRand across goroutines; use WithSeed per goroutine instead.
package braid

import (
	"fmt"
	"math/rand"
)

// Random returns the normal form of a uniformly random Artin word of the
// given length in width n: every letter is σ_i or σ_i⁻¹, 1 ≤ i < n.
//
// Options: WithSeed (0 ⇒ DefaultSeed), WithRand, WithDeltaCache.
//
// Errors: ErrConstruction if length < 0, n is outside [1, MaxWidth], or
// n == 1 with length > 0.
func Random(n, length int, opts ...Option) (*Braid, error) {
	if n < 1 || n > MaxWidth || length < 0 || (n == 1 && length > 0) {
		return nil, constructionErrorf("Random", ErrIndexOutOfRange, "width %d, length %d", n, length)
	}
	o := gatherOptions(opts...)
	word := RandomWord(n, length, rngFrom(o))

	b, err := FromArtin(word, n, WithDeltaCache(o.deltas))
	if err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}

	return b, nil
}

// RandomWord draws length Artin generators for width n ≥ 2 from rng.
// If rng is nil the DefaultSeed stream is used.
//
// Complexity: O(length).
func RandomWord(n, length int, rng *rand.Rand) []int {
	if n < 2 || length <= 0 {
		return []int{}
	}
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	word := make([]int, length)
	for i := range word {
		x := r.Intn(n-1) + 1 // 1..n-1
		if r.Intn(2) == 0 {
			x = -x
		}
		word[i] = x
	}

	return word
}

// rngFrom picks the explicit generator if present, else seeds one.
func rngFrom(o Options) *rand.Rand {
	if o.rng != nil {
		return o.rng
	}

	return rngFromSeed(o.seed)
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
