// SPDX-License-Identifier: MIT
// Package braid_test contains unit tests for the complexity measures.
package braid_test

import (
	"testing"

	"github.com/katalvlaran/garside/braid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComplexityMeasures checks (p, k) and the three measures on fixed words.
func TestComplexityMeasures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n                         int
		word                      []int
		p, k, canon, trans, mixed int
	}{
		{5, []int{-3, 2}, -1, 2, 3, 8, 2},
		{5, []int{1, 2, -1, 2}, -1, 4, 5, 10, 8},
		{6, []int{5, 1, -2, 4, 3, -1, -2}, -2, 4, 6, 21, 7},
		{4, []int{-1, -2, -1, 3, 2}, -2, 3, 5, 11, 4},
		{4, []int{2, -1, -3, 2, 1, 2}, -1, 3, 4, 8, 3},
		{3, []int{-1, -1, 2, 2}, -2, 4, 6, 8, 4},
		{3, []int{-1, -2}, -1, 0, 1, 2, 2},
		{4, []int{-1, -2, -3, -1}, -2, 1, 3, 8, 7},
		{5, []int{-2}, -1, 1, 2, 7, 5},
		{4, []int{1, 2, 1, 3, 3, 2, 3, 1, 2}, 2, 2, 4, 9, 9},
		{3, []int{1, 2, 1}, 1, 1, 2, 3, 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(mustArtin(t, tc.n, tc.word...).String(), func(t *testing.T) {
			b := mustArtin(t, tc.n, tc.word...)
			assert.Equal(t, tc.p, b.Power(), "p")
			assert.Equal(t, tc.k, b.Len(), "k")
			assert.Equal(t, tc.canon, b.CanonicalLength(), "canonical length")
			assert.Equal(t, tc.trans, b.NumTranspositions(), "transpositions")
			assert.Equal(t, tc.mixed, b.NumMixedTranspositions(), "mixed transpositions")
		})
	}
}

// TestComplexity_Identity ensures every measure vanishes on the identity.
func TestComplexity_Identity(t *testing.T) {
	for _, b := range []*braid.Braid{braid.Identity(0), braid.Identity(5), mustArtin(t, 4, 3, -3)} {
		assert.Zero(t, b.CanonicalLength())
		assert.Zero(t, b.NumTranspositions())
		assert.Zero(t, b.NumMixedTranspositions())
	}
}

// TestComplexity_PositiveBraids ensures the mixed count agrees with the plain
// count when p ≥ 0, and that positive words never exceed their own length.
func TestComplexity_PositiveBraids(t *testing.T) {
	for _, w := range [][]int{{1}, {1, 2, 1}, {3, 1, 2, 2, 1}, {1, 1, 1, 1}} {
		b := mustArtin(t, 4, w...)
		require.GreaterOrEqual(t, b.Power(), 0)
		assert.Equal(t, b.NumTranspositions(), b.NumMixedTranspositions())
		assert.Equal(t, len(w), b.NumTranspositions(), "a positive Artin word is a positive band word")
	}
}

// TestPermutation checks the induced strand permutation.
func TestPermutation(t *testing.T) {
	tests := []struct {
		n    int
		word []int
		want []int
	}{
		{5, []int{1}, []int{1, 0, 2, 3, 4}},
		{3, []int{1, 2}, []int{1, 2, 0}},
		{4, []int{-1, 2, 3}, []int{1, 2, 3, 0}},
		{4, []int{2, -1, -3, 2, 1, 2}, []int{3, 0, 2, 1}},
		{4, []int{}, []int{0, 1, 2, 3}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, mustArtin(t, tc.n, tc.word...).Permutation().Slice(), "word %v", tc.word)
	}

	assert.Zero(t, braid.Identity(0).Permutation().Size())
}

// TestPermutation_Homomorphism checks P(x·y) = P(x)·P(y) on random words.
func TestPermutation_Homomorphism(t *testing.T) {
	for n := 2; n <= 6; n++ {
		words := randomWords(400+int64(n), n, 16, 10)
		for i := 0; i+1 < len(words); i++ {
			x, y := mustArtin(t, n, words[i]...), mustArtin(t, n, words[i+1]...)
			want, err := y.Permutation().Compose(x.Permutation())
			require.NoError(t, err)
			assert.True(t, mustMultiply(t, x, y).Permutation().Equal(want))
		}
	}
}
