// SPDX-License-Identifier: MIT
// Package braid_test contains shared fixtures for the braid tests.
//
// Purpose:
//   - Keep constructors in tests one line long (fatal on error).
//   - Provide small deterministic word corpora for property checks.

package braid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/garside/braid"
	"github.com/stretchr/testify/require"
)

// mustArtin builds a braid from an Artin word or fails the test.
func mustArtin(t testing.TB, n int, word ...int) *braid.Braid {
	t.Helper()
	b, err := braid.FromArtin(word, n)
	require.NoError(t, err)

	return b
}

// mustFactor builds a canonical factor or fails the test.
func mustFactor(t testing.TB, form ...int) *braid.Factor {
	t.Helper()
	f, err := braid.NewFactor(form)
	require.NoError(t, err)

	return f
}

// mustMultiply multiplies or fails the test.
func mustMultiply(t testing.TB, x, y *braid.Braid) *braid.Braid {
	t.Helper()
	z, err := x.Multiply(y)
	require.NoError(t, err)

	return z
}

// forms returns the array forms of b's factors.
func forms(b *braid.Braid) [][]int {
	out := make([][]int, 0, b.Len())
	for _, f := range b.Factors() {
		out = append(out, f.Slice())
	}

	return out
}

// randomWords returns count deterministic Artin words for width n.
func randomWords(seed int64, n, count, maxLen int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]int, count)
	for i := range out {
		out[i] = braid.RandomWord(n, 1+rng.Intn(maxLen), rng)
	}

	return out
}

// permutationsOf lists every permutation of {0,…,n−1} (Heap's algorithm).
func permutationsOf(n int) [][]int {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	var out [][]int
	var gen func(k int)
	gen = func(k int) {
		if k == 1 {
			out = append(out, append([]int(nil), a...))

			return
		}
		for i := 0; i < k; i++ {
			gen(k - 1)
			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
		}
	}
	gen(n)

	return out
}
