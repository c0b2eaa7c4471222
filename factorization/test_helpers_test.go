// SPDX-License-Identifier: MIT
package factorization_test

import (
	"testing"

	"github.com/katalvlaran/garside/braid"
	"github.com/katalvlaran/garside/factorization"
	"github.com/stretchr/testify/require"
)

// mustArtin builds a braid from an Artin word or fails the test.
func mustArtin(t testing.TB, n int, word ...int) *braid.Braid {
	t.Helper()
	b, err := braid.FromArtin(word, n)
	require.NoError(t, err)

	return b
}

// generators returns the factorization (σ_{w_0}, σ_{w_1}, …) in width n.
func generators(t testing.TB, n int, word ...int) *factorization.Factorization {
	t.Helper()
	braids := make([]*braid.Braid, len(word))
	for i, x := range word {
		braids[i] = mustArtin(t, n, x)
	}
	f, err := factorization.New(n, braids...)
	require.NoError(t, err)

	return f
}

// scrambled applies moves to f or fails the test.
func scrambled(t testing.TB, f *factorization.Factorization, moves ...int) *factorization.Factorization {
	t.Helper()
	g, err := f.Apply(moves...)
	require.NoError(t, err)

	return g
}
