// SPDX-License-Identifier: MIT
// Package permutation_test contains unit tests for the Permutation value type.
package permutation_test

import (
	"testing"

	"github.com/katalvlaran/garside/permutation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustPerm builds a Permutation or fails the test.
func mustPerm(t *testing.T, form ...int) permutation.Permutation {
	t.Helper()
	p, err := permutation.New(form)
	require.NoError(t, err)

	return p
}

// TestNew_RejectsNonBijections covers out-of-range and repeated values.
func TestNew_RejectsNonBijections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		form []int
	}{
		{"negative", []int{0, -1, 2}},
		{"too large", []int{0, 1, 3}},
		{"repeat", []int{1, 1, 0}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := permutation.New(tc.form)
			require.ErrorIs(t, err, permutation.ErrNotBijection)
		})
	}
}

// TestNew_CopiesInput ensures later mutation of the input slice is invisible.
func TestNew_CopiesInput(t *testing.T) {
	form := []int{1, 0, 2}
	p, err := permutation.New(form)
	require.NoError(t, err)

	form[0] = 2
	require.Equal(t, []int{1, 0, 2}, p.Slice())
}

// TestCompose_Contract checks (p∘q)[i] = q[p[i]] on fixed values.
func TestCompose_Contract(t *testing.T) {
	x := mustPerm(t, 0, 1, 3, 2, 4)
	y := mustPerm(t, 2, 3, 4, 0, 1)

	xy, err := x.Compose(y)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 0, 4, 1}, xy.Slice())

	yx, err := y.Compose(x)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 4, 0, 1}, yx.Slice())
	assert.False(t, xy.Equal(yx), "composition is not commutative here")
}

// TestCompose_Associative checks (x∘y)∘z == x∘(y∘z).
func TestCompose_Associative(t *testing.T) {
	x := mustPerm(t, 0, 1, 3, 2, 4)
	y := mustPerm(t, 2, 3, 4, 0, 1)
	z := mustPerm(t, 1, 4, 0, 3, 2)

	xy, err := x.Compose(y)
	require.NoError(t, err)
	left, err := xy.Compose(z)
	require.NoError(t, err)

	yz, err := y.Compose(z)
	require.NoError(t, err)
	right, err := x.Compose(yz)
	require.NoError(t, err)

	require.True(t, left.Equal(right))
}

// TestCompose_WidthMismatch ensures sizes are never coerced.
func TestCompose_WidthMismatch(t *testing.T) {
	_, err := mustPerm(t, 1, 0).Compose(mustPerm(t, 0, 2, 1))
	require.ErrorIs(t, err, permutation.ErrIncompatibleWidth)
}

// TestWildcardIdentity covers the size-0 rules for Equal and Compose.
func TestWildcardIdentity(t *testing.T) {
	var wild permutation.Permutation
	p := mustPerm(t, 0, 2, 1)

	assert.True(t, wild.IsIdentity())
	assert.True(t, wild.Equal(permutation.Identity(4)))
	assert.True(t, permutation.Identity(7).Equal(wild))
	assert.False(t, p.Equal(wild))
	assert.False(t, wild.Equal(p))

	got, err := p.Compose(wild)
	require.NoError(t, err)
	assert.True(t, got.Equal(p))

	got, err = wild.Compose(p)
	require.NoError(t, err)
	assert.True(t, got.Equal(p))

	assert.Equal(t, 0, wild.Inverse().Size())
}

// TestInverse checks a fixed inverse and p∘p⁻¹ == id.
func TestInverse(t *testing.T) {
	z := mustPerm(t, 1, 4, 0, 3, 2)
	assert.Equal(t, []int{2, 0, 4, 3, 1}, z.Inverse().Slice())

	id, err := z.Compose(z.Inverse())
	require.NoError(t, err)
	assert.True(t, id.IsIdentity())
}

// TestPow covers positive, zero and negative exponents.
func TestPow(t *testing.T) {
	x := mustPerm(t, 0, 1, 3, 2, 4)
	y := mustPerm(t, 2, 3, 4, 0, 1)

	assert.True(t, x.Pow(2).IsIdentity())
	assert.True(t, y.Pow(5).IsIdentity())
	assert.True(t, y.Pow(0).IsIdentity())
	assert.Equal(t, 5, y.Pow(0).Size())
	assert.True(t, y.Pow(-1).Equal(y.Inverse()))
	assert.True(t, y.Pow(-3).Equal(y.Pow(2)))
}

// TestAt covers bounds checks and the wildcard passthrough.
func TestAt(t *testing.T) {
	p := mustPerm(t, 2, 0, 1)

	v, err := p.At(0)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = p.At(3)
	require.ErrorIs(t, err, permutation.ErrIndexOutOfRange)
	_, err = p.At(-1)
	require.ErrorIs(t, err, permutation.ErrIndexOutOfRange)

	var wild permutation.Permutation
	v, err = wild.At(42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

// TestString checks the bracketed array form.
func TestString(t *testing.T) {
	assert.Equal(t, "[0, 2, 1]", mustPerm(t, 0, 2, 1).String())
	assert.Equal(t, "[]", permutation.Permutation{}.String())
}
