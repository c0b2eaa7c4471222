// SPDX-License-Identifier: MIT

package braid

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/garside/permutation"
)

// Factor is a canonical factor: a simple element of the band-generator braid
// monoid, represented by its permutation.
//
// Product convention: A.Mul(B) is the monoid product A·B and has array form
// (A·B)[i] = A[B[i]].
//
// A Factor is immutable. Its descending-cycle array is computed lazily at most
// once, so a *Factor may be shared between goroutines.
type Factor struct {
	perm permutation.Permutation

	once   sync.Once
	cycles []int // descending-cycle maxima, filled by once
}

// NewFactor validates form as a canonical factor.
//
// Errors (always together with ErrConstruction):
//   - permutation.ErrNotBijection if form is not a permutation.
//   - ErrNotCanonical if form is a permutation but not a simple element.
//
// Complexity: O(n).
func NewFactor(form []int) (*Factor, error) {
	p, err := permutation.New(form)
	if err != nil {
		return nil, constructionErrorf("NewFactor", err, "%v", form)
	}
	f := &Factor{perm: p}
	if !f.isSimple() {
		return nil, constructionErrorf("NewFactor", ErrNotCanonical, "%v", form)
	}

	return f, nil
}

// FactorFromPair returns the factor of band generator a_{t,s} in width n.
//
//   - t > s: the transposition of strands t and s (1-based).
//   - t < s: the D-shifted form D·a_{s,t}⁻¹ of the negative generator, i.e.
//     D with positions t−1 and s−1 overwritten by (s−2) mod n and (t−2) mod n.
//   - t == s: the identity.
//
// Errors: ErrIndexOutOfRange if n < 1 or t, s fall outside [1, n].
func FactorFromPair(t, s, n int) (*Factor, error) {
	if n < 1 || t < 1 || t > n || s < 1 || s > n {
		return nil, braidErrorf("FactorFromPair", fmt.Errorf("%w: pair [%d %d] in width %d", ErrIndexOutOfRange, t, s, n))
	}

	return factorFromPair(t, s, n), nil
}

// factorFromPair is FactorFromPair without validation.
func factorFromPair(t, s, n int) *Factor {
	form := make([]int, n)
	switch {
	case t > s:
		for i := range form {
			form[i] = i
		}
		form[t-1], form[s-1] = s-1, t-1
	case t < s:
		form[0] = n - 1
		for i := 1; i < n; i++ {
			form[i] = i - 1
		}
		form[t-1] = mod(s-2, n)
		form[s-1] = mod(t-2, n)
	default:
		for i := range form {
			form[i] = i
		}
	}

	return &Factor{perm: permutation.FromTrusted(form)}
}

// identityFactor returns the identity of width n (n == 0 is the wildcard).
func identityFactor(n int) *Factor {
	return &Factor{perm: permutation.Identity(n)}
}

// Width returns the number of strands; 0 for the wildcard identity.
func (f *Factor) Width() int {
	return f.perm.Size()
}

// Permutation returns the underlying permutation.
func (f *Factor) Permutation() permutation.Permutation {
	return f.perm
}

// Slice returns a copy of the array form.
func (f *Factor) Slice() []int {
	return f.perm.Slice()
}

// IsIdentity reports whether f is the identity of any width.
func (f *Factor) IsIdentity() bool {
	return f.perm.IsIdentity()
}

// Equal compares array forms; a width-0 operand equals any identity.
func (f *Factor) Equal(g *Factor) bool {
	return f.perm.Equal(g.perm)
}

// Mul returns the monoid product f·g.
//
// Errors: ErrIncompatibleWidth if both widths are non-zero and differ.
func (f *Factor) Mul(g *Factor) (*Factor, error) {
	p, err := g.perm.Compose(f.perm)
	if err != nil {
		return nil, braidErrorf("Factor.Mul", err)
	}

	return &Factor{perm: p}, nil
}

// mul is Mul for operands already known to share a width.
func (f *Factor) mul(g *Factor) *Factor {
	p, _ := g.perm.Compose(f.perm)

	return &Factor{perm: p}
}

// Inverse returns the permutation inverse of f.
func (f *Factor) Inverse() *Factor {
	return &Factor{perm: f.perm.Inverse()}
}

// Tau returns τ^power(f), where τ is the automorphism with A·D = D·τ(A):
//
//	τ^k(A)[i] = (A[(i−k) mod n] + k) mod n
//
// Tau(0) is a copy and τ^n is the identity map.
//
// Complexity: O(n).
func (f *Factor) Tau(power int) *Factor {
	n := f.Width()
	if n == 0 {
		return f
	}
	src := f.perm.Slice()
	form := make([]int, n)
	for i := range form {
		form[i] = mod(src[mod(i-power, n)]+power, n)
	}

	return &Factor{perm: permutation.FromTrusted(form)}
}

// NumTranspositions counts the band generators needed to write f: the number
// of indices i with f[i] < i.
func (f *Factor) NumTranspositions() int {
	count := 0
	for i, v := range f.perm.Slice() {
		if v < i {
			count++
		}
	}

	return count
}

// Transpositions writes f as band generators [t, s] (1-based, t > s).
// Pairs are listed from the highest index down, so replaying them as a band
// word reproduces f.
func (f *Factor) Transpositions() [][2]int {
	form := f.perm.Slice()
	out := make([][2]int, 0, len(form))
	for i := len(form) - 1; i >= 0; i-- {
		if form[i] < i {
			out = append(out, [2]int{i + 1, form[i] + 1})
		}
	}

	return out
}

// String prints the array form.
func (f *Factor) String() string {
	return f.perm.String()
}

// mod returns a mod n in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}
