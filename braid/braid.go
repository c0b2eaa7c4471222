// SPDX-License-Identifier: MIT

package braid

import (
	"fmt"
)

// Braid is an element of the braid group B_n in left-greedy normal form
//
//	D^p · A_1 · A_2 · … · A_k
//
// where no A_i is the identity or D, and every adjacent pair is left-weighted:
// meet(A_i⁻¹·D, A_{i+1}) is the identity. The form is unique, so two braids
// are equal exactly when (n, p, A_1…A_k) match.
//
// A Braid is immutable; every operation returns a new value.
type Braid struct {
	n      int         // number of strands; 0 only for the wildcard identity
	p      int         // power of D
	a      []*Factor   // canonical factors, left-weighted
	deltas *DeltaCache // source of D for this width
}

// MaxWidth is the largest strand count accepted by the constructors, Parse
// and Random. A factor of width n holds n ints.
const MaxWidth = 1 << 16

const panicIdentityWidth = "braid: Identity: width exceeds MaxWidth"

// Identity returns the trivial braid of width n. Identity(0) is a wildcard
// that equals the trivial braid of every width. It panics if n > MaxWidth.
func Identity(n int, opts ...Option) *Braid {
	if n < 0 {
		n = 0
	}
	if n > MaxWidth {
		panic(panicIdentityWidth)
	}
	o := gatherOptions(opts...)

	return &Braid{n: n, deltas: o.deltas}
}

// FromArtin builds the braid of an Artin word. Generator x > 0 is σ_x and
// x < 0 is σ_{−x}⁻¹; every generator must satisfy 0 < |x| < n.
//
// σ_x becomes band generator [x+1, x] and σ_x⁻¹ becomes [x, x+1].
//
// Errors: ErrConstruction for n outside [1, MaxWidth] or a generator out of
// range.
func FromArtin(word []int, n int, opts ...Option) (*Braid, error) {
	if err := checkWidth("FromArtin", n); err != nil {
		return nil, err
	}
	band := make([][2]int, len(word))
	for i, x := range word {
		switch {
		case 0 < x && x < n:
			band[i] = [2]int{x + 1, x}
		case -n < x && x < 0:
			band[i] = [2]int{-x, 1 - x}
		default:
			return nil, constructionErrorf("FromArtin", ErrIndexOutOfRange, "generator %d at position %d in width %d", x, i, n)
		}
	}

	return fromBand(band, n, gatherOptions(opts...)), nil
}

// FromBand builds the braid of a band-generator word. Pair [t, s] with t > s
// is the positive generator a_{t,s}, t < s its inverse, t == s the identity.
// Components are 1-based strand numbers in [1, n]. The input is not modified.
//
// Errors: ErrConstruction for n outside [1, MaxWidth] or a component out of
// range.
func FromBand(word [][2]int, n int, opts ...Option) (*Braid, error) {
	if err := checkWidth("FromBand", n); err != nil {
		return nil, err
	}
	band := make([][2]int, len(word))
	for i, g := range word {
		if g[0] < 1 || g[0] > n || g[1] < 1 || g[1] > n {
			return nil, constructionErrorf("FromBand", ErrIndexOutOfRange, "pair %v at position %d in width %d", g, i, n)
		}
		band[i] = g
	}

	return fromBand(band, n, gatherOptions(opts...)), nil
}

// FromFactors wraps a power of D and a factor list that is already in
// left-greedy normal form. No normalization is performed; this is the entry
// point for callers that hold a canonical list (e.g. one read back from
// Factors).
//
// Errors: ErrConstruction for n outside [1, MaxWidth], a nil factor, a
// factor of another width, or a factor equal to the identity or D.
func FromFactors(p int, factors []*Factor, n int, opts ...Option) (*Braid, error) {
	if err := checkWidth("FromFactors", n); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	if len(factors) == 0 {
		return &Braid{n: n, p: p, deltas: o.deltas}, nil
	}
	delta := o.deltas.Delta(n)
	a := make([]*Factor, len(factors))
	for i, f := range factors {
		switch {
		case f == nil:
			return nil, constructionErrorf("FromFactors", ErrNotCanonical, "nil factor at position %d", i)
		case f.Width() != n:
			return nil, constructionErrorf("FromFactors", ErrIncompatibleWidth, "factor %d has width %d, want %d", i, f.Width(), n)
		case f.IsIdentity(), f.Equal(delta):
			return nil, constructionErrorf("FromFactors", ErrNotCanonical, "factor %d is %v", i, f)
		}
		a[i] = f
	}

	return &Braid{n: n, p: p, a: a, deltas: o.deltas}, nil
}

// FromPermutations builds D^p·F_1·…·F_k from raw array forms and normalizes
// the result. Every form must be a canonical factor of width n.
//
// Errors: ErrConstruction for n outside [1, MaxWidth], or (with
// ErrNotCanonical, ErrIncompatibleWidth or permutation.ErrNotBijection) for a
// bad form.
func FromPermutations(p int, forms [][]int, n int, opts ...Option) (*Braid, error) {
	if err := checkWidth("FromPermutations", n); err != nil {
		return nil, err
	}
	a := make([]*Factor, len(forms))
	for i, form := range forms {
		if len(form) != n {
			return nil, constructionErrorf("FromPermutations", ErrIncompatibleWidth, "factor %d has width %d, want %d", i, len(form), n)
		}
		f, err := NewFactor(form)
		if err != nil {
			return nil, braidErrorf(fmt.Sprintf("FromPermutations: factor %d", i), err)
		}
		a[i] = f
	}

	return normalize(n, p, a, gatherOptions(opts...).deltas), nil
}

// checkWidth rejects n outside [1, MaxWidth].
func checkWidth(method string, n int) error {
	if n < 1 || n > MaxWidth {
		return constructionErrorf(method, ErrIndexOutOfRange, "width %d outside [1, %d]", n, MaxWidth)
	}

	return nil
}

// Clone returns an independent copy of b.
func (b *Braid) Clone() *Braid {
	return &Braid{n: b.n, p: b.p, a: append([]*Factor(nil), b.a...), deltas: b.deltas}
}

// Width returns the number of strands n.
func (b *Braid) Width() int {
	return b.n
}

// Power returns p, the exponent of D.
func (b *Braid) Power() int {
	return b.p
}

// Len returns k, the number of canonical factors.
func (b *Braid) Len() int {
	return len(b.a)
}

// Factors returns a copy of the factor list A_1…A_k.
func (b *Braid) Factors() []*Factor {
	return append([]*Factor(nil), b.a...)
}

// Factor returns A_{i+1} (0-based index i).
//
// Errors: ErrIndexOutOfRange if i is outside [0, Len()).
func (b *Braid) Factor(i int) (*Factor, error) {
	if i < 0 || i >= len(b.a) {
		return nil, braidErrorf("Braid.Factor", ErrIndexOutOfRange)
	}

	return b.a[i], nil
}

// Delta returns the fundamental element D of b's width.
func (b *Braid) Delta() *Factor {
	return b.deltaCache().Delta(b.n)
}

// IsIdentity reports whether b is the trivial braid.
func (b *Braid) IsIdentity() bool {
	return b.p == 0 && len(b.a) == 0
}

// deltaCache tolerates a zero-value Braid.
func (b *Braid) deltaCache() *DeltaCache {
	if b.deltas == nil {
		return sharedDeltas
	}

	return b.deltas
}
