// SPDX-License-Identifier: MIT

package factorization

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/garside/braid"
)

// Factorization is an ordered list of braids of one width n.
// It is immutable; Twist returns a new value.
type Factorization struct {
	n      int
	braids []*braid.Braid
}

// New builds a factorization of width n from braids (copied).
// The empty list is allowed and multiplies to the identity.
//
// Errors:
//   - ErrInvalidWidth if n is outside [1, braid.MaxWidth].
//   - ErrNilBraid for a nil entry.
//   - ErrIncompatibleWidth for a braid of another width.
func New(n int, braids ...*braid.Braid) (*Factorization, error) {
	if n < 1 || n > braid.MaxWidth {
		return nil, fmt.Errorf("New: %w: %d", ErrInvalidWidth, n)
	}
	out := make([]*braid.Braid, len(braids))
	for i, b := range braids {
		switch {
		case b == nil:
			return nil, fmt.Errorf("New: %w at position %d", ErrNilBraid, i)
		case b.Width() != n:
			return nil, fmt.Errorf("New: %w: braid %d has width %d, want %d", ErrIncompatibleWidth, i, b.Width(), n)
		}
		out[i] = b
	}

	return &Factorization{n: n, braids: out}, nil
}

// Width returns the common braid width n.
func (f *Factorization) Width() int { return f.n }

// Len returns the number of braids.
func (f *Factorization) Len() int { return len(f.braids) }

// Braids returns a copy of the braid list.
func (f *Factorization) Braids() []*braid.Braid {
	return append([]*braid.Braid(nil), f.braids...)
}

// At returns the i-th braid (0-based).
//
// Errors: ErrIndexOutOfRange if i is outside [0, Len()).
func (f *Factorization) At(i int) (*braid.Braid, error) {
	if i < 0 || i >= len(f.braids) {
		return nil, factorizationErrorf("At", fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(f.braids)))
	}

	return f.braids[i], nil
}

// Twist applies the Hurwitz move i and returns the new factorization.
//
//   - i > 0: (f_{i−1}, f_i) → (f_{i−1}·f_i·f_{i−1}⁻¹, f_{i−1})
//   - i < 0: (f_{−i−1}, f_{−i}) → (f_{−i}, f_{−i}⁻¹·f_{−i−1}·f_{−i})
//
// Twist(i) followed by Twist(−i) restores f, and Product is unchanged.
//
// Errors: ErrIndexOutOfRange unless 0 < |i| < Len().
func (f *Factorization) Twist(i int) (*Factorization, error) {
	m := len(f.braids)
	if i == 0 || i >= m || -i >= m {
		return nil, factorizationErrorf("Twist", fmt.Errorf("%w: move %d on %d braids", ErrIndexOutOfRange, i, m))
	}

	out := f.Braids()
	if i > 0 {
		a, b := out[i-1], out[i]
		out[i-1], out[i] = mul(mul(a, b), a.Inverse()), a
	} else {
		j := -i
		a, b := out[j-1], out[j]
		out[j-1], out[j] = b, mul(mul(b.Inverse(), a), b)
	}

	return &Factorization{n: f.n, braids: out}, nil
}

// Product returns f_0·f_1·…·f_{m−1}; the identity for an empty list.
func (f *Factorization) Product() *braid.Braid {
	out := braid.Identity(f.n)
	for _, b := range f.braids {
		out = mul(out, b)
	}

	return out
}

// Complexity sums m over every braid.
func (f *Factorization) Complexity(m Measure) int {
	total := 0
	for _, b := range f.braids {
		total += m.Of(b)
	}

	return total
}

// Strings returns the canonical string of every braid, in order.
func (f *Factorization) Strings() []string {
	out := make([]string, len(f.braids))
	for i, b := range f.braids {
		out[i] = b.String()
	}

	return out
}

// String joins Strings with " | ". Equal factorizations print identically,
// so the result doubles as a lookup key.
func (f *Factorization) String() string {
	return strings.Join(f.Strings(), " | ")
}

// Equal reports whether f and g have the same width and pairwise equal braids.
func (f *Factorization) Equal(g *Factorization) bool {
	if f.n != g.n || len(f.braids) != len(g.braids) {
		return false
	}
	for i, b := range f.braids {
		if !b.Equal(g.braids[i]) {
			return false
		}
	}

	return true
}

// Apply runs the moves in order and stops at the first invalid one.
func (f *Factorization) Apply(moves ...int) (*Factorization, error) {
	out := f
	for _, i := range moves {
		next, err := out.Twist(i)
		if err != nil {
			return nil, err
		}
		out = next
	}

	return out, nil
}

// mul multiplies two braids of the factorization width.
func mul(x, y *braid.Braid) *braid.Braid {
	z, _ := x.Multiply(y) // widths agree by construction

	return z
}
