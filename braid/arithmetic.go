// SPDX-License-Identifier: MIT

package braid

import "fmt"

// Multiply returns b·c in normal form.
//
// Implementation:
//   - Stage 1: identity shortcuts on either side.
//   - Stage 2: D^p·A·D^q·B = D^{p+q}·τ^q(A)·B, so every factor of b is
//     conjugated by τ^q and the factor lists are concatenated.
//   - Stage 3: the concatenation is generally not left-weighted; normalize.
//
// Errors: ErrIncompatibleWidth for different non-zero widths.
func (b *Braid) Multiply(c *Braid) (*Braid, error) {
	if err := sameWidth("Braid.Multiply", b, c); err != nil {
		return nil, err
	}

	return b.product(c), nil
}

// product is Multiply for operands already known to be compatible.
func (b *Braid) product(c *Braid) *Braid {
	switch {
	case b.IsIdentity() && b.n == 0:
		return c.Clone()
	case c.IsIdentity():
		return b.Clone()
	case b.IsIdentity():
		return c.Clone()
	}

	a := make([]*Factor, 0, len(b.a)+len(c.a))
	for _, f := range b.a {
		a = append(a, f.Tau(c.p))
	}
	a = append(a, c.a...)

	return normalize(b.n, b.p+c.p, a, b.deltaCache())
}

// Inverse returns b⁻¹ in normal form.
//
// With A_i⁻¹ = (A_i⁻¹·D)·D⁻¹, the D⁻¹ factors are collected on the left and
// the complements are conjugated accordingly:
//
//	A'_i = τ^{−(p+i+1)}(A_i⁻¹·D) for i = k−1 … 0,   p' = −p−k
func (b *Braid) Inverse() *Braid {
	if b.IsIdentity() {
		return b.Clone()
	}
	delta := b.Delta()
	k := len(b.a)
	a := make([]*Factor, 0, k)
	for i := k - 1; i >= 0; i-- {
		a = append(a, b.a[i].Inverse().mul(delta).Tau(-b.p-i-1))
	}

	return normalize(b.n, -b.p-k, a, b.deltaCache())
}

// Pow returns b^e. Pow(0) is the identity of b's width and negative
// exponents use the inverse.
//
// Complexity: O(log |e|) products.
func (b *Braid) Pow(e int) *Braid {
	base := b
	if e < 0 {
		base = b.Inverse()
		e = -e
	}
	out := &Braid{n: b.n, deltas: b.deltaCache()}
	for e > 0 {
		if e&1 == 1 {
			out = out.product(base)
		}
		e >>= 1
		if e > 0 {
			base = base.product(base)
		}
	}

	return out
}

// Equal reports whether b and c are the same group element.
// If either width is 0 the wildcard rule applies: the other must be trivial.
// Otherwise widths must agree and the normal forms must match.
func (b *Braid) Equal(c *Braid) bool {
	switch {
	case b.n == 0:
		return c.IsIdentity()
	case c.n == 0:
		return b.IsIdentity()
	case b.n != c.n, b.p != c.p, len(b.a) != len(c.a):
		return false
	}
	for i, f := range b.a {
		if !f.Equal(c.a[i]) {
			return false
		}
	}

	return true
}

// Twist returns b·σ_i for i > 0 and b·σ_{−i}⁻¹ for i < 0.
//
// Errors: ErrIndexOutOfRange unless 0 < |i| < n.
func (b *Braid) Twist(i int) (*Braid, error) {
	n := b.n
	switch {
	case 0 < i && i < n:
		a := append(b.Factors(), factorFromPair(i+1, i, n))

		return normalize(n, b.p, a, b.deltaCache()), nil
	case -n < i && i < 0:
		a := make([]*Factor, 0, len(b.a)+1)
		for _, f := range b.a {
			a = append(a, f.Tau(-1))
		}
		a = append(a, factorFromPair(-i, 1-i, n))

		return normalize(n, b.p-1, a, b.deltaCache()), nil
	default:
		return nil, braidErrorf("Braid.Twist", fmt.Errorf("%w: generator %d in width %d", ErrIndexOutOfRange, i, n))
	}
}

// sameWidth rejects different non-zero widths.
func sameWidth(method string, b, c *Braid) error {
	if b.n != 0 && c.n != 0 && b.n != c.n {
		return braidErrorf(method, fmt.Errorf("%w: %d vs %d", ErrIncompatibleWidth, b.n, c.n))
	}

	return nil
}
