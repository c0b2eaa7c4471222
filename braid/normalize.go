// SPDX-License-Identifier: MIT

package braid

// fromBand turns a band word into a normalized braid. band is consumed.
//
// Implementation:
//   - Stage 1: sign extraction. Scan right to left with p = 0. Every negative
//     generator to the right of g_i contributes one D⁻¹ that is pushed to the
//     far left, conjugating g_i by τ^p on the way.
//   - Stage 2: map every pair to its factor (negative pairs map to D·a⁻¹).
//   - Stage 3: normalize.
func fromBand(band [][2]int, n int, o Options) *Braid {
	if len(band) == 0 {
		return &Braid{n: n, deltas: o.deltas}
	}

	p := 0
	for i := len(band) - 2; i >= 0; i-- {
		if band[i+1][0] < band[i+1][1] {
			p--
		}
		tauBand(&band[i], n, p)
	}
	if band[0][0] < band[0][1] {
		p--
	}

	a := make([]*Factor, len(band))
	for i, g := range band {
		a[i] = factorFromPair(g[0], g[1], n)
	}

	return normalize(n, p, a, o.deltas)
}

// tauBand replaces g by τ^power(g) in place: both strands shift by power,
// wrap into [1, n], and swap back if the shift flipped their orientation.
func tauBand(g *[2]int, n, power int) {
	if power == 0 {
		return
	}
	t, s := g[0]+power, g[1]+power
	positive := t > s
	t, s = mod(t-1, n)+1, mod(s-1, n)+1
	if positive != (t > s) {
		t, s = s, t
	}
	g[0], g[1] = t, s
}

// normalize brings D^p·a_1…a_k into left-greedy normal form. a is consumed.
// An empty list never touches the cache.
func normalize(n, p int, a []*Factor, deltas *DeltaCache) *Braid {
	if len(a) == 0 {
		return &Braid{n: n, p: p, deltas: deltas}
	}
	delta := deltas.Delta(n)
	a = leftWeight(a, delta)

	// Trailing identities carry no information.
	for len(a) > 0 && a[len(a)-1].IsIdentity() {
		a = a[:len(a)-1]
	}
	// Leading copies of D fold into the power.
	for len(a) > 0 && a[0].Equal(delta) {
		a = a[1:]
		p++
	}

	return &Braid{n: n, p: p, a: append([]*Factor(nil), a...), deltas: deltas}
}

// leftWeight runs the local-normalization sweep until no piece of any factor
// can move into its left neighbour.
//
// Implementation:
//   - The window is (leftmost, rightmost]; initially every adjacent pair.
//   - A pass walks j from rightmost down to leftmost+1. For the pair
//     (a_j, a_{j+1}) it takes b = meet(a_j⁻¹·D, a_{j+1}), the largest prefix
//     of a_{j+1} that a_j can absorb while staying simple. When b ≠ 1 the
//     piece moves left: a_{j+1} ← b⁻¹·a_{j+1}, a_j ← a_j·b.
//   - A factor emptied at the right edge shrinks rightmost.
//   - Pairs left of the lowest transfer are settled, so that index becomes
//     the next leftmost. A pass without transfers ends the sweep.
//
// Termination: leftmost never decreases and the sweep stops when it reaches
// rightmost, giving at most O(k²) meets.
//
// Returns a prefix of a; everything after it is the identity.
func leftWeight(a []*Factor, delta *Factor) []*Factor {
	leftmost, rightmost := -1, len(a)-2
	for leftmost < rightmost {
		lowest := rightmost
		for j := rightmost; j > leftmost; j-- {
			b := a[j].Inverse().mul(delta).meetOrIdentity(a[j+1])
			if b.IsIdentity() {
				continue
			}
			lowest = j
			next := b.Inverse().mul(a[j+1])
			if next.IsIdentity() && rightmost == j {
				rightmost--
			}
			a[j+1] = next
			a[j] = a[j].mul(b)
		}
		leftmost = lowest
	}

	return a[:rightmost+2]
}

// meetOrIdentity is meet with the identity shortcut, for equal widths.
func (f *Factor) meetOrIdentity(g *Factor) *Factor {
	if f.IsIdentity() || g.IsIdentity() {
		return identityFactor(f.Width())
	}

	return f.meet(g)
}
