// SPDX-License-Identifier: MIT

package braid

import "github.com/katalvlaran/garside/permutation"

// CanonicalLength is |p| + k, the length of the normal form counted in
// canonical factors and powers of D.
func (b *Braid) CanonicalLength() int {
	return abs(b.p) + len(b.a)
}

// NumTranspositions is the number of band generators in the normal form:
// each D contributes n−1 and each factor its own count.
func (b *Braid) NumTranspositions() int {
	total := (b.n - 1) * abs(b.p)
	for _, f := range b.a {
		total += f.NumTranspositions()
	}

	return total
}

// NumMixedTranspositions is the transposition count used for mixed
// canonical form (D. Epstein et al., Word Processing in Groups, 1992, p. 198),
// where factors paired with D⁻¹ count their complement n−1−t(A):
//
//   - p ≥ 0:      (n−1)·p + Σ t(A_i)
//   - p ≤ −k:     (n−1)·(−p) + Σ (n−1−t(A_i))
//   - −k < p < 0: the list splits at k+p; the first k+p factors count
//     n−1−t(A_i) and the last −p factors count t(A_i).
func (b *Braid) NumMixedTranspositions() int {
	k := len(b.a)
	switch {
	case b.p >= 0:
		return b.NumTranspositions()
	case b.p <= -k:
		total := (b.n - 1) * -b.p
		for _, f := range b.a {
			total += b.n - 1 - f.NumTranspositions()
		}

		return total
	}

	split := k + b.p
	total := 0
	for i, f := range b.a {
		if i < split {
			total += b.n - 1 - f.NumTranspositions()
		} else {
			total += f.NumTranspositions()
		}
	}

	return total
}

// Permutation is the permutation induced on the strands: D^p·A_1·…·A_k
// evaluated with the factor product convention. Width 0 yields the wildcard.
func (b *Braid) Permutation() permutation.Permutation {
	if b.n == 0 {
		return permutation.Permutation{}
	}
	out := b.Delta().perm.Pow(b.p)
	for _, f := range b.a {
		out, _ = f.perm.Compose(out) // (out·A)[i] = out[A[i]]
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
