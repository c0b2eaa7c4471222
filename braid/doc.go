// SPDX-License-Identifier: MIT

// Package braid computes the left-greedy (Garside) normal form of braids in
// the band-generator presentation of B_n, and performs exact group arithmetic
// on it.
//
// 🚀 What is the normal form?
//
//	Every braid has a unique expression D^p · A_1 · A_2 · … · A_k where D is
//	the fundamental element (the half-twist of the band monoid) and each A_i
//	is a canonical factor: a simple element, stored as a permutation whose
//	descending cycles do not cross. The factors are left-weighted, i.e. no
//	piece of A_{i+1} can be pushed into A_i. Equality of braids is therefore
//	structural equality of (n, p, A_1…A_k).
//
// ✨ Key features:
//   - named constructors: FromArtin, FromBand, FromFactors, FromPermutations,
//     Parse, Identity, Random
//   - group arithmetic: Multiply, Inverse, Pow, Equal, Twist
//   - lattice operations on factors: Meet, Tau, DescendingCycles,
//     Transpositions
//   - complexity measures: CanonicalLength, NumTranspositions,
//     NumMixedTranspositions
//   - canonical string form "[n] D^(p) * [f1] * … * [fk]" with Parse and
//     encoding.TextMarshaler
//
// ⚙️ Usage:
//
//	x, _ := braid.FromArtin([]int{1, 2, 1}, 3)
//	y, _ := braid.FromArtin([]int{2, 1, 2}, 3)
//	fmt.Println(x.Equal(y)) // true: the braid relation
//	fmt.Println(x)          // [3] D^(1) * [0, 2, 1]
//
//	z, err := x.Multiply(y.Inverse()) // identity
//
// Algorithm: J. C. Cha, K. H. Ko, S. J. Lee, J. W. Han, J. H. Cheon,
// "An Efficient Implementation of Braid Groups", ASIACRYPT 2001.
//
// Widths are bounded by MaxWidth; constructors and Parse reject anything
// larger.
//
// Concurrency: Braid and Factor values are immutable and safe to share.
// The per-width cache of D (DeltaCache) is mutex-guarded; select one with
// WithDeltaCache or rely on the package default.
//
// Performance:
//   - FromArtin/FromBand on a word of length k: O(k²·n log n) worst case.
//   - Multiply/Inverse: same bound in the total number of factors.
package braid
