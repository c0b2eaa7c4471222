// SPDX-License-Identifier: MIT

// Package factorization works with ordered lists of braids of one width,
// such as braid monodromy factorizations, through the Hurwitz action.
//
// 🚀 What is a Hurwitz move?
//
//	For a factorization (f_0, …, f_{m−1}) the move i > 0 replaces the pair
//	(f_{i−1}, f_i) by (f_{i−1}·f_i·f_{i−1}⁻¹, f_{i−1}); the move −i undoes it,
//	replacing (f_{i−1}, f_i) by (f_i, f_i⁻¹·f_{i−1}·f_i). Both keep the
//	product f_0·…·f_{m−1} fixed, so a search over moves looks for a simpler
//	factorization of the same braid.
//
// ✨ Key features:
//   - immutable Factorization with Twist, Product, Complexity, Strings
//   - three complexity measures (Measure): canonical length, transpositions,
//     mixed transpositions
//   - topology of the closure: NumComponents, NumBoundaryComponents
//   - standard factorizations of Δ and Δ²: HalfTwist, HalfTwistReversed,
//     FullTwist, and Conjugate for twists of the form w·σ·w⁻¹
//   - YAML documents (Load / Encode) with artin, band, canonical and
//     conjugate entries
//   - searches over Hurwitz moves: RandomSearch (biased random walk) and
//     WeightedSearch (best-first), both deterministic per seed
//   - Bridge: search for the moves joining two factorizations of one braid,
//     by minimizing the distance Σ Measure(target_i⁻¹·g_i)
//
// ⚙️ Usage:
//
//	f, err := factorization.Load(strings.NewReader(doc))
//	g, err := f.Twist(1)
//	fmt.Println(g.Product().Equal(f.Product())) // true
//
//	opts := factorization.DefaultSearchOptions()
//	opts.MaxSteps = 500
//	res, err := factorization.WeightedSearch(f, opts)
package factorization
