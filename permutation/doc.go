// SPDX-License-Identifier: MIT

// Package permutation provides the finite bijections of {0,…,n−1} that the
// braid arithmetic is built on.
//
// 🚀 What is a Permutation here?
//
//	An array form p = [p0, p1, …, p(n−1)] meaning “i goes to p[i]”.
//	The zero value (size 0) is special: it is a wildcard identity that
//	compares equal to the identity of every width and composes as a no-op.
//
// ✨ Key features:
//   - validated construction (New rejects anything that is not a bijection)
//   - Compose with the contract (p∘q)[i] = q[p[i]]: apply p, then q
//   - Inverse, Pow, IsIdentity, Equal with the size-0 wildcard rule
//   - safe indexing: At returns ErrIndexOutOfRange instead of panicking
//
// ⚙️ Usage:
//
//	p, _ := permutation.New([]int{0, 1, 3, 2, 4})
//	q, _ := permutation.New([]int{2, 3, 4, 0, 1})
//	r, err := p.Compose(q) // [2, 3, 0, 4, 1]
//
// Values are immutable: every operation returns a fresh Permutation, so a
// Permutation may be shared freely between goroutines.
//
// This is deliberately not a general permutation-group library; it carries
// exactly what the braid package needs.
package permutation
