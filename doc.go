// Package garside is a braid-group toolkit built around the left-greedy
// (Garside) normal form in the band-generator presentation of B_n.
//
// 🚀 What is in here?
//
//	Exact braid arithmetic on unique normal forms, plus tooling for braid
//	monodromy factorizations:
//		• permutation/   — fixed-width permutations in array form
//		• braid/         — canonical factors, the fundamental element D,
//		                   normal form, Multiply/Inverse/Pow/Twist, complexity
//		                   measures and the canonical string codec
//		• factorization/ — Hurwitz moves, YAML documents, closure topology and
//		                   searches for simpler factorizations
//		• cmd/braidnf    — command-line front end
//
// ✨ Why a normal form?
//
//   - Equality is a field-by-field comparison, no word problem at run time
//   - Products and inverses stay normalized, so sizes never blow up silently
//   - Values are immutable and safe to share between goroutines
//
// ⚙️ Usage:
//
//	x, _ := braid.FromArtin([]int{1, 2, 1}, 3)
//	y, _ := braid.FromArtin([]int{2, 1, 2}, 3)
//	fmt.Println(x.Equal(y)) // true
//
// See examples/ for a complete factorization walkthrough.
package garside
