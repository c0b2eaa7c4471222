// SPDX-License-Identifier: MIT

// Package braid: the canonical-factor lattice.
// The meet follows Cha et al., "An Efficient Implementation of Braid Groups"
// (ASIACRYPT 2001): a canonical factor is determined by its descending
// cycles, and the meet of two factors is the common refinement of their cycle
// partitions.
package braid

import (
	"sort"

	"github.com/katalvlaran/garside/permutation"
)

// DescendingCycles returns, for each index i, the maximum of the descending
// cycle containing i. The array is computed once per Factor; the returned
// slice is a copy.
//
// Implementation:
//   - Stage 1: cycles[i] = i.
//   - Stage 2: scan i from n−1 down to 0; when f[i] < i the image inherits
//     cycles[i], so every member learns the cycle maximum.
//
// Complexity: O(n) on first call, O(n) copy afterwards.
func (f *Factor) DescendingCycles() []int {
	return append([]int(nil), f.descendingCycles()...)
}

// descendingCycles returns the cached array without copying.
func (f *Factor) descendingCycles() []int {
	f.once.Do(func() {
		form := f.perm.Slice()
		cycles := make([]int, len(form))
		for i := range cycles {
			cycles[i] = i
		}
		for i := len(form) - 1; i >= 0; i-- {
			if form[i] < i {
				cycles[form[i]] = cycles[i]
			}
		}
		f.cycles = cycles
	})

	return f.cycles
}

// Meet returns the lattice infimum f ∧ g: the largest canonical factor that is
// a prefix of both.
//
// If either operand is an identity the result is the identity (of the larger
// width, so a width-0 wildcard never narrows the other operand).
//
// Errors: ErrIncompatibleWidth for different non-zero widths.
//
// Complexity: O(n log n).
func (f *Factor) Meet(g *Factor) (*Factor, error) {
	nf, ng := f.Width(), g.Width()
	if nf != 0 && ng != 0 && nf != ng {
		return nil, braidErrorf("Factor.Meet", ErrIncompatibleWidth)
	}
	if f.IsIdentity() || g.IsIdentity() {
		return identityFactor(max(nf, ng)), nil
	}

	return f.meet(g), nil
}

// meet assumes equal non-zero widths.
//
// Implementation:
//   - Stage 1: sort indices by the pair (cycles_f[i], cycles_g[i]) descending,
//     ties by index descending.
//   - Stage 2: walk the order; an index whose pair differs from the current
//     leader's starts a new group. Every index takes its leader as cycle id,
//     and the leader is the largest index of its group.
//   - Stage 3: rebuild the permutation from the new cycle array.
func (f *Factor) meet(g *Factor) *Factor {
	fc, gc := f.descendingCycles(), g.descendingCycles()
	n := len(fc)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool {
		a, b := order[x], order[y]
		if fc[a] != fc[b] {
			return fc[a] > fc[b]
		}
		if gc[a] != gc[b] {
			return gc[a] > gc[b]
		}

		return a > b
	})

	cycles := make([]int, n)
	lead := order[0]
	cycles[lead] = lead
	for _, x := range order[1:] {
		if fc[x] != fc[lead] || gc[x] != gc[lead] {
			lead = x
		}
		cycles[x] = lead
	}

	return fromDescendingCycles(cycles)
}

// fromDescendingCycles rebuilds a factor from cycle ids that are the cycle
// maxima. Scanning upwards, the first member of a cycle maps to the maximum
// and each later member maps to the previous member, giving the descending
// cycle max → … → min → max.
func fromDescendingCycles(cycles []int) *Factor {
	form := rebuildForm(cycles)
	f := &Factor{perm: permutation.FromTrusted(form)}
	f.once.Do(func() { f.cycles = cycles })

	return f
}

// rebuildForm is the array form described by a descending-cycle array.
func rebuildForm(cycles []int) []int {
	n := len(cycles)
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}
	form := make([]int, n)
	for i, c := range cycles {
		if prev[c] < 0 {
			form[i] = c
		} else {
			form[i] = prev[c]
		}
		prev[c] = i
	}

	return form
}

// isSimple reports whether f is a canonical factor: every cycle descends and
// no two cycles cross (no a<b<c<d with a,c in one cycle and b,d in another).
//
// Complexity: O(n).
func (f *Factor) isSimple() bool {
	cycles := f.descendingCycles()
	form := f.perm.Slice()
	for i, v := range rebuildForm(cycles) {
		if form[i] != v {
			return false
		}
	}

	// Non-crossing check: a cycle that reappears must be the innermost open one.
	remaining := make(map[int]int, len(cycles))
	for _, c := range cycles {
		remaining[c]++
	}
	seen := make(map[int]bool, len(cycles))
	open := make([]int, 0, len(cycles))
	for _, c := range cycles {
		if !seen[c] {
			seen[c] = true
			open = append(open, c)
		} else if open[len(open)-1] != c {
			return false
		}
		remaining[c]--
		if remaining[c] == 0 {
			open = open[:len(open)-1]
		}
	}

	return true
}
