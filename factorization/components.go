// SPDX-License-Identifier: MIT

package factorization

// NumComponents returns the number of classes of strands under the relation
// "some braid of f carries one strand to the other". For a braid monodromy
// factorization of a surface S this is the number of connected components
// of S. An empty factorization has n components.
//
// Implementation: disjoint-set union over strands, path halving in find and
// union by rank, one union per (i, P(i)) for every braid permutation P.
//
// Complexity: O(m·n·α(n)) for m braids of width n, plus the permutations.
func (f *Factorization) NumComponents() int {
	ds := newStrandSets(f.n)
	for _, b := range f.braids {
		for i, v := range b.Permutation().Slice() {
			ds.union(i, v)
		}
	}

	return ds.count
}

// NumBoundaryComponents returns the number of circles obtained by closing the
// product braid, i.e. the number of cycles of its permutation. For a braid
// monodromy factorization of a surface S this is the number of boundary
// components of S.
func (f *Factorization) NumBoundaryComponents() int {
	ds := newStrandSets(f.n)
	for i, v := range f.Product().Permutation().Slice() {
		ds.union(i, v)
	}

	return ds.count
}

// strandSets is a disjoint-set forest over strands 0..n−1.
type strandSets struct {
	parent []int
	rank   []int
	count  int // number of disjoint sets
}

func newStrandSets(n int) *strandSets {
	ds := &strandSets{parent: make([]int, n), rank: make([]int, n), count: n}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find walks to the root, pointing every visited node at its grandparent.
func (ds *strandSets) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v, attaching the shallower tree.
func (ds *strandSets) union(u, v int) {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return
	}
	if ds.rank[ru] < ds.rank[rv] {
		ds.parent[ru] = rv
	} else {
		ds.parent[rv] = ru
		if ds.rank[ru] == ds.rank[rv] {
			ds.rank[ru]++
		}
	}
	ds.count--
}
