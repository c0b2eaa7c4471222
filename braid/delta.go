// SPDX-License-Identifier: MIT

package braid

import (
	"sync"

	"github.com/katalvlaran/garside/permutation"
)

// DeltaCache memoizes the fundamental element D = [n−1, 0, 1, …, n−2] per
// width n. It is safe for concurrent use; entries are created on first demand
// and never change.
type DeltaCache struct {
	mu      sync.RWMutex
	byWidth map[int]*Factor
}

// NewDeltaCache returns an empty cache.
func NewDeltaCache() *DeltaCache {
	return &DeltaCache{byWidth: make(map[int]*Factor)}
}

// Delta returns D for width n. For n ≤ 0 it returns the wildcard identity.
//
// Complexity: O(1) on a hit, O(n) on the first request for n.
func (c *DeltaCache) Delta(n int) *Factor {
	if n <= 0 {
		return identityFactor(0)
	}

	c.mu.RLock()
	d, ok := c.byWidth[n]
	c.mu.RUnlock()
	if ok {
		return d
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok = c.byWidth[n]; ok {
		return d
	}
	d = newDelta(n)
	c.byWidth[n] = d

	return d
}

// Len reports how many widths are cached.
func (c *DeltaCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.byWidth)
}

// newDelta builds D for width n > 0.
func newDelta(n int) *Factor {
	form := make([]int, n)
	form[0] = n - 1
	for i := 1; i < n; i++ {
		form[i] = i - 1
	}

	return &Factor{perm: permutation.FromTrusted(form)}
}
