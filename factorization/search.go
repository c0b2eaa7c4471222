// SPDX-License-Identifier: MIT

package factorization

import (
	"container/heap"
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/garside/braid"
)

// Default search parameters.
const (
	DefaultBias     = 2.0
	DefaultMaxSteps = 1000
)

// SearchOptions configures RandomSearch and WeightedSearch.
//   - Ctx: cancellation; nil means context.Background().
//   - Measure: the complexity being minimized (default MeasureMixed).
//   - Bias: > 1. A move that changes complexity by Δ is weighted Bias^(−Δ).
//   - MaxSteps: RandomSearch proposals or WeightedSearch expansions.
//   - StopAt: stop once the best complexity is ≤ StopAt; negative disables.
//   - Seed: RandomSearch RNG seed, 0 ⇒ braid.DefaultSeed.
//   - PositiveOnly: RandomSearch proposes only moves i > 0.
//   - Target: when set, the search minimizes Σ Measure(Target_i⁻¹·g_i)
//     instead of the complexity of g. It must match the width and length of
//     the searched factorization. See Bridge.
type SearchOptions struct {
	Ctx          context.Context
	Measure      Measure
	Bias         float64
	MaxSteps     int
	StopAt       int
	Seed         int64
	PositiveOnly bool
	Target       *Factorization

	targetInv []*braid.Braid // inverses of Target's braids, set by prepare
}

// DefaultSearchOptions returns the defaults listed on SearchOptions.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Ctx:      context.Background(),
		Measure:  MeasureMixed,
		Bias:     DefaultBias,
		MaxSteps: DefaultMaxSteps,
		StopAt:   -1,
	}
}

// prepare fills zero values with defaults and checks Target against f.
func (o *SearchOptions) prepare(f *Factorization) error {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Bias <= 1 {
		o.Bias = DefaultBias
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.Seed == 0 {
		o.Seed = braid.DefaultSeed
	}

	o.targetInv = nil
	if o.Target == nil {
		return nil
	}
	switch {
	case o.Target.n != f.n:
		return fmt.Errorf("%w: target width %d, want %d", ErrIncompatibleWidth, o.Target.n, f.n)
	case len(o.Target.braids) != len(f.braids):
		return fmt.Errorf("%w: target has %d braids, want %d", ErrLengthMismatch, len(o.Target.braids), len(f.braids))
	}
	o.targetInv = make([]*braid.Braid, len(o.Target.braids))
	for i, b := range o.Target.braids {
		o.targetInv[i] = b.Inverse()
	}

	return nil
}

// cost is the quantity a search minimizes.
func (o *SearchOptions) cost(f *Factorization) int {
	if o.targetInv == nil {
		return f.Complexity(o.Measure)
	}
	total := 0
	for i, b := range f.braids {
		total += o.Measure.Of(mul(o.targetInv[i], b))
	}

	return total
}

// SearchResult is the best factorization seen by a search.
type SearchResult struct {
	Best       *Factorization
	Complexity int
	Moves      []int // Hurwitz moves from the start to Best
	Steps      int   // proposals or expansions performed
}

// moveSet lists −(m−1)…−1, 1…m−1.
func moveSet(m int) []int {
	if m < 2 {
		return nil
	}
	out := make([]int, 0, 2*(m-1))
	for i := 1 - m; i < m; i++ {
		if i != 0 {
			out = append(out, i)
		}
	}

	return out
}

// RandomSearch walks the Hurwitz orbit of f at random. A proposed move is
// accepted when it lowers the complexity, and otherwise with probability
// Bias^(current − proposed). The walk is reproducible for a fixed Seed.
//
// Errors: the context error if opts.Ctx is cancelled, with the best result so
// far; ErrIncompatibleWidth or ErrLengthMismatch for a bad Target.
func RandomSearch(f *Factorization, opts SearchOptions) (SearchResult, error) {
	if err := opts.prepare(f); err != nil {
		return SearchResult{}, factorizationErrorf("RandomSearch", err)
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	cur, curC := f, opts.cost(f)
	var path []int
	res := SearchResult{Best: f, Complexity: curC}
	moves := moveSet(f.Len())
	if len(moves) == 0 {
		return res, nil
	}

	for res.Steps < opts.MaxSteps {
		if opts.StopAt >= 0 && res.Complexity <= opts.StopAt {
			break
		}
		if err := opts.Ctx.Err(); err != nil {
			return res, err
		}
		res.Steps++

		i := moves[rng.Intn(len(moves))]
		if opts.PositiveOnly && i < 0 {
			i = -i
		}
		next, err := cur.Twist(i)
		if err != nil {
			return res, err
		}
		nextC := opts.cost(next)
		diff := curC - nextC
		if diff <= 0 && rng.Float64() >= math.Pow(opts.Bias, float64(diff)) {
			continue
		}

		cur, curC = next, nextC
		path = append(path, i)
		if curC < res.Complexity {
			res.Best, res.Complexity = cur, curC
			res.Moves = append([]int(nil), path...)
		}
	}

	return res, nil
}

// WeightedSearch explores the Hurwitz orbit of f best-first. Every reached
// factorization carries a weight; expanding a node of weight w and complexity
// c gives each new neighbour of complexity c' the weight w·Bias^(c − c'),
// and a neighbour reached again accumulates the weight. The heaviest
// unexpanded node is expanded next. The move that would undo the arrival is
// not tried again.
//
// The search ends after MaxSteps expansions, at StopAt, or when the reachable
// orbit is exhausted.
//
// Errors: the context error if opts.Ctx is cancelled, with the best result so
// far; ErrIncompatibleWidth or ErrLengthMismatch for a bad Target.
func WeightedSearch(f *Factorization, opts SearchOptions) (SearchResult, error) {
	if err := opts.prepare(f); err != nil {
		return SearchResult{}, factorizationErrorf("WeightedSearch", err)
	}
	moves := moveSet(f.Len())

	start := &searchNode{
		f:      f,
		key:    f.String(),
		c:      opts.cost(f),
		weight: 1,
		skip:   map[int]bool{},
	}
	best := start
	open := map[string]*searchNode{start.key: start}
	done := map[string]bool{}
	pq := &nodePQ{}
	heap.Push(pq, start)

	res := SearchResult{}
	var seq int
	for pq.Len() > 0 && res.Steps < opts.MaxSteps {
		if opts.StopAt >= 0 && best.c <= opts.StopAt {
			break
		}
		if err := opts.Ctx.Err(); err != nil {
			return best.result(res.Steps), err
		}
		cur := heap.Pop(pq).(*searchNode)
		delete(open, cur.key)
		res.Steps++

		for _, i := range moves {
			if cur.skip[i] {
				continue
			}
			next, err := cur.f.Twist(i)
			if err != nil {
				return best.result(res.Steps), err
			}
			key := next.String()
			if done[key] || key == cur.key {
				continue
			}
			c := opts.cost(next)
			w := cur.weight * math.Pow(opts.Bias, float64(cur.c-c))

			if node, ok := open[key]; ok {
				node.weight += w
				node.skip[-i] = true
				heap.Fix(pq, node.index)

				continue
			}
			seq++
			node := &searchNode{
				f:      next,
				key:    key,
				c:      c,
				weight: w,
				skip:   map[int]bool{-i: true},
				moves:  append(append([]int(nil), cur.moves...), i),
				seq:    seq,
			}
			open[key] = node
			heap.Push(pq, node)
			if c < best.c {
				best = node
			}
		}
		done[cur.key] = true
	}

	return best.result(res.Steps), nil
}

// Searcher is the signature shared by RandomSearch and WeightedSearch.
type Searcher func(*Factorization, SearchOptions) (SearchResult, error)

// BridgeResult reports a Bridge run. Replaying Moves on Source gives Best;
// Complexity 0 means Best equals Target.
type BridgeResult struct {
	SearchResult
	Source *Factorization // the factorization that was moved
	Target *Factorization // the factorization it was moved toward
}

// Bridge searches for Hurwitz moves carrying one of a and b onto the other.
// The one of higher complexity under opts.Measure (a on a tie) becomes the
// Source and is searched with opts.Target set to the other; the reported
// Complexity is Σ Measure(Target_i⁻¹·Best_i). A negative StopAt becomes 0.
// A nil search means WeightedSearch.
//
// Errors: ErrIncompatibleWidth or ErrLengthMismatch if a and b cannot be
// compared braid by braid, and any error of search.
func Bridge(a, b *Factorization, search Searcher, opts SearchOptions) (BridgeResult, error) {
	if search == nil {
		search = WeightedSearch
	}
	res := BridgeResult{Source: a, Target: b}
	if a.Complexity(opts.Measure) < b.Complexity(opts.Measure) {
		res.Source, res.Target = b, a
	}
	opts.Target = res.Target
	if opts.StopAt < 0 {
		opts.StopAt = 0
	}

	sr, err := search(res.Source, opts)
	res.SearchResult = sr
	if err != nil {
		return res, fmt.Errorf("Bridge: %w", err)
	}

	return res, nil
}

// searchNode is one factorization in the WeightedSearch frontier.
type searchNode struct {
	f      *Factorization
	key    string
	c      int
	weight float64
	skip   map[int]bool // moves not to try from here
	moves  []int        // path from the start
	seq    int          // discovery order, breaks weight ties
	index  int          // position in nodePQ
}

func (n *searchNode) result(steps int) SearchResult {
	return SearchResult{Best: n.f, Complexity: n.c, Moves: n.moves, Steps: steps}
}

// nodePQ implements heap.Interface as a max-heap on weight; ties go to the
// earlier discovery.
type nodePQ []*searchNode

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight > pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *nodePQ) Push(x interface{}) {
	node := x.(*searchNode)
	node.index = len(*pq)
	*pq = append(*pq, node)
}

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	node := old[n-1]
	node.index = -1
	*pq = old[:n-1]

	return node
}
