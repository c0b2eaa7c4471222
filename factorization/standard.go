// SPDX-License-Identifier: MIT

package factorization

import (
	"fmt"

	"github.com/katalvlaran/garside/braid"
)

// Conjugate returns the twist w·σ_gen·w⁻¹ in width n, where w is the Artin
// word by. gen follows the FromArtin sign convention.
//
// Errors: those of braid.FromArtin.
func Conjugate(gen int, by []int, n int, opts ...braid.Option) (*braid.Braid, error) {
	word := make([]int, 0, 2*len(by)+1)
	word = append(word, by...)
	word = append(word, gen)
	for i := len(by) - 1; i >= 0; i-- {
		word = append(word, -by[i])
	}
	b, err := braid.FromArtin(word, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Conjugate: %w", err)
	}

	return b, nil
}

// HalfTwist returns the standard factorization of Δ into n(n−1)/2 Artin
// generators: (σ_1 … σ_{n−1})(σ_1 … σ_{n−2}) … (σ_1).
func HalfTwist(n int, opts ...braid.Option) (*Factorization, error) {
	var word []int
	for k := n; k > 1; k-- {
		for x := 1; x < k; x++ {
			word = append(word, x)
		}
	}

	return fromGenerators("HalfTwist", word, n, opts)
}

// HalfTwistReversed returns Δ factorized the other way round:
// (σ_1)(σ_2 σ_1) … (σ_{n−1} … σ_1).
func HalfTwistReversed(n int, opts ...braid.Option) (*Factorization, error) {
	var word []int
	for k := 1; k < n; k++ {
		for x := k; x > 0; x-- {
			word = append(word, x)
		}
	}

	return fromGenerators("HalfTwistReversed", word, n, opts)
}

// FullTwist returns Δ² as n copies of σ_1 … σ_{n−1}, n(n−1) generators in all.
func FullTwist(n int, opts ...braid.Option) (*Factorization, error) {
	word := make([]int, 0, n*(n-1))
	for k := 0; k < n; k++ {
		for x := 1; x < n; x++ {
			word = append(word, x)
		}
	}

	return fromGenerators("FullTwist", word, n, opts)
}

// fromGenerators builds one single-generator braid per letter of word.
func fromGenerators(method string, word []int, n int, opts []braid.Option) (*Factorization, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: %w: %d", method, ErrInvalidWidth, n)
	}
	braids := make([]*braid.Braid, len(word))
	for i, x := range word {
		b, err := braid.FromArtin([]int{x}, n, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		braids[i] = b
	}

	return New(n, braids...)
}
