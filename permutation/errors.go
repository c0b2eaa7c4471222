// SPDX-License-Identifier: MIT

package permutation

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "permutation: ..." so that wrapped errors stay
// greppable. Call sites wrap with a method tag; callers match with errors.Is.
var (
	// ErrIndexOutOfRange indicates an index outside [0, n).
	ErrIndexOutOfRange = errors.New("permutation: index out of range")

	// ErrIncompatibleWidth indicates a binary operation between two
	// permutations of different non-zero sizes.
	ErrIncompatibleWidth = errors.New("permutation: incompatible widths")

	// ErrNotBijection indicates that an array form is not a bijection of [0, n).
	ErrNotBijection = errors.New("permutation: array form is not a bijection")
)

// permErrorf attaches a method tag to a sentinel.
func permErrorf(method string, err error) error {
	return fmt.Errorf("Permutation.%s: %w", method, err)
}
