// SPDX-License-Identifier: MIT

package factorization

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/garside/braid"
)

var (
	// ErrInvalidWidth indicates a factorization width outside
	// [1, braid.MaxWidth].
	ErrInvalidWidth = errors.New("factorization: width out of range")

	// ErrLengthMismatch indicates two factorizations with different numbers
	// of braids where a braid-by-braid comparison is needed.
	ErrLengthMismatch = errors.New("factorization: different numbers of braids")

	// ErrNilBraid indicates a nil entry in the braid list.
	ErrNilBraid = errors.New("factorization: nil braid")

	// ErrDocument indicates a YAML document that cannot be read as a
	// factorization: malformed YAML, unknown keys, or an entry that does not
	// name exactly one braid form.
	ErrDocument = errors.New("factorization: invalid document")

	// ErrUnknownMeasure indicates a complexity measure name that is not one
	// of "canonical", "transpositions" or "mixed".
	ErrUnknownMeasure = errors.New("factorization: unknown complexity measure")
)

// Aliases of the braid sentinels, so callers need only one import to match.
var (
	// ErrIncompatibleWidth indicates a braid whose width differs from the
	// factorization width.
	ErrIncompatibleWidth = braid.ErrIncompatibleWidth

	// ErrIndexOutOfRange indicates a Hurwitz move or index outside the list.
	ErrIndexOutOfRange = braid.ErrIndexOutOfRange
)

// factorizationErrorf tags err with the failing method.
func factorizationErrorf(method string, err error) error {
	return fmt.Errorf("Factorization.%s: %w", method, err)
}
