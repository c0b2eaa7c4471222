// SPDX-License-Identifier: MIT
// Package braid: sentinel error set.
// Every algorithm in this package returns one of these sentinels, wrapped with
// a call-site tag (e.g. "Braid.Multiply: braid: ..."). Tests and callers match
// with errors.Is. No exported function panics on user input; panics are kept
// for nonsensical Option values (programmer error).

package braid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/garside/permutation"
)

var (
	// ErrConstruction indicates that a constructor rejected its input: a
	// generator outside the braid width, a malformed band pair, a factor of
	// the wrong width, and so on.
	ErrConstruction = errors.New("braid: input rejected by constructor")

	// ErrParse indicates a string that does not follow the canonical grammar
	// "[n] D^(p) * [f1] * ... * [fk]".
	ErrParse = errors.New("braid: malformed canonical string")

	// ErrNotCanonical indicates a permutation that is not a simple element of
	// the band monoid (its descending cycles cross or do not descend).
	ErrNotCanonical = errors.New("braid: permutation is not a canonical factor")
)

// Sentinels shared with the permutation package. They are the same values,
// so errors.Is matches regardless of which package produced the error.
var (
	// ErrIncompatibleWidth indicates a binary operation between different
	// non-zero widths. Widths are never padded or truncated.
	ErrIncompatibleWidth = permutation.ErrIncompatibleWidth

	// ErrIndexOutOfRange indicates an index or band component outside the
	// valid range for the width.
	ErrIndexOutOfRange = permutation.ErrIndexOutOfRange
)

// braidErrorf wraps err with a method tag.
func braidErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// constructionErrorf tags a constructor failure with both ErrConstruction
// and the more specific cause, so either can be matched.
func constructionErrorf(method string, cause error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %w: %s", method, ErrConstruction, cause, fmt.Sprintf(format, args...))
}
