// SPDX-License-Identifier: MIT

package permutation

import (
	"strconv"
	"strings"
)

// Permutation is a bijection of {0,…,n−1} stored in array form.
// The zero value is the size-0 wildcard identity.
type Permutation struct {
	form []int // form[i] is the image of i; len(form) == size
}

// New validates form and returns the Permutation it describes.
// The slice is copied; later mutation of form does not affect the result.
//
// Errors:
//   - ErrNotBijection if some value is outside [0, len(form)) or repeats.
//
// Complexity: O(n) time, O(n) space.
func New(form []int) (Permutation, error) {
	seen := make([]bool, len(form))
	for _, v := range form {
		if v < 0 || v >= len(form) || seen[v] {
			return Permutation{}, permErrorf("New", ErrNotBijection)
		}
		seen[v] = true
	}

	return Permutation{form: append([]int(nil), form...)}, nil
}

// Identity returns the identity of width n. Identity(0) is the wildcard.
func Identity(n int) Permutation {
	if n <= 0 {
		return Permutation{}
	}
	form := make([]int, n)
	for i := range form {
		form[i] = i
	}

	return Permutation{form: form}
}

// FromTrusted wraps form without validation or copying.
// The caller guarantees that form is a bijection and never mutates it again.
func FromTrusted(form []int) Permutation {
	return Permutation{form: form}
}

// Size returns n.
func (p Permutation) Size() int {
	return len(p.form)
}

// At returns the image of i. The wildcard maps every index to itself.
//
// Errors:
//   - ErrIndexOutOfRange if i is outside [0, Size()) on a sized permutation.
func (p Permutation) At(i int) (int, error) {
	if len(p.form) == 0 {
		return i, nil
	}
	if i < 0 || i >= len(p.form) {
		return 0, permErrorf("At", ErrIndexOutOfRange)
	}

	return p.form[i], nil
}

// Slice returns a copy of the array form.
func (p Permutation) Slice() []int {
	return append([]int(nil), p.form...)
}

// IsIdentity reports whether p fixes every index. The wildcard is the identity.
func (p Permutation) IsIdentity() bool {
	for i, v := range p.form {
		if v != i {
			return false
		}
	}

	return true
}

// Equal reports whether p and q are the same permutation.
// A size-0 operand equals any identity, whatever its width.
func (p Permutation) Equal(q Permutation) bool {
	if len(q.form) == 0 {
		return p.IsIdentity()
	}
	if len(p.form) == 0 {
		return q.IsIdentity()
	}
	if len(p.form) != len(q.form) {
		return false
	}
	for i, v := range p.form {
		if q.form[i] != v {
			return false
		}
	}

	return true
}

// Compose returns p∘q with (p∘q)[i] = q[p[i]]: apply p first, then q.
// The wildcard is a two-sided unit.
//
// Errors:
//   - ErrIncompatibleWidth if both sizes are non-zero and differ.
//
// Complexity: O(n).
func (p Permutation) Compose(q Permutation) (Permutation, error) {
	if len(p.form) == 0 {
		return q, nil
	}
	if len(q.form) == 0 {
		return p, nil
	}
	if len(p.form) != len(q.form) {
		return Permutation{}, permErrorf("Compose", ErrIncompatibleWidth)
	}

	out := make([]int, len(p.form))
	for i, v := range p.form {
		out[i] = q.form[v]
	}

	return Permutation{form: out}, nil
}

// Inverse returns p⁻¹. The wildcard is its own inverse.
func (p Permutation) Inverse() Permutation {
	if len(p.form) == 0 {
		return p
	}
	out := make([]int, len(p.form))
	for i, v := range p.form {
		out[v] = i
	}

	return Permutation{form: out}
}

// Pow returns p composed with itself e times; negative e uses p⁻¹.
// Pow(0) is the identity of p's width.
//
// Complexity: O(n·|e|).
func (p Permutation) Pow(e int) Permutation {
	base := p
	if e < 0 {
		base = p.Inverse()
		e = -e
	}
	out := Identity(len(p.form))
	for ; e > 0; e-- {
		out, _ = out.Compose(base) // same width by construction
	}

	return out
}

// String prints the array form, e.g. "[0, 2, 1]".
func (p Permutation) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range p.form {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')

	return sb.String()
}
