// SPDX-License-Identifier: MIT

// Package braid: canonical string codec.
//
// Grammar (whitespace between tokens is free):
//
//	braid  := "[" width "]" "D^(" power ")" ( { "*" factor } | "*" )
//	factor := "[" int { sep int } "]"
//	sep    := "," | space
//
// A lone trailing "*" is accepted only when no factor follows the power, as
// in "[5] D^(0) * ". width must not exceed MaxWidth.
//
// String always emits the canonical spacing "[n] D^(p) * [v0, v1, …]".
package braid

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the canonical form "[n] D^(p) * [f1] * … * [fk]".
// A braid with no factors prints as "[n] D^(p)".
func (b *Braid) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d] D^(%d)", b.n, b.p)
	for _, f := range b.a {
		sb.WriteString(" * ")
		sb.WriteString(f.String())
	}

	return sb.String()
}

// GoString returns a constructor-like debugging form "B[n]([[…], …], p)".
func (b *Braid) GoString() string {
	parts := make([]string, len(b.a))
	for i, f := range b.a {
		parts[i] = f.String()
	}

	return fmt.Sprintf("B[%d]([%s], %d)", b.n, strings.Join(parts, ", "), b.p)
}

// MarshalText implements encoding.TextMarshaler with the canonical form.
func (b *Braid) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the canonical form.
func (b *Braid) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = *parsed

	return nil
}

// Parse reads the canonical string form. Factors must be canonical factors of
// the stated width; the result is normalized, so Parse(b.String()) equals b.
// Width 0 is accepted only as the wildcard identity "[0] D^(0)".
//
// Errors: ErrParse on any deviation from the grammar, a width above MaxWidth,
// or an invalid factor (the factor's own cause is wrapped as well).
func Parse(s string, opts ...Option) (*Braid, error) {
	sc := &scanner{src: s}

	n, p, forms, err := sc.braid()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if p != 0 || len(forms) != 0 {
			return nil, parseErrorf(sc.pos, "width 0 admits only the identity")
		}

		return Identity(0, opts...), nil
	}

	b, err := FromPermutations(p, forms, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w: %w", ErrParse, err)
	}

	return b, nil
}

// parseErrorf tags ErrParse with the byte offset of the failure.
func parseErrorf(pos int, format string, args ...any) error {
	return fmt.Errorf("Parse: %w at offset %d: %s", ErrParse, pos, fmt.Sprintf(format, args...))
}

// scanner is a single-pass reader over the canonical grammar.
type scanner struct {
	src string
	pos int
}

// braid reads the whole input.
func (s *scanner) braid() (n, p int, forms [][]int, err error) {
	s.skipSpace()
	if err = s.expect("["); err != nil {
		return
	}
	start := s.pos
	if n, err = s.integer(false); err != nil {
		return
	}
	if n > MaxWidth {
		err = parseErrorf(start, "width %d exceeds %d", n, MaxWidth)
		return
	}
	if err = s.expect("]"); err != nil {
		return
	}
	s.skipSpace()
	if err = s.expect("D^("); err != nil {
		return
	}
	if p, err = s.integer(true); err != nil {
		return
	}
	if err = s.expect(")"); err != nil {
		return
	}

	for {
		s.skipSpace()
		if s.eof() {
			return
		}
		if err = s.expect("*"); err != nil {
			return
		}
		s.skipSpace()
		if s.eof() && len(forms) == 0 {
			return
		}
		var form []int
		if form, err = s.list(); err != nil {
			return
		}
		forms = append(forms, form)
	}
}

// list reads "[" int { sep int } "]".
func (s *scanner) list() ([]int, error) {
	if err := s.expect("["); err != nil {
		return nil, err
	}
	var out []int
	s.skipSpace()
	if s.peek() == ']' {
		return nil, parseErrorf(s.pos, "empty factor")
	}
	for {
		v, err := s.integer(false)
		if err != nil {
			return nil, err
		}
		out = append(out, v)

		start := s.pos
		s.skipSpace()
		if s.peek() == ']' {
			s.pos++

			return out, nil
		}
		if s.peek() == ',' {
			s.pos++
			s.skipSpace()
		} else if s.pos == start {
			return nil, parseErrorf(s.pos, "expected ',' or ']'")
		}
	}
}

// integer reads a decimal integer, optionally with a leading '-'.
func (s *scanner) integer(signed bool) (int, error) {
	start := s.pos
	if signed && s.peek() == '-' {
		s.pos++
	}
	digits := s.pos
	for !s.eof() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == digits {
		return 0, parseErrorf(start, "expected integer")
	}
	v, err := strconv.Atoi(s.src[start:s.pos])
	if err != nil {
		return 0, parseErrorf(start, "%v", err)
	}

	return v, nil
}

// expect consumes lit or fails.
func (s *scanner) expect(lit string) error {
	if !strings.HasPrefix(s.src[s.pos:], lit) {
		return parseErrorf(s.pos, "expected %q", lit)
	}
	s.pos += len(lit)

	return nil
}

func (s *scanner) skipSpace() {
	for !s.eof() && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t' || s.src[s.pos] == '\n' || s.src[s.pos] == '\r') {
		s.pos++
	}
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}

	return s.src[s.pos]
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}
