// SPDX-License-Identifier: MIT

package factorization

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/garside/braid"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a factorization:
//
//	width: 5
//	braids:
//	  - artin: [1, 2, -1]
//	  - band: [[2, 1], [4, 3]]
//	  - canonical: "[5] D^(-1) * [4, 0, 2, 1, 3] * [0, 2, 1, 3, 4]"
//	  - conjugate: {twist: 1, by: [2, 3]}
type Document struct {
	Width  int     `yaml:"width"`
	Braids []Entry `yaml:"braids"`
}

// Entry describes one braid. Exactly one field must be set; an empty artin
// or band list is the identity.
type Entry struct {
	Artin     []int           `yaml:"artin,omitempty"`
	Band      [][]int         `yaml:"band,omitempty"`
	Canonical string          `yaml:"canonical,omitempty"`
	Conjugate *ConjugateEntry `yaml:"conjugate,omitempty"`
}

// ConjugateEntry is the twist by·σ_twist·by⁻¹ (see Conjugate).
type ConjugateEntry struct {
	Twist int   `yaml:"twist"`
	By    []int `yaml:"by,omitempty"`
}

// Load reads one YAML document from r. Unknown keys are rejected.
//
// Errors: ErrDocument for malformed or empty input, unknown keys, or an entry
// that sets zero or several forms; braid construction errors are wrapped
// together with ErrDocument and name the entry.
func Load(r io.Reader, opts ...braid.Option) (*Factorization, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Load: %w: empty input", ErrDocument)
		}

		return nil, fmt.Errorf("Load: %w: %w", ErrDocument, err)
	}

	return doc.Build(opts...)
}

// LoadFile reads a YAML document from path.
func LoadFile(path string, opts ...braid.Option) (*Factorization, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer fh.Close()

	return Load(fh, opts...)
}

// Build turns the document into a Factorization.
func (d Document) Build(opts ...braid.Option) (*Factorization, error) {
	if d.Width < 1 || d.Width > braid.MaxWidth {
		return nil, fmt.Errorf("Document.Build: %w: %w: %d", ErrDocument, ErrInvalidWidth, d.Width)
	}
	braids := make([]*braid.Braid, len(d.Braids))
	for i, e := range d.Braids {
		b, err := e.build(d.Width, opts)
		if err != nil {
			return nil, fmt.Errorf("Document.Build: %w: braid %d: %w", ErrDocument, i, err)
		}
		braids[i] = b
	}

	return New(d.Width, braids...)
}

// build constructs the single braid the entry names.
func (e Entry) build(n int, opts []braid.Option) (*braid.Braid, error) {
	set := 0
	for _, ok := range []bool{e.Artin != nil, e.Band != nil, e.Canonical != "", e.Conjugate != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("entry sets %d of artin, band, canonical, conjugate", set)
	}

	switch {
	case e.Artin != nil:
		return braid.FromArtin(e.Artin, n, opts...)
	case e.Band != nil:
		pairs := make([][2]int, len(e.Band))
		for i, g := range e.Band {
			if len(g) != 2 {
				return nil, fmt.Errorf("band generator %d has %d components, want 2", i, len(g))
			}
			pairs[i] = [2]int{g[0], g[1]}
		}

		return braid.FromBand(pairs, n, opts...)
	case e.Conjugate != nil:
		return Conjugate(e.Conjugate.Twist, e.Conjugate.By, n, opts...)
	}

	b, err := braid.Parse(e.Canonical, opts...)
	if err != nil {
		return nil, err
	}
	if b.Width() == 0 {
		return braid.Identity(n, opts...), nil
	}
	if b.Width() != n {
		return nil, fmt.Errorf("%w: canonical width %d, want %d", ErrIncompatibleWidth, b.Width(), n)
	}

	return b, nil
}

// Document returns the canonical YAML form of f: one canonical entry per braid.
func (f *Factorization) Document() Document {
	doc := Document{Width: f.n, Braids: make([]Entry, len(f.braids))}
	for i, b := range f.braids {
		doc.Braids[i] = Entry{Canonical: b.String()}
	}

	return doc
}

// Encode writes f as a YAML document that Load reads back.
func (f *Factorization) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f.Document()); err != nil {
		return fmt.Errorf("Factorization.Encode: %w", err)
	}

	return enc.Close()
}
