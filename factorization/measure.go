// SPDX-License-Identifier: MIT

package factorization

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/garside/braid"
)

// Measure selects how the complexity of a braid is counted.
// The zero value is MeasureMixed.
type Measure int

const (
	// MeasureMixed counts NumMixedTranspositions.
	MeasureMixed Measure = iota
	// MeasureCanonical counts CanonicalLength, |p| + k.
	MeasureCanonical
	// MeasureTranspositions counts NumTranspositions.
	MeasureTranspositions
)

// Of returns the measure of a single braid.
func (m Measure) Of(b *braid.Braid) int {
	switch m {
	case MeasureCanonical:
		return b.CanonicalLength()
	case MeasureTranspositions:
		return b.NumTranspositions()
	default:
		return b.NumMixedTranspositions()
	}
}

// String returns the name accepted by ParseMeasure.
func (m Measure) String() string {
	switch m {
	case MeasureMixed:
		return "mixed"
	case MeasureCanonical:
		return "canonical"
	case MeasureTranspositions:
		return "transpositions"
	default:
		return fmt.Sprintf("Measure(%d)", int(m))
	}
}

// ParseMeasure maps a case-insensitive name to its Measure.
func ParseMeasure(s string) (Measure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mixed":
		return MeasureMixed, nil
	case "canonical":
		return MeasureCanonical, nil
	case "transpositions":
		return MeasureTranspositions, nil
	default:
		return 0, fmt.Errorf("ParseMeasure(%q): %w", s, ErrUnknownMeasure)
	}
}
