// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Colour modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// palette holds the formatters used for report output. When colour is off
// every formatter is plain fmt.Sprintf.
type palette struct {
	power  func(string, ...any) string // D^(p)
	factor func(string, ...any) string // canonical factors
	key    func(string, ...any) string // left side of key=value lines
}

// newPalette resolves mode against w. In auto mode colour is used only when
// w is a terminal.
func newPalette(mode string, w io.Writer) (palette, error) {
	var on bool
	switch mode {
	case ColorAlways:
		on = true
	case ColorNever:
		on = false
	case ColorAuto, "":
		if f, ok := w.(*os.File); ok {
			on = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	default:
		return palette{}, usagef("--color must be %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, mode)
	}

	return palette{
		power:  sprintf(on, color.FgYellow, color.Bold),
		factor: sprintf(on, color.FgCyan),
		key:    sprintf(on, color.FgGreen),
	}, nil
}

// sprintf returns a colouring SprintfFunc, forced on or off regardless of the
// package-wide color.NoColor detection.
func sprintf(on bool, attrs ...color.Attribute) func(string, ...any) string {
	c := color.New(attrs...)
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.SprintfFunc()
}
