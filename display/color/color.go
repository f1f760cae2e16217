// Package color provides color profile detection and the rotating word
// palette for bh3.
//
// It implements the NO_COLOR specification (https://no-color.org/) and
// automatic pipe/redirect detection for lipgloss-styled output. Decorated
// words are painted directly with termenv so the emitted escape sequences
// stay plain SGR that the layout code knows how to measure.
package color

import (
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Lowest and highest xterm-256 codes in the default palette. The 16 system
// colors and the grayscale ramp are left out; many terminals remap them.
const (
	paletteFirst = 23
	paletteLast  = 230
)

// ShouldDisableColor returns true if lipgloss output should be plain text.
// This happens when:
//   - The NO_COLOR environment variable is set (any value, per https://no-color.org/)
//   - stdout is not a terminal (pipe or redirect)
func ShouldDisableColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return true
	}

	return false
}

// Apply configures the global lipgloss renderer based on ShouldDisableColor.
// Returns true if color is enabled, false if disabled.
func Apply() bool {
	if ShouldDisableColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return false
	}
	return true
}

// ForceDisable sets the lipgloss color profile to Ascii, unconditionally
// disabling all styled color output. This is useful for tests.
func ForceDisable() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// DefaultPalette returns the xterm-256 codes words are painted with.
func DefaultPalette() []int {
	codes := make([]int, 0, paletteLast-paletteFirst+1)
	for c := paletteFirst; c <= paletteLast; c++ {
		codes = append(codes, c)
	}
	return codes
}

// Cycle hands out palette codes round-robin.
type Cycle struct {
	codes []int
	next  int
}

// NewCycle creates a Cycle over codes. An empty palette falls back to
// DefaultPalette.
func NewCycle(codes ...int) *Cycle {
	if len(codes) == 0 {
		codes = DefaultPalette()
	}
	c := make([]int, len(codes))
	copy(c, codes)
	return &Cycle{codes: c}
}

// Shuffled returns a Cycle over a permutation of codes.
func Shuffled(rng *rand.Rand, codes ...int) *Cycle {
	c := NewCycle(codes...)
	rng.Shuffle(len(c.codes), func(i, j int) {
		c.codes[i], c.codes[j] = c.codes[j], c.codes[i]
	})
	return c
}

// Next returns the next code, wrapping after the last one.
func (c *Cycle) Next() int {
	code := c.codes[c.next]
	c.next = (c.next + 1) % len(c.codes)
	return code
}

// Len returns the palette size.
func (c *Cycle) Len() int {
	return len(c.codes)
}

// Paint wraps s in a bold, xterm-256 foreground SGR sequence and a reset.
func Paint(s string, code int) string {
	return termenv.ANSI256.String(s).
		Bold().
		Foreground(termenv.ANSI256Color(code)).
		String()
}
