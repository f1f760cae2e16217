// Package terminal describes the terminal bh3 draws into: its size, whether
// stdin/stdout are interactive, and whether pretty (colored, mascot) output
// should be produced.
package terminal

import (
	"os"
	"runtime"
	"strconv"

	"github.com/mattn/go-isatty"
)

// Fallback dimensions when no file descriptor reports a size.
const (
	DefaultHeight = 25
	DefaultWidth  = 80
)

// Metrics is a snapshot of the terminal taken at startup.
type Metrics struct {
	// Height is the number of rows.
	Height int
	// Width is the number of columns.
	Width int
	// OutputInteractive is true when stdout is a terminal.
	OutputInteractive bool
	// InputInteractive is true when stdin is a terminal.
	InputInteractive bool
	// Pretty enables colors and mascot art.
	Pretty bool
}

// WithOverrides returns a copy of m with height and width replaced by any
// positive override.
func (m Metrics) WithOverrides(height, width int) Metrics {
	if height > 0 {
		m.Height = height
	}
	if width > 0 {
		m.Width = width
	}
	return m
}

// Detect inspects the process's standard streams. getenv is consulted for
// TERM and the COLUMNS/LINES fallbacks.
func Detect(getenv func(string) string) Metrics {
	width, height := DetectSize(getenv)
	m := Metrics{
		Height:            height,
		Width:             width,
		OutputInteractive: isTerminal(os.Stdout.Fd()),
		InputInteractive:  isTerminal(os.Stdin.Fd()),
	}
	m.Pretty = IsPretty(m.OutputInteractive, runtime.GOOS, getenv("TERM"))
	return m
}

// IsPretty reports whether pretty output should be used. It is on for an
// interactive stdout, and always on for Windows terminals advertising xterm
// (mintty, Cygwin), which do not look like consoles to isatty.
func IsPretty(outputInteractive bool, goos, term string) bool {
	if outputInteractive {
		return true
	}
	return goos == "windows" && term == "xterm"
}

// DetectSize returns the terminal dimensions. It asks stdin, stdout and
// stderr in turn, then falls back to the COLUMNS/LINES environment
// variables, and finally to 80x25.
func DetectSize(getenv func(string) string) (width, height int) {
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		if w, h, ok := fdSize(f.Fd()); ok {
			return w, h
		}
	}

	if cols := getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			width = w
		}
	}
	if lines := getenv("LINES"); lines != "" {
		if h, err := strconv.Atoi(lines); err == nil && h > 0 {
			height = h
		}
	}

	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return width, height
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
