// Package canvas lays out the lines bh3 prints: blank filler rows with the
// mascot at the bottom, leaving room for the shell prompt.
package canvas

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/bh3/display/metrics"
	"gitlab.com/tinyland/lab/bh3/display/terminal"
)

// WordRoom is the number of columns kept free next to the widest mascot row.
const WordRoom = 15

// Canvas is the full output, one entry per printed row. Each entry carries
// its own line break.
type Canvas []string

// String joins the rows for printing.
func (c Canvas) String() string {
	return strings.Join(c, "")
}

// TooSmallError reports a terminal narrower than the mascot needs.
type TooSmallError struct {
	Width    int
	MinWidth int
}

func (e *TooSmallError) Error() string {
	return fmt.Sprintf("wow, such small terminal\nno doge under %d column", e.MinWidth)
}

// Builder assembles a Canvas for a terminal.
type Builder struct {
	// Terminal supplies height, width and pretty mode.
	Terminal terminal.Metrics
	// Lines is the mascot art. It is ignored unless Terminal.Pretty is set.
	Lines []string
	// Prompt is the value of PS1, used to keep the prompt on screen.
	Prompt string
}

// Build checks the terminal is wide enough and returns the filler rows
// followed by the mascot lines. The canvas is shorter than the terminal
// only when the mascot and prompt margin leave no room for filler; the
// mascot itself is never truncated.
func (b Builder) Build() (Canvas, error) {
	art := b.Lines
	if !b.Terminal.Pretty {
		art = nil
	}

	minWidth := MinWidth(art)
	if b.Terminal.Width < minWidth {
		return nil, &TooSmallError{Width: b.Terminal.Width, MinWidth: minWidth}
	}

	filler := max(0, b.Terminal.Height-len(art)-ReservedMargin(b.Prompt))

	c := make(Canvas, 0, filler+len(art))
	for i := 0; i < filler; i++ {
		c = append(c, "\n")
	}
	c = append(c, art...)
	return c, nil
}

// MinWidth is the narrowest terminal the art fits in with room for words:
// the widest art row measured in cells, color codes and line breaks
// excluded, plus WordRoom.
func MinWidth(art []string) int {
	widest := 0
	for _, line := range art {
		w := metrics.DisplayWidth(metrics.Strip(strings.TrimRight(line, "\r\n")))
		widest = max(widest, w)
	}
	return widest + WordRoom
}

// ReservedMargin is the number of rows kept free at the bottom: one per
// prompt line plus one. An empty prompt reserves a single row.
func ReservedMargin(prompt string) int {
	if prompt == "" {
		return 1
	}
	return len(strings.Split(prompt, "\n")) + 1
}
