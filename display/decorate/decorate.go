// Package decorate scatters words across a canvas: a random subset of rows
// each gets a word placed at a random offset, painted when output is pretty.
package decorate

import (
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"gitlab.com/tinyland/lab/bh3/display/canvas"
	"gitlab.com/tinyland/lab/bh3/display/color"
	"gitlab.com/tinyland/lab/bh3/display/metrics"
)

// rowsPerWord sets the density: one decorated row for every 3.5 rows.
const rowsPerWord = 3.5

// WordSource hands out the next word to place. ok is false when there are
// no words at all.
type WordSource interface {
	Take() (word string, ok bool)
}

// Palette hands out the next xterm-256 color code.
type Palette interface {
	Next() int
}

// Decorator places words on canvas rows without ever letting a row grow
// past Width cells.
type Decorator struct {
	// Width is the terminal width in columns.
	Width int
	// Pretty enables colored words.
	Pretty bool
	// Rand drives row sampling and word offsets.
	Rand *rand.Rand
	// Words supplies the words.
	Words WordSource
	// Colors supplies word colors when Pretty is set.
	Colors Palette
	// Logger receives per-row debug output. Nil disables logging.
	Logger *slog.Logger
}

// Apply decorates a sample of len(c)/3.5 distinct rows in place, in
// ascending row order.
func (d *Decorator) Apply(c canvas.Canvas) {
	for _, row := range d.SampleRows(len(c)) {
		c[row] = d.Line(c[row])
	}
}

// SampleRows picks floor(n/3.5) distinct row indices from [0, n), sorted
// ascending.
func (d *Decorator) SampleRows(n int) []int {
	k := int(float64(n) / rowsPerWord)
	if k <= 0 {
		return nil
	}
	rows := d.Rand.Perm(n)[:k]
	slices.Sort(rows)
	return rows
}

// Line returns row with the next word appended. The row is flattened onto
// one physical line first. When no word is available the row is returned
// unchanged; when the word does not fit, the flattened row is returned
// without it.
func (d *Decorator) Line(row string) string {
	word, ok := d.Words.Take()
	if !ok {
		d.debug("decorate: no words left, row untouched")
		return row
	}

	occupied := strings.ReplaceAll(row, "\n", " ")

	interval := d.Width - metrics.DisplayWidth(word) - metrics.StrippedLength(occupied)
	if interval < 1 {
		d.debug("decorate: word does not fit", "word", word, "interval", interval)
		return occupied + "\n"
	}

	msg := strings.Repeat(" ", d.Rand.IntN(interval)) + word
	if d.Pretty {
		msg = color.Paint(msg, d.Colors.Next())
	}
	return occupied + msg + "\n"
}

func (d *Decorator) debug(msg string, args ...any) {
	if d.Logger != nil {
		d.Logger.Debug(msg, args...)
	}
}
