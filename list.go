package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/bh3/display/color"
	"gitlab.com/tinyland/lab/bh3/mascot"
)

var (
	colorName  = lipgloss.Color("#7C3AED") // Purple - avator names
	colorMuted = lipgloss.Color("#6B7280") // Gray - variant ids
)

// printList writes one row per installed mascot with its variant ids.
// Styling is dropped when the output is not a terminal.
func printList(w io.Writer, catalog *mascot.Catalog, interactive bool) {
	if color.Apply() && !interactive {
		color.ForceDisable()
	}

	names := catalog.Names()
	widest := 0
	for _, name := range names {
		widest = max(widest, lipgloss.Width(name))
	}

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(colorName).Width(widest + 2)
	idStyle := lipgloss.NewStyle().Foreground(colorMuted)

	for _, name := range names {
		ids := catalog.Variants(name)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		variants := strings.Join(parts, " ")
		if variants == "" {
			variants = "(no art)"
		}
		fmt.Fprintln(w, nameStyle.Render(name)+idStyle.Render(variants))
	}
}
