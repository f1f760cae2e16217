//go:build !unix

package terminal

import "github.com/charmbracelet/x/term"

// fdSize asks the console attached to fd for its size.
func fdSize(fd uintptr) (width, height int, ok bool) {
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
