//go:build unix

package terminal

import "golang.org/x/sys/unix"

// fdSize reads the window size of fd with the TIOCGWINSZ ioctl.
func fdSize(fd uintptr) (width, height int, ok bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}
