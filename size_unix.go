//go:build !windows && !plan9

package erase

import (
	"os"

	"golang.org/x/sys/unix"
)

// getPlatformTermSize asks the controlling terminal directly, which works
// even when stdout is redirected.
func getPlatformTermSize() (uint, uint, bool) {
	f, err := os.Open("/dev/tty")
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 0, 0, false
	}
	return uint(ws.Col), uint(ws.Row), true
}
