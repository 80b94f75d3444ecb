package erase

import (
	"os"

	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

// MustTermSize returns the current terminal width and height.
// When the size cannot be queried it falls back to $COLS/$COLUMNS and
// $LINES, and finally to 79x25.
func MustTermSize() (uint, uint) {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err == nil && width > 0 && height > 0 {
			return uint(width), uint(height)
		}
	}

	if w, h, ok := getPlatformTermSize(); ok {
		return w, h
	}

	var w uint = 79
	if cols := env.Int("COLS", 0); cols > 0 {
		w = uint(cols)
	} else if cols := env.Int("COLUMNS", 0); cols > 0 {
		w = uint(cols)
	}
	return w, uint(env.Int("LINES", 25))
}

// IsTerminal reports whether both stdin and stdout are terminals.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
