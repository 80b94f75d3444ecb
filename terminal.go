package erase

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"
)

const (
	cursorHome         = "\033[H"
	cursorHomeTemplate = "\033[%d;%dH"
	resetDevice        = "\033c"
	eraseScreen        = "\033[2J"
	enableLineWrap     = "\033[?7h"
	disableLineWrap    = "\033[?7l"
	showCursor         = "\033[?25h"
	hideCursor         = "\033[?25l"
	echoOff            = "\033[12h"
	attributeTemplate  = "\033[%sm"

	// Button and any-motion tracking, reported in SGR format
	enableMouse  = "\033[?1003h\033[?1006h"
	disableMouse = "\033[?1006l\033[?1003l"
)

// NoColor is the escape sequence for resetting all terminal color attributes.
const NoColor string = "\033[0m"

// UnderTMUX reports whether the process is running inside a TMUX session.
var UnderTMUX = env.Has("TMUX")

// UnderScreen reports whether the process is running inside a GNU Screen session.
var UnderScreen = env.Has("STY")

// UnderZellij reports whether the process is running inside a Zellij session.
var UnderZellij = env.Has("ZELLIJ")

// Multiplexed is true when running inside any known terminal multiplexer.
var Multiplexed = UnderTMUX || UnderScreen || UnderZellij

// writeAll writes the complete byte slice to w, retrying on partial writes.
func writeAll(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n, err := w.Write(data)
		if err != nil {
			return errors.Wrap(err, "write to terminal")
		}
		if n <= 0 {
			return errors.New("write to terminal: no progress")
		}
		data = data[n:]
	}
	return nil
}

// setXY returns the sequence that moves the cursor to (x, y), 0-based.
func setXY(x, y uint) string {
	return fmt.Sprintf(cursorHomeTemplate, y+1, x+1)
}

// Terminal emits the mode-switching sequences for a full-screen program.
type Terminal struct {
	out   io.Writer
	mouse bool
}

// NewTerminal returns a Terminal that writes to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) print(seqs ...string) error {
	var data []byte
	for _, s := range seqs {
		data = append(data, s...)
	}
	return writeAll(t.out, data)
}

// Init prepares the terminal for full-screen canvas use and turns on mouse
// reporting. Under TMUX and GNU Screen the hard reset and echo-off
// sequences are skipped, since multiplexers mishandle them.
func (t *Terminal) Init() error {
	initTerminal()
	var seqs []string
	if !Multiplexed {
		seqs = append(seqs, resetDevice, echoOff)
	}
	seqs = append(seqs, eraseScreen, hideCursor, disableLineWrap)
	if err := t.print(seqs...); err != nil {
		return err
	}
	return t.EnableMouse()
}

// EnableMouse asks the terminal to report every mouse press, release and motion.
func (t *Terminal) EnableMouse() error {
	if err := t.print(enableMouse); err != nil {
		return err
	}
	t.mouse = true
	return nil
}

// DisableMouse stops mouse reporting.
func (t *Terminal) DisableMouse() error {
	if !t.mouse {
		return nil
	}
	t.mouse = false
	return t.print(disableMouse)
}

// Close turns off mouse reporting and restores the cursor and line wrapping.
func (t *Terminal) Close() error {
	if err := t.DisableMouse(); err != nil {
		return err
	}
	return t.print(NoColor, enableLineWrap, showCursor, eraseScreen, cursorHome)
}
