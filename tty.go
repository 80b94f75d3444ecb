//go:build !windows && !plan9

package erase

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/pkg/term"
	"github.com/xyproto/env/v2"
)

// defaultTimeout is how long a read waits before returning no data.
// The terminal counts in tenths of a second, so this is the shortest.
const defaultTimeout = 100 * time.Millisecond

// TTY is the controlling terminal, opened in raw mode.
type TTY struct {
	t *term.Term
}

// NewTTY opens the controlling terminal in raw mode with a short read timeout.
func NewTTY() (*TTY, error) {
	ttyPath := getTTYPath()
	t, err := term.Open(ttyPath, term.RawMode, term.ReadTimeout(defaultTimeout))
	if err != nil {
		return nil, errors.Wrapf(ErrNotATerminal, "open %s: %v", ttyPath, err)
	}
	return &TTY{t}, nil
}

// getTTYPath returns the path of the terminal device to read from.
func getTTYPath() string {
	// Check for tmux pane TTY
	if tmuxTTY := env.Str("TMUX_PANE_TTY"); tmuxTTY != "" {
		return tmuxTTY
	}

	// Check for SSH TTY
	if sshTTY := env.Str("SSH_TTY"); sshTTY != "" {
		return sshTTY
	}

	defaultTTY := "/dev/tty"
	if _, err := os.Stat(defaultTTY); err == nil {
		return defaultTTY
	}

	// Fallback to stdin if /dev/tty unavailable
	return "/dev/stdin"
}

// Read reads raw input bytes. When the timeout passes without input it
// returns 0 and a nil error. An end of file that comes sooner is real and
// is returned as io.EOF.
func (tty *TTY) Read(b []byte) (int, error) {
	start := time.Now()
	n, err := tty.t.Read(b)
	if timedOut(err, time.Since(start)) {
		return 0, nil
	}
	return n, err
}

// timedOut reports whether a read that took elapsed and failed with err
// ended because the read timeout passed. The terminal signals both a
// timeout and a closed input as end of file.
func timedOut(err error, elapsed time.Duration) bool {
	return errors.Is(err, io.EOF) && elapsed >= defaultTimeout/2
}

// Close restores the terminal to its original mode and closes it.
func (tty *TTY) Close() error {
	restoreErr := tty.t.Restore()
	if err := tty.t.Close(); err != nil {
		return err
	}
	return restoreErr
}
