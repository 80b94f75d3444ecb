//go:build !windows && !plan9

package erase

import (
	"os"
	"os/signal"
	"syscall"
)

// SetupResizeHandler delivers terminal resize signals to sigChan.
func SetupResizeHandler(sigChan chan os.Signal) {
	signal.Notify(sigChan, syscall.SIGWINCH)
}
