//go:build windows || plan9

package erase

import "os"

// SetupResizeHandler is a no-op where there is no resize signal.
func SetupResizeHandler(sigChan chan os.Signal) {}
