//go:build !windows

package erase

func initTerminal() {
	// No-op on Unix, VT100 sequences work as-is
}
