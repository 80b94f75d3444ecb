//go:build plan9

package erase

func getPlatformTermSize() (uint, uint, bool) {
	return 0, 0, false
}
