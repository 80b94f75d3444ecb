//go:build windows

package erase

import (
	"golang.org/x/sys/windows"
)

// getPlatformTermSize reads the visible window of the console screen buffer.
func getPlatformTermSize() (uint, uint, bool) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return 0, 0, false
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return 0, 0, false
	}
	w := int(info.Window.Right-info.Window.Left) + 1
	ht := int(info.Window.Bottom-info.Window.Top) + 1
	if w <= 0 || ht <= 0 {
		return 0, 0, false
	}
	return uint(w), uint(ht), true
}
