//go:build windows || plan9

package erase

// TTY is unavailable on this platform.
type TTY struct{}

// NewTTY always fails with ErrUnsupportedPlatform.
func NewTTY() (*TTY, error) {
	return nil, ErrUnsupportedPlatform
}

func (tty *TTY) Read(b []byte) (int, error) {
	return 0, ErrUnsupportedPlatform
}

func (tty *TTY) Close() error {
	return nil
}
