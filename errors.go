package erase

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned for non-positive sizes, unknown colors
	// and other settings the program cannot start with.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoSuchShape is returned when a ShapeID is not in the registry.
	ErrNoSuchShape = errors.New("no such shape")

	// ErrNotATerminal is returned when input or output is not a terminal.
	ErrNotATerminal = errors.New("not a terminal")

	// ErrUnsupportedPlatform is returned where raw terminal input is not available.
	ErrUnsupportedPlatform = errors.New("raw terminal input is not supported on this platform")
)
