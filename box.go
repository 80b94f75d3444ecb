package erase

import "fmt"

// Box is a half-open axis-aligned rectangle: it covers the columns
// Left..Right-1 and the rows Top..Bottom-1.
type Box struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Rect returns the box with its top-left corner at (x, y) and the given size.
func Rect(x, y, w, h int) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() int {
	return b.Bottom - b.Top
}

// Empty reports whether the box covers no area.
func (b Box) Empty() bool {
	return b.Right <= b.Left || b.Bottom <= b.Top
}

// Overlaps reports whether the two boxes share a region of non-zero area.
// Boxes that only touch along an edge or at a corner do not overlap.
func (b Box) Overlaps(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return b.Left < o.Right && o.Left < b.Right && b.Top < o.Bottom && o.Top < b.Bottom
}

// Intersect returns the region covered by both boxes.
// The result is the zero Box when they do not overlap.
func (b Box) Intersect(o Box) Box {
	if !b.Overlaps(o) {
		return Box{}
	}
	return Box{
		Left:   max(b.Left, o.Left),
		Top:    max(b.Top, o.Top),
		Right:  min(b.Right, o.Right),
		Bottom: min(b.Bottom, o.Bottom),
	}
}

// MoveTo returns the same-sized box with its top-left corner at (x, y).
func (b Box) MoveTo(x, y int) Box {
	return Rect(x, y, b.Width(), b.Height())
}

// Contains reports whether the point (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.Left && x < b.Right && y >= b.Top && y < b.Bottom
}

func (b Box) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.Left, b.Top, b.Right, b.Bottom)
}
