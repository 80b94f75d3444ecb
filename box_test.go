package erase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxOverlapsSharedArea(t *testing.T) {
	a := Rect(0, 0, 20, 20)
	assert.True(t, a.Overlaps(Rect(10, 10, 20, 20)))
	assert.True(t, a.Overlaps(Rect(19, 19, 1, 1)))
	assert.True(t, a.Overlaps(a))
	assert.True(t, a.Overlaps(Rect(5, 5, 1, 1)), "a box inside another overlaps it")
}

func TestBoxTouchingEdgesDoNotOverlap(t *testing.T) {
	a := Rect(0, 0, 20, 20)
	assert.False(t, a.Overlaps(Rect(20, 0, 20, 20)), "right edge")
	assert.False(t, a.Overlaps(Rect(0, 20, 20, 20)), "bottom edge")
	assert.False(t, a.Overlaps(Rect(-20, 0, 20, 20)), "left edge")
	assert.False(t, a.Overlaps(Rect(20, 20, 5, 5)), "corner")
}

func TestEmptyBoxOverlapsNothing(t *testing.T) {
	assert.True(t, Rect(3, 3, 0, 4).Empty())
	assert.False(t, Rect(0, 0, 10, 10).Overlaps(Rect(3, 3, 0, 4)))
	assert.False(t, Rect(3, 3, -2, 4).Overlaps(Rect(0, 0, 10, 10)))
}

func TestBoxIntersect(t *testing.T) {
	assert.Equal(t, Box{10, 10, 20, 20}, Rect(0, 0, 20, 20).Intersect(Rect(10, 10, 20, 20)))
	assert.Equal(t, Box{}, Rect(0, 0, 20, 20).Intersect(Rect(20, 0, 5, 5)))
}

func TestBoxMoveToKeepsSize(t *testing.T) {
	b := Rect(1, 2, 3, 4).MoveTo(10, 20)
	assert.Equal(t, Box{10, 20, 13, 24}, b)
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 4, b.Height())
	assert.Equal(t, "(10,20)-(13,24)", b.String())
}

func TestBoxContains(t *testing.T) {
	b := Rect(0, 0, 2, 2)
	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(1, 1))
	assert.False(t, b.Contains(2, 1))
	assert.False(t, b.Contains(1, 2))
}
