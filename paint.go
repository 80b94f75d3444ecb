package erase

// Box drawing runes for shape outlines
const (
	TL = '┌' // top left
	TR = '┐' // top right
	BL = '└' // bottom left
	BR = '┘' // bottom right
	VL = '│' // vertical line
	HL = '─' // horizontal line
)

// Paint fills the canvas with the background color and then draws every
// shape of the registry on top, in creation order.
func (c *Canvas) Paint(r *Registry, background AttributeColor) {
	shapes := r.Shapes()

	c.mut.Lock()
	defer c.mut.Unlock()

	c.fillBackground(background)
	area := Rect(0, 0, int(c.w), int(c.h))
	for _, s := range shapes {
		c.paintShape(s, area)
	}
}

// paintShape draws one shape, clipped to area. The caller must hold the lock.
func (c *Canvas) paintShape(s Shape, area Box) {
	visible := s.Box.Intersect(area)
	if visible.Empty() {
		return
	}
	fill := s.Fill.Background()
	outlined := s.Outline != None && s.Box.Width() >= 2 && s.Box.Height() >= 2
	for y := visible.Top; y < visible.Bottom; y++ {
		for x := visible.Left; x < visible.Right; x++ {
			cr := ColorRune{fg: Default, bg: fill}
			if outlined {
				if r := edgeRune(s.Box, x, y); r != 0 {
					cr.fg = s.Outline
					cr.r = r
				}
			}
			c.chars[uint(y)*c.w+uint(x)] = cr
		}
	}
}

// edgeRune returns the outline rune for (x, y) on the border of b, or 0
// for points inside the border.
func edgeRune(b Box, x, y int) rune {
	left, right := x == b.Left, x == b.Right-1
	top, bottom := y == b.Top, y == b.Bottom-1
	switch {
	case top && left:
		return TL
	case top && right:
		return TR
	case bottom && left:
		return BL
	case bottom && right:
		return BR
	case top || bottom:
		return HL
	case left || right:
		return VL
	}
	return 0
}
