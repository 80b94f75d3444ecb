package erase

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// ColorRune holds a single terminal character cell: its rune and
// foreground/background colors.
type ColorRune struct {
	fg AttributeColor
	bg AttributeColor
	r  rune
}

// Canvas is a 2-D grid of colored characters that renders itself to a
// terminal, skipping frames where nothing changed.
type Canvas struct {
	mut      *sync.RWMutex
	out      io.Writer
	chars    []ColorRune
	oldchars []ColorRune
	w        uint
	h        uint
}

// NewCanvas creates a canvas of the given size that draws to stdout.
func NewCanvas(w, h uint) *Canvas {
	return NewCanvasWriter(w, h, os.Stdout)
}

// NewCanvasWriter creates a canvas of the given size that draws to out.
func NewCanvasWriter(w, h uint, out io.Writer) *Canvas {
	c := &Canvas{
		mut: &sync.RWMutex{},
		out: out,
		w:   w,
		h:   h,
	}
	c.chars = make([]ColorRune, w*h)
	c.fillBackground(DefaultBackground)
	return c
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (uint, uint) {
	c.mut.RLock()
	defer c.mut.RUnlock()
	return c.w, c.h
}

// FillBackground sets every cell to a blank rune on the given background.
func (c *Canvas) FillBackground(bg AttributeColor) {
	c.mut.Lock()
	defer c.mut.Unlock()
	c.fillBackground(bg)
}

// fillBackground is FillBackground for callers that hold the lock.
func (c *Canvas) fillBackground(bg AttributeColor) {
	bgb := bg.Background()
	for i := range c.chars {
		c.chars[i] = ColorRune{fg: Default, bg: bgb}
	}
}

// WriteRune writes a single colored rune at (x, y). Out of bounds writes are ignored.
func (c *Canvas) WriteRune(x, y uint, fg, bg AttributeColor, r rune) {
	c.mut.Lock()
	defer c.mut.Unlock()
	if x >= c.w || y >= c.h {
		return
	}
	c.chars[y*c.w+x] = ColorRune{fg: fg, bg: bg.Background(), r: r}
}

// WriteString writes s starting at (x, y), clipped at the end of the row.
func (c *Canvas) WriteString(x, y uint, fg, bg AttributeColor, s string) {
	c.mut.Lock()
	defer c.mut.Unlock()
	if y >= c.h {
		return
	}
	bgb := bg.Background()
	for _, r := range s {
		if x >= c.w {
			break
		}
		c.chars[y*c.w+x] = ColorRune{fg: fg, bg: bgb, r: r}
		x++
	}
}

// At returns the rune at (x, y), or an error if out of bounds.
func (c *Canvas) At(x, y uint) (rune, error) {
	c.mut.RLock()
	defer c.mut.RUnlock()
	if x >= c.w || y >= c.h {
		return rune(0), errors.New("out of bounds")
	}
	return c.chars[y*c.w+x].r, nil
}

// BackgroundAt returns the background color at (x, y), or an error if out of bounds.
func (c *Canvas) BackgroundAt(x, y uint) (AttributeColor, error) {
	c.mut.RLock()
	defer c.mut.RUnlock()
	if x >= c.w || y >= c.h {
		return None, errors.New("out of bounds")
	}
	return c.chars[y*c.w+x].bg, nil
}

// String returns the canvas contents as plain text, one row per line.
func (c *Canvas) String() string {
	var sb strings.Builder
	c.mut.RLock()
	defer c.mut.RUnlock()
	for y := uint(0); y < c.h; y++ {
		for x := uint(0); x < c.w; x++ {
			if r := c.chars[y*c.w+x].r; r != rune(0) {
				sb.WriteRune(r)
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Resize changes the canvas size, discarding the contents.
func (c *Canvas) Resize(w, h uint) {
	c.mut.Lock()
	defer c.mut.Unlock()
	if w == c.w && h == c.h {
		return
	}
	c.w, c.h = w, h
	c.chars = make([]ColorRune, w*h)
	c.oldchars = nil
	c.fillBackground(DefaultBackground)
}

// changed reports whether the contents differ from the last drawn frame.
// The caller must hold the lock.
func (c *Canvas) changed() bool {
	if len(c.oldchars) != len(c.chars) {
		return true
	}
	for i := range c.chars {
		if c.chars[i] != c.oldchars[i] {
			return true
		}
	}
	return false
}

// frame renders the whole canvas as one string of VT100 output.
// The very last cell is left out so that the terminal does not scroll.
// The caller must hold the lock.
func (c *Canvas) frame() string {
	var (
		sb     strings.Builder
		lastfg AttributeColor
		lastbg AttributeColor
	)
	size := c.w * c.h
	if size == 0 {
		return ""
	}
	sb.Grow(int(size) * 2)
	sb.WriteString(cursorHome)
	for index := uint(0); index < size-1; index++ {
		if index > 0 && index%c.w == 0 {
			sb.WriteString(NoColor)
			sb.WriteString(setXY(0, index/c.w))
			lastfg, lastbg = None, None
		}
		cr := c.chars[index]
		if lastfg == None || !lastfg.Equal(cr.fg) || !lastbg.Equal(cr.bg) {
			sb.WriteString(cr.fg.Combine(cr.bg).String())
		}
		if cr.r != 0 {
			sb.WriteRune(cr.r)
		} else {
			sb.WriteByte(' ')
		}
		lastfg = cr.fg
		lastbg = cr.bg
	}
	sb.WriteString(NoColor)
	return sb.String()
}

// Draw writes the canvas to the terminal if it changed since the last frame.
// It returns true when a frame was written.
func (c *Canvas) Draw() (bool, error) {
	c.mut.Lock()
	defer c.mut.Unlock()
	if !c.changed() {
		return false, nil
	}
	if err := writeAll(c.out, []byte(c.frame())); err != nil {
		return false, err
	}
	if len(c.oldchars) != len(c.chars) {
		c.oldchars = make([]ColorRune, len(c.chars))
	}
	copy(c.oldchars, c.chars)
	return true, nil
}

// RedrawFull forgets the last drawn frame and draws everything again.
func (c *Canvas) RedrawFull() error {
	c.mut.Lock()
	c.oldchars = nil
	c.mut.Unlock()
	_, err := c.Draw()
	return err
}
