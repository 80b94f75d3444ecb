package erase

import (
	"context"

	"github.com/pkg/errors"
)

// Pointer is a source of pointer positions and clicks.
type Pointer interface {
	// Position returns the most recently reported pointer position.
	Position() (int, int)
	// WaitForClick blocks until the next click and returns where it happened.
	WaitForClick(ctx context.Context) (int, int, error)
}

// Eraser is a square shape that blanks every other shape it overlaps.
type Eraser struct {
	id    ShapeID
	size  int
	blank AttributeColor
	box   Box
}

// NewEraser creates the eraser shape with its top-left corner at (x, y).
func NewEraser(d Drawer, x, y, size int, fill, blank AttributeColor) (*Eraser, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "eraser size must be positive, got %d", size)
	}
	box := Rect(x, y, size, size)
	return &Eraser{
		id:    d.CreateRectangle(box, fill),
		size:  size,
		blank: blank,
		box:   box,
	}, nil
}

// PlaceEraser waits for a click and creates the eraser where it landed.
func PlaceEraser(ctx context.Context, d Drawer, p Pointer, size int, fill, blank AttributeColor) (*Eraser, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "eraser size must be positive, got %d", size)
	}
	x, y, err := p.WaitForClick(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "waiting for the first click")
	}
	return NewEraser(d, x, y, size, fill, blank)
}

// ID returns the handle of the eraser's shape.
func (e *Eraser) ID() ShapeID {
	return e.id
}

// Bounds returns the eraser's current bounding box.
func (e *Eraser) Bounds() Box {
	return e.box
}

// MoveTo moves the eraser's top-left corner to (x, y).
func (e *Eraser) MoveTo(d Drawer, x, y int) error {
	if err := d.MoveTo(e.id, x, y); err != nil {
		return err
	}
	e.box = Rect(x, y, e.size, e.size)
	return nil
}

// Erase sets every shape overlapping the eraser, except the eraser itself,
// to the blank color. It returns the number of shapes it recolored.
func (e *Eraser) Erase(d Drawer) (int, error) {
	erased := 0
	for _, id := range d.FindOverlapping(e.box) {
		if id == e.id {
			continue
		}
		if err := d.SetFill(id, e.blank); err != nil {
			return erased, err
		}
		erased++
	}
	return erased, nil
}

// Step moves the eraser to (x, y) and erases what it now overlaps.
func (e *Eraser) Step(d Drawer, x, y int) (int, error) {
	if err := e.MoveTo(d, x, y); err != nil {
		return 0, err
	}
	return e.Erase(d)
}
