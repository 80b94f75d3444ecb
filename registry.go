package erase

import (
	"sync"

	"github.com/pkg/errors"
)

// ShapeID is a handle to a shape in a Registry. The zero value is never issued.
type ShapeID uint32

// Shape is a filled rectangle with an optional outline.
type Shape struct {
	ID      ShapeID
	Box     Box
	Fill    AttributeColor
	Outline AttributeColor // None for no outline
}

// Drawer is the part of a drawing surface that the grid builder and the
// eraser need.
type Drawer interface {
	CreateRectangle(b Box, fill AttributeColor) ShapeID
	SetFill(id ShapeID, c AttributeColor) error
	SetOutline(id ShapeID, c AttributeColor) error
	MoveTo(id ShapeID, x, y int) error
	FindOverlapping(b Box) []ShapeID
}

// Registry holds every shape on the canvas, in creation order.
// Creation order is also paint order.
type Registry struct {
	mut     *sync.RWMutex
	shapes  []Shape
	index   map[ShapeID]int
	lastID  ShapeID
	version uint64 // bumped on every change
}

// NewRegistry creates an empty shape registry.
func NewRegistry() *Registry {
	return &Registry{
		mut:   &sync.RWMutex{},
		index: make(map[ShapeID]int),
	}
}

// CreateRectangle adds a rectangle with the given fill and no outline.
func (r *Registry) CreateRectangle(b Box, fill AttributeColor) ShapeID {
	r.mut.Lock()
	defer r.mut.Unlock()
	r.lastID++
	id := r.lastID
	r.index[id] = len(r.shapes)
	r.shapes = append(r.shapes, Shape{ID: id, Box: b, Fill: fill})
	r.version++
	return id
}

// update applies f to the shape with the given id, under the write lock.
func (r *Registry) update(id ShapeID, f func(s *Shape) bool) error {
	r.mut.Lock()
	defer r.mut.Unlock()
	i, ok := r.index[id]
	if !ok {
		return errors.Wrapf(ErrNoSuchShape, "shape %d", id)
	}
	if f(&r.shapes[i]) {
		r.version++
	}
	return nil
}

// SetFill sets the fill color of a shape.
func (r *Registry) SetFill(id ShapeID, c AttributeColor) error {
	return r.update(id, func(s *Shape) bool {
		if s.Fill == c {
			return false
		}
		s.Fill = c
		return true
	})
}

// SetOutline sets the outline color of a shape. None removes the outline.
func (r *Registry) SetOutline(id ShapeID, c AttributeColor) error {
	return r.update(id, func(s *Shape) bool {
		if s.Outline == c {
			return false
		}
		s.Outline = c
		return true
	})
}

// MoveTo moves the top-left corner of a shape to (x, y), keeping its size.
func (r *Registry) MoveTo(id ShapeID, x, y int) error {
	return r.update(id, func(s *Shape) bool {
		if s.Box.Left == x && s.Box.Top == y {
			return false
		}
		s.Box = s.Box.MoveTo(x, y)
		return true
	})
}

// FindOverlapping returns the shapes whose boxes overlap b, in creation order.
func (r *Registry) FindOverlapping(b Box) []ShapeID {
	r.mut.RLock()
	defer r.mut.RUnlock()
	var found []ShapeID
	for _, s := range r.shapes {
		if s.Box.Overlaps(b) {
			found = append(found, s.ID)
		}
	}
	return found
}

// Shape returns a copy of the shape with the given id.
func (r *Registry) Shape(id ShapeID) (Shape, bool) {
	r.mut.RLock()
	defer r.mut.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return Shape{}, false
	}
	return r.shapes[i], true
}

// Shapes returns a copy of all shapes, in creation order.
func (r *Registry) Shapes() []Shape {
	r.mut.RLock()
	defer r.mut.RUnlock()
	shapes := make([]Shape, len(r.shapes))
	copy(shapes, r.shapes)
	return shapes
}

// Len returns the number of shapes.
func (r *Registry) Len() int {
	r.mut.RLock()
	defer r.mut.RUnlock()
	return len(r.shapes)
}

// CountFill returns how many of the given shapes currently have the fill color c.
func (r *Registry) CountFill(ids []ShapeID, c AttributeColor) int {
	r.mut.RLock()
	defer r.mut.RUnlock()
	n := 0
	for _, id := range ids {
		if i, ok := r.index[id]; ok && r.shapes[i].Fill == c {
			n++
		}
	}
	return n
}

// Version changes every time a shape is added or modified.
func (r *Registry) Version() uint64 {
	r.mut.RLock()
	defer r.mut.RUnlock()
	return r.version
}
