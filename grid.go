package erase

import "github.com/pkg/errors"

// Grid describes a canvas divided into square cells.
type Grid struct {
	Width    int
	Height   int
	CellSize int
	Fill     AttributeColor
	Outline  AttributeColor
}

// Rows returns the number of whole rows of cells that fit.
func (g Grid) Rows() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Height / g.CellSize
}

// Columns returns the number of whole columns of cells that fit.
func (g Grid) Columns() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Width / g.CellSize
}

// Cells returns the number of cells BuildGrid creates.
func (g Grid) Cells() int {
	return g.Rows() * g.Columns()
}

// CellBox returns the box of the cell at the given row and column.
func (g Grid) CellBox(row, col int) Box {
	return Rect(col*g.CellSize, row*g.CellSize, g.CellSize, g.CellSize)
}

func (g Grid) validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "grid size must be positive, got %dx%d", g.Width, g.Height)
	}
	if g.CellSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "cell size must be positive, got %d", g.CellSize)
	}
	return nil
}

// BuildGrid creates one rectangle per cell, row by row, and returns their ids.
// Partial cells at the right and bottom edges are left out.
func BuildGrid(d Drawer, g Grid) ([]ShapeID, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	rows, cols := g.Rows(), g.Columns()
	cells := make([]ShapeID, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			id := d.CreateRectangle(g.CellBox(row, col), g.Fill)
			if err := d.SetOutline(id, g.Outline); err != nil {
				return cells, err
			}
			cells = append(cells, id)
		}
	}
	return cells, nil
}
