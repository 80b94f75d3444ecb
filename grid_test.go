package erase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGridCellCount(t *testing.T) {
	for _, g := range []Grid{
		{Width: 40, Height: 40, CellSize: 20},
		{Width: 600, Height: 600, CellSize: 20},
		{Width: 80, Height: 24, CellSize: 2},
		{Width: 7, Height: 3, CellSize: 1},
	} {
		r := NewRegistry()
		cells, err := BuildGrid(r, g)
		require.NoError(t, err)
		want := (g.Width / g.CellSize) * (g.Height / g.CellSize)
		assert.Len(t, cells, want, "%dx%d/%d", g.Width, g.Height, g.CellSize)
		assert.Equal(t, want, r.Len())
		assert.Equal(t, want, g.Cells())
	}
}

func TestBuildGridFourCells(t *testing.T) {
	r := NewRegistry()
	cells, err := BuildGrid(r, Grid{Width: 40, Height: 40, CellSize: 20, Fill: Blue, Outline: Black})
	require.NoError(t, err)
	require.Len(t, cells, 4)

	want := []Box{
		{0, 0, 20, 20},
		{20, 0, 40, 20},
		{0, 20, 20, 40},
		{20, 20, 40, 40},
	}
	for i, id := range cells {
		s, ok := r.Shape(id)
		require.True(t, ok)
		assert.Equal(t, want[i], s.Box)
		assert.Equal(t, Blue, s.Fill)
		assert.Equal(t, Black, s.Outline)
	}
}

func TestBuildGridOmitsPartialCells(t *testing.T) {
	g := Grid{Width: 45, Height: 30, CellSize: 20}
	assert.Equal(t, 2, g.Columns())
	assert.Equal(t, 1, g.Rows())

	r := NewRegistry()
	cells, err := BuildGrid(r, g)
	require.NoError(t, err)
	assert.Len(t, cells, 2)
	assert.Empty(t, r.FindOverlapping(Rect(40, 0, 5, 30)), "no cell reaches into the leftover columns")
}

func TestBuildGridRejectsBadSizes(t *testing.T) {
	for _, g := range []Grid{
		{Width: 0, Height: 10, CellSize: 2},
		{Width: 10, Height: -1, CellSize: 2},
		{Width: 10, Height: 10, CellSize: 0},
		{Width: 10, Height: 10, CellSize: -3},
	} {
		r := NewRegistry()
		cells, err := BuildGrid(r, g)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Empty(t, cells)
		assert.Zero(t, r.Len())
	}
}
