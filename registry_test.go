package erase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCreateAndLookup(t *testing.T) {
	r := NewRegistry()
	a := r.CreateRectangle(Rect(0, 0, 2, 2), Blue)
	b := r.CreateRectangle(Rect(2, 0, 2, 2), Red)
	assert.NotEqual(t, ShapeID(0), a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, r.Len())

	s, ok := r.Shape(b)
	require.True(t, ok)
	assert.Equal(t, Rect(2, 0, 2, 2), s.Box)
	assert.Equal(t, Red, s.Fill)
	assert.Equal(t, None, s.Outline)

	_, ok = r.Shape(ShapeID(99))
	assert.False(t, ok)
}

func TestRegistrySetColors(t *testing.T) {
	r := NewRegistry()
	id := r.CreateRectangle(Rect(0, 0, 2, 2), Blue)
	require.NoError(t, r.SetFill(id, LightGray))
	require.NoError(t, r.SetOutline(id, Black))
	s, _ := r.Shape(id)
	assert.Equal(t, LightGray, s.Fill)
	assert.Equal(t, Black, s.Outline)
}

func TestRegistryUnknownShape(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.SetFill(ShapeID(7), Blue), ErrNoSuchShape)
	assert.ErrorIs(t, r.SetOutline(ShapeID(7), Blue), ErrNoSuchShape)
	assert.ErrorIs(t, r.MoveTo(ShapeID(7), 1, 1), ErrNoSuchShape)
}

func TestRegistryMoveTo(t *testing.T) {
	r := NewRegistry()
	id := r.CreateRectangle(Rect(0, 0, 3, 2), Pink)
	require.NoError(t, r.MoveTo(id, 5, 6))
	s, _ := r.Shape(id)
	assert.Equal(t, Rect(5, 6, 3, 2), s.Box)
}

func TestRegistryFindOverlappingInCreationOrder(t *testing.T) {
	r := NewRegistry()
	a := r.CreateRectangle(Rect(0, 0, 2, 2), Blue)
	b := r.CreateRectangle(Rect(2, 0, 2, 2), Blue)
	c := r.CreateRectangle(Rect(4, 0, 2, 2), Blue)

	assert.Equal(t, []ShapeID{a, b}, r.FindOverlapping(Rect(1, 0, 2, 1)))
	assert.Equal(t, []ShapeID{c}, r.FindOverlapping(Rect(4, 1, 10, 10)))
	assert.Empty(t, r.FindOverlapping(Rect(6, 0, 2, 2)))
	assert.Empty(t, r.FindOverlapping(Rect(-5, -5, 3, 3)))
}

func TestRegistryVersionTracksChanges(t *testing.T) {
	r := NewRegistry()
	v0 := r.Version()
	id := r.CreateRectangle(Rect(0, 0, 2, 2), Blue)
	v1 := r.Version()
	assert.Greater(t, v1, v0)

	require.NoError(t, r.SetFill(id, Blue))
	assert.Equal(t, v1, r.Version(), "setting the same color is not a change")

	require.NoError(t, r.SetFill(id, Red))
	assert.Greater(t, r.Version(), v1)
}

func TestRegistryCountFill(t *testing.T) {
	r := NewRegistry()
	a := r.CreateRectangle(Rect(0, 0, 1, 1), Blue)
	b := r.CreateRectangle(Rect(1, 0, 1, 1), LightGray)
	c := r.CreateRectangle(Rect(2, 0, 1, 1), LightGray)
	assert.Equal(t, 2, r.CountFill([]ShapeID{a, b, c}, LightGray))
	assert.Equal(t, 1, r.CountFill([]ShapeID{a, b}, LightGray))
	assert.Equal(t, 0, r.CountFill(nil, LightGray))
}

func TestRegistryShapesIsACopy(t *testing.T) {
	r := NewRegistry()
	id := r.CreateRectangle(Rect(0, 0, 1, 1), Blue)
	shapes := r.Shapes()
	shapes[0].Fill = Red
	s, _ := r.Shape(id)
	assert.Equal(t, Blue, s.Fill)
}
