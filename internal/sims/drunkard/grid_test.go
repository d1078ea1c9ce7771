package drunkard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarveCountsDistinctTiles(t *testing.T) {
	g := NewGrid(10, 10)

	added, err := g.Carve(3, 4)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = g.Carve(3, 4)
	require.NoError(t, err)
	assert.False(t, added, "re-carving a floor tile must be a no-op")

	assert.Equal(t, 1, g.FloorCount())
	assert.Equal(t, g.CountFloors(), g.FloorCount())
	assert.InDelta(t, 0.01, g.FillRatio(), 1e-12)

	cell, err := g.At(3, 4)
	require.NoError(t, err)
	assert.Equal(t, CellFloor, cell)
}

func TestCarveOverWallBecomesFloor(t *testing.T) {
	g := NewGrid(6, 6)
	require.True(t, g.promoteWall(2, 2))

	added, err := g.Carve(2, 2)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 1, g.FloorCount())
}

func TestGridRejectsOutOfRange(t *testing.T) {
	g := NewGrid(5, 7)
	for _, p := range []Point{{-1, 0}, {5, 0}, {0, 7}, {0, -1}} {
		_, err := g.Carve(p.X, p.Y)
		var be *BoundsError
		require.True(t, errors.As(err, &be), "carve %v should fail with BoundsError", p)
		assert.Equal(t, p.X, be.X)
		assert.Equal(t, p.Y, be.Y)
		assert.Equal(t, 5, be.Width)
		assert.Equal(t, 7, be.Height)

		_, err = g.At(p.X, p.Y)
		assert.True(t, errors.As(err, &be))
	}
	assert.Zero(t, g.FloorCount())
}

func TestPromoteWallOnlyTouchesEmpty(t *testing.T) {
	g := NewGrid(5, 5)
	_, err := g.Carve(2, 2)
	require.NoError(t, err)

	assert.False(t, g.promoteWall(2, 2), "floor must not become wall")
	assert.True(t, g.promoteWall(1, 2))
	assert.False(t, g.promoteWall(1, 2), "wall is promoted once")
	assert.False(t, g.promoteWall(-1, 2))
}
