package drunkard

import "walkgen/internal/core"

// Cell enumerates the state of a single tile.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellFloor
	CellWall
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellFloor:
		return "floor"
	case CellWall:
		return "wall"
	}
	return "unknown"
}

// Point is a grid-local coordinate.
type Point struct {
	X, Y int
}

// Grid owns the tile states of one generation along with a running count of
// floor tiles. The count only changes through Carve.
type Grid struct {
	cells  *core.ByteGrid
	floors int
}

// NewGrid allocates an all-empty grid.
func NewGrid(w, h int) *Grid {
	return &Grid{cells: core.NewByteGrid(w, h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cells.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cells.H }

// Cells exposes the row-major tile buffer for rendering. Values are Cell codes.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// FloorCount returns the number of floor tiles carved so far.
func (g *Grid) FloorCount() int { return g.floors }

// FillRatio returns the share of the grid that is floor.
func (g *Grid) FillRatio() float64 {
	return float64(g.floors) / float64(g.cells.W*g.cells.H)
}

// At returns the state of (x, y).
func (g *Grid) At(x, y int) (Cell, error) {
	if err := g.check(x, y); err != nil {
		return CellEmpty, err
	}
	return Cell(g.cells.Get(x, y)), nil
}

// Carve turns (x, y) into floor and reports whether the tile was new.
// Carving an existing floor tile is a no-op.
func (g *Grid) Carve(x, y int) (bool, error) {
	if err := g.check(x, y); err != nil {
		return false, err
	}
	if Cell(g.cells.Get(x, y)) == CellFloor {
		return false, nil
	}
	g.cells.Set(x, y, uint8(CellFloor))
	g.floors++
	return true, nil
}

// CountFloors recounts floor tiles from the buffer.
func (g *Grid) CountFloors() int { return g.cells.Count(uint8(CellFloor)) }

// promoteWall turns an empty tile into a wall. Other states are left alone.
func (g *Grid) promoteWall(x, y int) bool {
	if !g.cells.InBounds(x, y) || Cell(g.cells.Get(x, y)) != CellEmpty {
		return false
	}
	g.cells.Set(x, y, uint8(CellWall))
	return true
}

func (g *Grid) check(x, y int) error {
	if !g.cells.InBounds(x, y) {
		return &BoundsError{X: x, Y: y, Width: g.cells.W, Height: g.cells.H}
	}
	return nil
}

// interior reports whether (x, y) lies inside the ring walkers are clamped to.
func (g *Grid) interior(x, y int) bool {
	return x >= 1 && x <= g.cells.W-2 && y >= 1 && y <= g.cells.H-2
}
