package drunkard

// DeriveWalls promotes every empty tile orthogonally adjacent to floor into a
// wall. Only interior floor tiles are inspected, scanning columns left to
// right and each column bottom to top. It returns the number of walls placed;
// running it again on the same grid places none.
func DeriveWalls(g *Grid, obs Observer) int {
	if obs == nil {
		obs = NopObserver{}
	}
	placed := 0
	try := func(x, y int) {
		if g.promoteWall(x, y) {
			obs.OnWall(x, y)
			placed++
		}
	}
	w, h := g.Width(), g.Height()
	for x := 1; x < w-1; x++ {
		for y := 1; y < h-1; y++ {
			if Cell(g.cells.Get(x, y)) != CellFloor {
				continue
			}
			try(x+1, y)
			try(x-1, y)
			try(x, y+1)
			try(x, y-1)
		}
	}
	return placed
}

// SelectSpawn returns the first interior floor tile in the same scan order
// DeriveWalls uses.
func SelectSpawn(g *Grid) (Point, bool) {
	w, h := g.Width(), g.Height()
	for x := 1; x < w-1; x++ {
		for y := 1; y < h-1; y++ {
			if Cell(g.cells.Get(x, y)) == CellFloor {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}
