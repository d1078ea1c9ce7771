package drunkard

import "image/color"

var tilePalette = []color.RGBA{
	CellEmpty: {R: 12, G: 12, B: 16, A: 255},
	CellFloor: {R: 196, G: 164, B: 112, A: 255},
	CellWall:  {R: 72, G: 76, B: 92, A: 255},
}

// Palette maps Cell codes to display colors.
func (s *Sim) Palette() []color.RGBA {
	return tilePalette
}
