//go:build ebiten

package ui

import (
	"image/color"

	"walkgen/internal/core"
	"walkgen/internal/sims/drunkard"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type walkerProvider interface {
	Walkers() []drunkard.Walker
}

type spawnProvider interface {
	SpawnPoint() (drunkard.Point, bool)
}

// Overlay draws walker positions and the spawn point over the map.
type Overlay struct {
	sim         core.Sim
	scale       int
	showWalkers bool
	showSpawn   bool
	pixel       *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showWalkers: true, showSpawn: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 for walkers, 2 for the spawn marker.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWalkers = !o.showWalkers
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSpawn = !o.showSpawn
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showWalkers {
		if provider, ok := o.sim.(walkerProvider); ok {
			for _, w := range provider.Walkers() {
				o.fillCell(screen, size, scale, w.X, w.Y, 0.2, color.RGBA{R: 230, G: 60, B: 60, A: 255})
			}
		}
	}
	if o.showSpawn {
		if provider, ok := o.sim.(spawnProvider); ok {
			if p, found := provider.SpawnPoint(); found {
				o.fillCell(screen, size, scale, p.X, p.Y, 0, color.RGBA{R: 80, G: 200, B: 255, A: 255})
			}
		}
	}
}

// fillCell paints tile (x, y) inset by the given fraction of a tile on each
// side. Rows are flipped to match the grid painter.
func (o *Overlay) fillCell(screen *ebiten.Image, size core.Size, scale, x, y int, inset float64, col color.RGBA) {
	s := float64(scale)
	side := s * (1 - 2*inset)
	if side <= 0 {
		side = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(side, side)
	op.GeoM.Translate(float64(x)*s+s*inset, float64(size.H-1-y)*s+s*inset)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
