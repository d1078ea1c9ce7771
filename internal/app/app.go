//go:build ebiten

package app

import (
	"image/color"
	"time"

	"walkgen/internal/core"
	"walkgen/internal/render"
	"walkgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel in pixels.
const HUDWidth = 260

type paletteProvider interface {
	Palette() []color.RGBA
}

var grayscale = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 128, G: 128, B: 128, A: 255},
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	size := sim.Size()
	palette := grayscale
	if provider, ok := sim.(paletteProvider); ok {
		palette = provider.Palette()
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, HUDWidth),
		overlay: ui.NewOverlay(sim, scale),
		palette: palette,
		scale:   scale,
		seed:    seed,
	}
}

// Reset regenerates with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(replaySeed(g.sim, g.seed))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update(g.mapWidth())
	g.overlay.Update()

	if finisher, ok := g.sim.(core.Finisher); ok && finisher.Done() {
		return nil
	}
	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the map, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.mapWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.mapWidth() + g.hud.Width(), g.sim.Size().H * g.scale
}

func (g *Game) mapWidth() int { return g.sim.Size().W * g.scale }
