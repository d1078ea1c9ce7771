// Package term draws generation events into a terminal screen.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"walkgen/internal/sims/drunkard"
)

const (
	glyphFloor = '.'
	glyphWall  = '#'
	glyphSpawn = '@'
)

// Styles holds the tcell styles used per tile kind.
type Styles struct {
	Floor  tcell.Style
	Fresh  tcell.Style
	Wall   tcell.Style
	Spawn  tcell.Style
	Status tcell.Style
}

// DefaultStyles returns the built-in colour scheme.
func DefaultStyles() Styles {
	return Styles{
		Floor:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(196, 164, 112)),
		Fresh:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Wall:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(110, 116, 140)),
		Spawn:  tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
		Status: tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
}

// Renderer is a drunkard.Observer that mirrors tile events onto a tcell
// screen. The map is centred on the screen with grid row 0 at the bottom.
// Tiles carved since the last Flush are highlighted.
type Renderer struct {
	screen tcell.Screen
	styles Styles

	w, h       int
	offX, offY int

	fresh mapset.Set[drunkard.Point]
}

// New returns a renderer for a w x h grid.
func New(screen tcell.Screen, w, h int) *Renderer {
	r := &Renderer{
		screen: screen,
		styles: DefaultStyles(),
		w:      w,
		h:      h,
		fresh:  mapset.New[drunkard.Point](),
	}
	r.Resize()
	return r
}

// Resize recomputes the centring offset from the current screen size.
func (r *Renderer) Resize() {
	sw, sh := r.screen.Size()
	r.offX = max(0, (sw-r.w)/2)
	// Keep the bottom row free for the status line.
	r.offY = max(0, (sh-1-r.h)/2)
}

// ScreenPos maps a grid coordinate to a screen cell. ok is false when the
// cell falls outside the screen.
func (r *Renderer) ScreenPos(x, y int) (int, int, bool) {
	sx := r.offX + x
	sy := r.offY + (r.h - 1 - y)
	sw, sh := r.screen.Size()
	return sx, sy, sx >= 0 && sx < sw && sy >= 0 && sy < sh-1
}

// OnCarve draws a freshly carved floor tile.
func (r *Renderer) OnCarve(x, y int) {
	r.fresh.Put(drunkard.Point{X: x, Y: y})
	r.put(x, y, glyphFloor, r.styles.Fresh)
}

// OnWall draws a wall tile.
func (r *Renderer) OnWall(x, y int) {
	r.put(x, y, glyphWall, r.styles.Wall)
}

// OnSpawnPoint marks the spawn tile, or notes that none was found.
func (r *Renderer) OnSpawnPoint(p drunkard.Point, ok bool) {
	if !ok {
		r.Status("no spawn point")
		return
	}
	r.put(p.X, p.Y, glyphSpawn, r.styles.Spawn)
}

// Flush shows pending changes and demotes highlighted tiles to plain floor
// for the next frame.
func (r *Renderer) Flush() {
	r.screen.Show()
	r.fresh.Each(func(p drunkard.Point) {
		r.put(p.X, p.Y, glyphFloor, r.styles.Floor)
	})
	r.fresh = mapset.New[drunkard.Point]()
}

// Redraw repaints the whole grid, e.g. after a resize.
func (r *Renderer) Redraw(g *drunkard.Grid, spawn drunkard.Point, hasSpawn bool) {
	r.screen.Clear()
	r.Resize()
	cells := g.Cells()
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			switch drunkard.Cell(cells[y*r.w+x]) {
			case drunkard.CellFloor:
				r.put(x, y, glyphFloor, r.styles.Floor)
			case drunkard.CellWall:
				r.put(x, y, glyphWall, r.styles.Wall)
			}
		}
	}
	if hasSpawn {
		r.put(spawn.X, spawn.Y, glyphSpawn, r.styles.Spawn)
	}
}

// Status writes msg on the bottom screen row, replacing what was there.
func (r *Renderer) Status(msg string) {
	sw, sh := r.screen.Size()
	if sh == 0 {
		return
	}
	row := sh - 1
	runes := []rune(msg)
	for x := 0; x < sw; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.screen.SetContent(x, row, ch, nil, r.styles.Status)
	}
}

func (r *Renderer) put(x, y int, ch rune, style tcell.Style) {
	sx, sy, ok := r.ScreenPos(x, y)
	if !ok {
		return
	}
	r.screen.SetContent(sx, sy, ch, nil, style)
}
