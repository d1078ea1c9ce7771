package term

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walkgen/internal/sims/drunkard"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func glyphAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func TestScreenPosCentresAndFlips(t *testing.T) {
	s := newScreen(t, 40, 21)
	r := New(s, 10, 10)

	x, y, ok := r.ScreenPos(0, 0)
	require.True(t, ok)
	assert.Equal(t, 15, x)
	assert.Equal(t, 14, y, "grid row 0 is drawn lowest")

	x, y, ok = r.ScreenPos(9, 9)
	require.True(t, ok)
	assert.Equal(t, 24, x)
	assert.Equal(t, 5, y)
}

func TestScreenPosClipsSmallScreens(t *testing.T) {
	s := newScreen(t, 4, 4)
	r := New(s, 10, 10)
	_, _, ok := r.ScreenPos(9, 0)
	assert.False(t, ok)
	r.OnCarve(9, 0)
}

func TestEventsDrawGlyphs(t *testing.T) {
	s := newScreen(t, 20, 12)
	r := New(s, 8, 8)

	r.OnCarve(3, 3)
	r.OnWall(3, 4)
	r.OnSpawnPoint(drunkard.Point{X: 3, Y: 3}, true)

	fx, fy, _ := r.ScreenPos(3, 3)
	wx, wy, _ := r.ScreenPos(3, 4)
	assert.Equal(t, glyphSpawn, glyphAt(s, fx, fy))
	assert.Equal(t, glyphWall, glyphAt(s, wx, wy))
}

func TestFlushDemotesFreshTiles(t *testing.T) {
	s := newScreen(t, 20, 12)
	r := New(s, 8, 8)

	r.OnCarve(2, 2)
	sx, sy, _ := r.ScreenPos(2, 2)
	_, _, style, _ := s.GetContent(sx, sy)
	assert.Equal(t, r.styles.Fresh, style)

	r.Flush()
	ch, _, style, _ := s.GetContent(sx, sy)
	assert.Equal(t, glyphFloor, ch)
	assert.Equal(t, r.styles.Floor, style)
	assert.Zero(t, r.fresh.Size())
}

func TestMissingSpawnWritesStatus(t *testing.T) {
	s := newScreen(t, 20, 6)
	r := New(s, 5, 5)
	r.OnSpawnPoint(drunkard.Point{}, false)
	assert.Equal(t, 'n', glyphAt(s, 0, 5))
	assert.Equal(t, 't', glyphAt(s, 13, 5))
}

func TestRendererMirrorsGeneration(t *testing.T) {
	s := newScreen(t, 40, 30)
	cfg := drunkard.DefaultConfig()
	cfg.Width, cfg.Height = 20, 16
	cfg.FillPercentage = 0.3
	cfg.Seed = 5

	r := New(s, cfg.Width, cfg.Height)
	e, err := drunkard.New(cfg, r)
	require.NoError(t, err)
	res, err := e.Run(context.Background())
	require.NoError(t, err)
	r.Flush()

	g := e.Grid()
	cells := g.Cells()
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			sx, sy, ok := r.ScreenPos(x, y)
			require.True(t, ok)
			got := glyphAt(s, sx, sy)
			if res.HasSpawn && res.Spawn == (drunkard.Point{X: x, Y: y}) {
				assert.Equal(t, glyphSpawn, got)
				continue
			}
			switch drunkard.Cell(cells[y*cfg.Width+x]) {
			case drunkard.CellFloor:
				assert.Equal(t, glyphFloor, got, "(%d,%d)", x, y)
			case drunkard.CellWall:
				assert.Equal(t, glyphWall, got, "(%d,%d)", x, y)
			default:
				assert.Equal(t, ' ', got, "(%d,%d)", x, y)
			}
		}
	}

	// A redraw from the grid must match the event-built picture.
	before := snapshot(s)
	r.Redraw(g, res.Spawn, res.HasSpawn)
	assert.Equal(t, before, snapshot(s))
}

func snapshot(s tcell.Screen) []rune {
	w, h := s.Size()
	out := make([]rune, 0, w*h)
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			out = append(out, glyphAt(s, x, y))
		}
	}
	return out
}
