package drunkard

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walkgen/internal/core"
)

func TestSimRunsToCompletion(t *testing.T) {
	sim, err := NewSim(smallConfig(21))
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 24, H: 18}, sim.Size())
	assert.Len(t, sim.Cells(), 24*18)

	for i := 0; i < 10_000 && !sim.Done(); i++ {
		sim.Step()
	}
	require.True(t, sim.Done())
	require.NoError(t, sim.Err())

	p, ok := sim.SpawnPoint()
	require.True(t, ok)
	assert.Equal(t, byte(CellFloor), sim.Cells()[p.Y*24+p.X])
	assert.Equal(t, PhaseDone, sim.Status().Phase)
}

func TestSimStepWaitsForNewTile(t *testing.T) {
	sim, err := NewSim(smallConfig(22))
	require.NoError(t, err)
	sim.Step()
	status := sim.Status()
	assert.True(t, status.Added || status.Phase == PhaseDone || status.Tick == sim.FrameTicks)
}

func TestSimResetReproducesSeed(t *testing.T) {
	sim, err := NewSim(smallConfig(23))
	require.NoError(t, err)
	for !sim.Done() {
		sim.Step()
	}
	first := append([]uint8(nil), sim.Cells()...)

	sim.Reset(0)
	assert.False(t, sim.Done())
	assert.Equal(t, 1, sim.Engine().Grid().FloorCount())
	for !sim.Done() {
		sim.Step()
	}
	assert.Equal(t, first, sim.Cells())
	assert.Equal(t, int64(23), sim.Seed())
}

func TestSimStopsOnTickBudget(t *testing.T) {
	cfg := smallConfig(24)
	cfg.FillPercentage = 1
	cfg.MaxTicks = 5
	sim, err := NewSim(cfg)
	require.NoError(t, err)
	for i := 0; i < 100 && !sim.Done(); i++ {
		sim.Step()
	}
	require.ErrorIs(t, sim.Err(), ErrTickBudget)
}

func TestSimParameters(t *testing.T) {
	sim, err := NewSim(smallConfig(25))
	require.NoError(t, err)

	snap := sim.Parameters()
	p, ok := snap.Find("max_walkers")
	require.True(t, ok)
	assert.Equal(t, "6", p.Value)
	p, ok = snap.Find("phase")
	require.True(t, ok)
	assert.Equal(t, "running", p.Value)

	require.True(t, sim.SetIntParameter("max_walkers", 2))
	assert.Equal(t, 2, sim.Config().MaxWalkers)
	assert.Equal(t, int64(25), sim.Seed(), "setters keep the seed")

	require.True(t, sim.SetFloatParameter("fill", 0.3))
	assert.Equal(t, 0.3, sim.Config().FillPercentage)

	assert.False(t, sim.SetFloatParameter("fill", 1.5))
	assert.False(t, sim.SetIntParameter("max_walkers", 0))
	assert.False(t, sim.SetFloatParameter("unknown", 0.1))
	assert.Equal(t, 0.3, sim.Config().FillPercentage)

	keys := map[string]bool{}
	for _, ctrl := range sim.ParameterControls() {
		keys[ctrl.Key] = true
		_, ok := snap.Find(ctrl.Key)
		assert.True(t, ok, "control %s has no parameter", ctrl.Key)
	}
	assert.Len(t, keys, 3)
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["drunkard"]
	require.True(t, ok)

	sim := factory(map[string]string{"w": "12", "h": "9"})
	assert.Equal(t, "drunkard", sim.Name())
	assert.Equal(t, core.Size{W: 12, H: 9}, sim.Size())

	fallback := factory(map[string]string{"w": "3"})
	assert.Equal(t, core.Size{W: 30, H: 30}, fallback.Size())

	_, isFinisher := sim.(core.Finisher)
	assert.True(t, isFinisher)
}

func TestPaletteCoversCells(t *testing.T) {
	sim, err := NewSim(smallConfig(26))
	require.NoError(t, err)
	assert.Len(t, sim.Palette(), 3)
}

func TestFactoryFallbackLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	sim := core.Sims()["drunkard"](map[string]string{"w": "3"})
	require.NotNil(t, sim)
	assert.Equal(t, core.Size{W: 30, H: 30}, sim.Size())

	out := buf.String()
	assert.Contains(t, out, "invalid width")
	assert.Equal(t, 1, strings.Count(out, "drunkard:"), "prefix repeated in %q", out)
}
