package app

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walkgen/internal/core"
	"walkgen/internal/sims/drunkard"
)

type fixedSim struct{}

func (fixedSim) Name() string { return "fixed" }
func (fixedSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (fixedSim) Reset(int64) {}
func (fixedSim) Step() {}
func (fixedSim) Cells() []uint8 { return []uint8{0} }

func runToCompletion(t *testing.T, sim *drunkard.Sim) []uint8 {
	t.Helper()
	for i := 0; !sim.Done(); i++ {
		require.Less(t, i, 100_000, "generation did not finish")
		sim.Step()
	}
	require.NoError(t, sim.Err())
	return slices.Clone(sim.Cells())
}

func TestReplaySeedKeepsClockSeed(t *testing.T) {
	cfg := drunkard.DefaultConfig()
	cfg.Width, cfg.Height = 20, 14
	cfg.FillPercentage = 0.3
	cfg.Seed = 0

	sim, err := drunkard.NewSim(cfg)
	require.NoError(t, err)
	first := runToCompletion(t, sim)

	seed := replaySeed(sim, 0)
	require.NotZero(t, seed)
	assert.Equal(t, sim.Seed(), seed)

	sim.Reset(seed)
	assert.Equal(t, seed, sim.Seed())
	assert.Equal(t, first, runToCompletion(t, sim), "same seed must regenerate the same map")
}

func TestReplaySeedFallsBack(t *testing.T) {
	assert.Equal(t, int64(7), replaySeed(fixedSim{}, 7))
}
