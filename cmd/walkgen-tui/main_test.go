package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walkgen/internal/sims/drunkard"
)

func smallGenerator(seed int64) drunkard.Config {
	cfg := drunkard.DefaultConfig()
	cfg.Width, cfg.Height = 20, 12
	cfg.MaxWalkers = 4
	cfg.FillPercentage = 0.35
	cfg.Seed = seed
	return cfg
}

func TestTallyCountsEvents(t *testing.T) {
	counts := &tally{}
	e, err := drunkard.New(smallGenerator(3), drunkard.Observers{drunkard.NopObserver{}, counts})
	require.NoError(t, err)
	res, err := e.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, res.FloorCount, counts.carved)
	assert.Equal(t, res.Walls, counts.walls)
	assert.Equal(t, res.HasSpawn, counts.spawn)
}

func TestStatusLine(t *testing.T) {
	counts := &tally{}
	e, err := drunkard.New(smallGenerator(5), counts)
	require.NoError(t, err)

	res, err := e.Step()
	require.NoError(t, err)
	assert.Contains(t, statusLine(e, counts, res, false), "walkers")
	assert.Contains(t, statusLine(e, counts, res, true), "paused")

	_, err = e.Run(context.Background())
	require.NoError(t, err)
	done := statusLine(e, counts, res, false)
	assert.Contains(t, done, "done in")
	assert.Contains(t, done, "spawn set")
}

func TestPollDoesNotBlockWhileRunning(t *testing.T) {
	commands := make(chan command, 1)
	assert.Equal(t, cmdNone, poll(commands, false))
	commands <- cmdQuit
	assert.Equal(t, cmdQuit, poll(commands, true))
}
