package main

import "walkgen/internal/sims/drunkard"

// tally counts generation events for the status line.
type tally struct {
	carved int
	walls  int
	spawn  bool
}

func (t *tally) OnCarve(int, int) { t.carved++ }
func (t *tally) OnWall(int, int) { t.walls++ }
func (t *tally) OnSpawnPoint(_ drunkard.Point, ok bool) { t.spawn = ok }
