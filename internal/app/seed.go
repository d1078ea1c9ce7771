package app

import "walkgen/internal/core"

type seeder interface {
	Seed() int64
}

// replaySeed returns the seed that reproduces the sim's current run. Sims
// that report their effective seed win over fallback, so a clock-picked seed
// survives a regenerate.
func replaySeed(sim core.Sim, fallback int64) int64 {
	if s, ok := sim.(seeder); ok && s.Seed() != 0 {
		return s.Seed()
	}
	return fallback
}
