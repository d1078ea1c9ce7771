package drunkard

import (
	"math"
	"strconv"
)

// MinDimension is the smallest width or height that leaves a non-empty
// interior for walkers.
const MinDimension = 5

// Config controls a single generation run.
type Config struct {
	Width  int
	Height int

	MaxWalkers     int
	FillPercentage float64
	MutationChance float64

	// Seed drives every random draw. Zero picks a time-based seed.
	Seed int64
	// MaxTicks bounds the carving loop. Zero disables the guard.
	MaxTicks int
	// SelectSpawn enables the spawn point search after walls are placed.
	SelectSpawn bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          30,
		Height:         30,
		MaxWalkers:     25,
		FillPercentage: 0.85,
		MutationChance: 0.2,
		Seed:           1337,
		MaxTicks:       1_000_000,
		SelectSpawn:    true,
	}
}

// Validate reports the first setting that prevents generation.
func (c Config) Validate() error {
	switch {
	case c.Width < MinDimension:
		return &ConfigError{Field: "width", Reason: "must be at least " + strconv.Itoa(MinDimension)}
	case c.Height < MinDimension:
		return &ConfigError{Field: "height", Reason: "must be at least " + strconv.Itoa(MinDimension)}
	case c.MaxWalkers < 1:
		return &ConfigError{Field: "max walkers", Reason: "must be at least 1"}
	case math.IsNaN(c.FillPercentage) || c.FillPercentage < 0 || c.FillPercentage > 1:
		return &ConfigError{Field: "fill percentage", Reason: "must lie in [0, 1]"}
	case math.IsNaN(c.MutationChance) || c.MutationChance < 0 || c.MutationChance > 1:
		return &ConfigError{Field: "mutation chance", Reason: "must lie in [0, 1]"}
	case c.MaxTicks < 0:
		return &ConfigError{Field: "max ticks", Reason: "must not be negative"}
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Values that fail to parse keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["max_walkers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxWalkers = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.FillPercentage = parsed
		}
	}
	if v, ok := cfg["mutation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.MutationChance = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["max_ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxTicks = parsed
		}
	}
	if v, ok := cfg["spawn"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.SelectSpawn = parsed
		}
	}
	return c
}
