package app

import (
	"flag"
	"strconv"

	"walkgen/internal/sims/drunkard"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width          int
	Height         int
	MaxWalkers     int
	FillPercentage float64
	MutationChance float64
	MaxTicks       int
	NoSpawn        bool
}

// NewConfig returns a Config populated from the generator defaults.
func NewConfig() *Config {
	d := drunkard.DefaultConfig()
	return &Config{
		Sim:            "drunkard",
		Scale:          16,
		TPS:            60,
		Seed:           d.Seed,
		Width:          d.Width,
		Height:         d.Height,
		MaxWalkers:     d.MaxWalkers,
		FillPercentage: d.FillPercentage,
		MutationChance: d.MutationChance,
		MaxTicks:       d.MaxTicks,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generation (0 picks one from the clock)")
	fs.IntVar(&c.Width, "w", c.Width, "map width in tiles")
	fs.IntVar(&c.Height, "h", c.Height, "map height in tiles")
	fs.IntVar(&c.MaxWalkers, "walkers", c.MaxWalkers, "maximum concurrent walkers")
	fs.Float64Var(&c.FillPercentage, "fill", c.FillPercentage, "share of the map to carve before stopping")
	fs.Float64Var(&c.MutationChance, "mutation", c.MutationChance, "per-tick chance a walker dies, turns or spawns")
	fs.IntVar(&c.MaxTicks, "max-ticks", c.MaxTicks, "give up after this many ticks (0 = never)")
	fs.BoolVar(&c.NoSpawn, "no-spawn", c.NoSpawn, "skip spawn point selection")
}

// SimConfig converts the flags into the factory map understood by the
// registered sims.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":           strconv.Itoa(c.Width),
		"h":           strconv.Itoa(c.Height),
		"max_walkers": strconv.Itoa(c.MaxWalkers),
		"fill":        strconv.FormatFloat(c.FillPercentage, 'f', -1, 64),
		"mutation":    strconv.FormatFloat(c.MutationChance, 'f', -1, 64),
		"seed":        strconv.FormatInt(c.Seed, 10),
		"max_ticks":   strconv.Itoa(c.MaxTicks),
		"spawn":       strconv.FormatBool(!c.NoSpawn),
	}
}

// Generator returns the generator configuration described by the flags
// without the lenient parsing of the factory map.
func (c *Config) Generator() drunkard.Config {
	return drunkard.Config{
		Width:          c.Width,
		Height:         c.Height,
		MaxWalkers:     c.MaxWalkers,
		FillPercentage: c.FillPercentage,
		MutationChance: c.MutationChance,
		Seed:           c.Seed,
		MaxTicks:       c.MaxTicks,
		SelectSpawn:    !c.NoSpawn,
	}
}

// Validate rejects flag values the generator cannot run with. The factory
// map path falls back to defaults instead, so binaries check this first.
func (c *Config) Validate() error { return c.Generator().Validate() }
