package drunkard

import (
	"context"
	"fmt"
	"iter"

	"walkgen/internal/core"
)

// Phase is the lifecycle stage of an Engine.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseWalling
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseWalling:
		return "walling"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// TickResult summarises one call to Engine.Step.
type TickResult struct {
	// Tick counts carving ticks executed so far.
	Tick int
	// Added reports whether this tick carved at least one new floor tile.
	// Hosts use it for pacing only.
	Added      bool
	Walkers    int
	FloorCount int
	FillRatio  float64
	// Walls is the number of walls placed; non-zero only on the finishing step.
	Walls int
	Phase Phase
}

// Result describes a finished generation.
type Result struct {
	Ticks      int
	FloorCount int
	Walls      int
	Spawn      Point
	HasSpawn   bool
	Seed       int64
}

// Engine runs one generation: carving ticks until the fill target is met,
// then a single wall pass and the optional spawn search. An Engine is not
// reusable; build a new one to generate again.
type Engine struct {
	cfg   Config
	obs   Observer
	rng   *core.RNG
	grid  *Grid
	pop   *Population
	phase Phase
	tick  int
	walls int

	spawn    Point
	hasSpawn bool
}

// New validates cfg and prepares a generation with a single walker seeded at
// the grid centre. The centre tile is carved immediately.
func New(cfg Config, obs Observer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if obs == nil {
		obs = NopObserver{}
	}
	e := &Engine{
		cfg:  cfg,
		obs:  obs,
		rng:  core.NewRNG(cfg.Seed),
		grid: NewGrid(cfg.Width, cfg.Height),
		pop:  NewPopulation(cfg.MaxWalkers, cfg.MutationChance),
	}
	start := Walker{
		X:              cfg.Width / 2,
		Y:              cfg.Height / 2,
		Dir:            RandomDirection(e.rng),
		MutationChance: cfg.MutationChance,
	}
	if _, err := e.carve(start.X, start.Y); err != nil {
		return nil, err
	}
	e.pop.Add(start)
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Seed returns the effective seed, which differs from Config.Seed when that
// was zero.
func (e *Engine) Seed() int64 { return e.rng.Seed() }

// Grid exposes the map being generated. Callers must not mutate it.
func (e *Engine) Grid() *Grid { return e.grid }

// Walkers returns a copy of the live walkers.
func (e *Engine) Walkers() []Walker { return e.pop.Walkers() }

// Phase returns the current lifecycle stage.
func (e *Engine) Phase() Phase { return e.phase }

// Tick returns the number of carving ticks executed.
func (e *Engine) Tick() int { return e.tick }

// SpawnPoint returns the selected spawn tile once the engine is done.
func (e *Engine) SpawnPoint() (Point, bool) { return e.spawn, e.hasSpawn }

// Done reports whether generation has completed.
func (e *Engine) Done() bool { return e.phase == PhaseDone }

// Step advances the generation by one unit of work. While the fill ratio is
// below target it runs one carving tick; the first call that finds the target
// met places walls and finishes. Calls after completion are no-ops.
func (e *Engine) Step() (TickResult, error) {
	switch e.phase {
	case PhaseDone:
		return e.result(false), nil
	case PhaseRunning:
		if e.grid.FillRatio() < e.cfg.FillPercentage {
			if e.cfg.MaxTicks > 0 && e.tick >= e.cfg.MaxTicks {
				return e.result(false), fmt.Errorf("drunkard: %d ticks at fill %.3f: %w",
					e.tick, e.grid.FillRatio(), ErrTickBudget)
			}
			added, err := e.runTick()
			return e.result(added), err
		}
		e.phase = PhaseWalling
	}
	e.finish()
	res := e.result(false)
	res.Walls = e.walls
	return res, nil
}

// Ticks yields one result per Step until the engine is done or a step fails.
// Breaking out of the loop abandons the run between ticks.
func (e *Engine) Ticks() iter.Seq2[TickResult, error] {
	return func(yield func(TickResult, error) bool) {
		for e.phase != PhaseDone {
			res, err := e.Step()
			if !yield(res, err) || err != nil {
				return
			}
		}
	}
}

// Run drives the engine to completion synchronously. ctx is checked between
// ticks; cancelling it abandons the run.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	for !e.Done() {
		if err := ctx.Err(); err != nil {
			return e.summary(), err
		}
		if _, err := e.Step(); err != nil {
			return e.summary(), err
		}
	}
	return e.summary(), nil
}

func (e *Engine) runTick() (bool, error) {
	added := false
	for _, w := range e.pop.walkers {
		fresh, err := e.carve(w.X, w.Y)
		if err != nil {
			return added, err
		}
		added = added || fresh
	}

	e.pop.remove(e.rng)
	e.pop.redirect(e.rng)
	e.pop.spawn(e.rng)
	e.pop.move(e.grid.Width(), e.grid.Height())
	e.tick++

	for _, w := range e.pop.walkers {
		if !e.grid.interior(w.X, w.Y) {
			return added, &BoundsError{X: w.X, Y: w.Y, Width: e.grid.Width(), Height: e.grid.Height()}
		}
	}
	return added, nil
}

func (e *Engine) carve(x, y int) (bool, error) {
	fresh, err := e.grid.Carve(x, y)
	if err != nil {
		return false, err
	}
	if fresh {
		e.obs.OnCarve(x, y)
	}
	return fresh, nil
}

func (e *Engine) finish() {
	e.walls = DeriveWalls(e.grid, e.obs)
	e.phase = PhaseDone
	if e.cfg.SelectSpawn {
		e.spawn, e.hasSpawn = SelectSpawn(e.grid)
		e.obs.OnSpawnPoint(e.spawn, e.hasSpawn)
	}
}

func (e *Engine) result(added bool) TickResult {
	return TickResult{
		Tick:       e.tick,
		Added:      added,
		Walkers:    e.pop.Len(),
		FloorCount: e.grid.FloorCount(),
		FillRatio:  e.grid.FillRatio(),
		Phase:      e.phase,
	}
}

func (e *Engine) summary() Result {
	return Result{
		Ticks:      e.tick,
		FloorCount: e.grid.FloorCount(),
		Walls:      e.walls,
		Spawn:      e.spawn,
		HasSpawn:   e.hasSpawn,
		Seed:       e.rng.Seed(),
	}
}
