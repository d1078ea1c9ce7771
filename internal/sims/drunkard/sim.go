package drunkard

import (
	"log"

	"walkgen/internal/core"
)

// DefaultFrameTicks bounds how many carving ticks a single Sim.Step may run
// while waiting for one that adds a tile.
const DefaultFrameTicks = 64

// Sim adapts an Engine to the core.Sim contract so the viewers can drive it
// one frame at a time. Reset starts a fresh generation.
type Sim struct {
	cfg    Config
	seed   int64
	engine *Engine
	last   TickResult
	err    error

	// FrameTicks caps the ticks run per Step. Non-positive means one.
	FrameTicks int
}

// NewSim validates cfg and starts the first generation.
func NewSim(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg, FrameTicks: DefaultFrameTicks}
	if err := s.restart(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "drunkard" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the tile buffer; values are Cell codes.
func (s *Sim) Cells() []uint8 { return s.engine.Grid().Cells() }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Engine exposes the current generation.
func (s *Sim) Engine() *Engine { return s.engine }

// Walkers returns the live walkers of the current generation.
func (s *Sim) Walkers() []Walker { return s.engine.Walkers() }

// SpawnPoint returns the spawn tile once generation has finished.
func (s *Sim) SpawnPoint() (Point, bool) { return s.engine.SpawnPoint() }

// Status returns the most recent step result.
func (s *Sim) Status() TickResult { return s.last }

// Err returns the error that stopped the current generation, if any.
func (s *Sim) Err() error { return s.err }

// Done reports whether the current generation has finished or failed.
func (s *Sim) Done() bool { return s.err != nil || s.engine.Done() }

// Reset starts a new generation. A zero seed reuses the configured one.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	if err := s.restart(seed); err != nil {
		log.Printf("drunkard: reset failed: %v", err)
	}
}

// Step runs carving ticks until one adds a floor tile, the generation
// finishes, or FrameTicks is reached.
func (s *Sim) Step() {
	if s.Done() {
		return
	}
	limit := s.FrameTicks
	if limit <= 0 {
		limit = 1
	}
	for i := 0; i < limit; i++ {
		res, err := s.engine.Step()
		s.last = res
		if err != nil {
			s.err = err
			log.Printf("drunkard: generation stopped: %v", err)
			return
		}
		if res.Added || res.Phase == PhaseDone {
			return
		}
	}
}

func (s *Sim) restart(seed int64) error {
	cfg := s.cfg
	cfg.Seed = seed
	engine, err := New(cfg, nil)
	if err != nil {
		return err
	}
	s.engine = engine
	s.seed = engine.Seed()
	s.err = nil
	s.last = TickResult{
		Walkers:    1,
		FloorCount: engine.Grid().FloorCount(),
		FillRatio:  engine.Grid().FillRatio(),
	}
	return nil
}

// Seed returns the seed of the current generation.
func (s *Sim) Seed() int64 { return s.seed }

func init() {
	core.Register("drunkard", func(cfg map[string]string) core.Sim {
		sim, err := NewSim(FromMap(cfg))
		if err != nil {
			log.Printf("%v; falling back to defaults", err)
			sim, _ = NewSim(DefaultConfig())
		}
		return sim
	})
}
