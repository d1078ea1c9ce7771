package drunkard

import "walkgen/internal/core"

// Direction is one of the four cardinal unit steps.
type Direction struct {
	DX, DY int
}

var (
	Down  = Direction{DX: 0, DY: -1}
	Left  = Direction{DX: -1, DY: 0}
	Up    = Direction{DX: 0, DY: 1}
	Right = Direction{DX: 1, DY: 0}
)

// directions is indexed by a uniform draw in [0, 4).
var directions = [4]Direction{Down, Left, Up, Right}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	}
	return "none"
}

// RandomDirection draws one of the four cardinal directions uniformly.
func RandomDirection(rng *core.RNG) Direction {
	return directions[rng.IntN(len(directions))]
}

// Walker is a single carving agent.
type Walker struct {
	X, Y           int
	Dir            Direction
	MutationChance float64
}

// Pos returns the walker's tile coordinate.
func (w Walker) Pos() Point { return Point{X: w.X, Y: w.Y} }

// Population is the ordered set of live walkers. Order is insertion order and
// determines which walker a rule hits first.
type Population struct {
	walkers []Walker
	max     int
	chance  float64
}

// NewPopulation returns an empty population capped at limit walkers. chance is
// the mutation chance given to spawned walkers.
func NewPopulation(limit int, chance float64) *Population {
	return &Population{walkers: make([]Walker, 0, limit), max: limit, chance: chance}
}

// Len returns the number of live walkers.
func (p *Population) Len() int { return len(p.walkers) }

// Walkers returns a copy of the current walkers.
func (p *Population) Walkers() []Walker {
	return append([]Walker(nil), p.walkers...)
}

// Add appends a walker regardless of the cap. Used for seeding.
func (p *Population) Add(w Walker) { p.walkers = append(p.walkers, w) }

// remove scans from the newest walker back and drops at most one.
func (p *Population) remove(rng *core.RNG) bool {
	for i := len(p.walkers) - 1; i >= 0; i-- {
		if rng.Float64() < p.walkers[i].MutationChance && len(p.walkers) > 1 {
			p.walkers = append(p.walkers[:i], p.walkers[i+1:]...)
			return true
		}
	}
	return false
}

// redirect gives each walker a chance to draw a fresh direction.
func (p *Population) redirect(rng *core.RNG) int {
	n := 0
	for i := range p.walkers {
		if rng.Float64() < p.walkers[i].MutationChance {
			p.walkers[i].Dir = RandomDirection(rng)
			n++
		}
	}
	return n
}

// spawn lets each walker present at the start of the call clone its
// position into a new walker while the cap allows.
func (p *Population) spawn(rng *core.RNG) int {
	count := len(p.walkers)
	n := 0
	for i := 0; i < count; i++ {
		if rng.Float64() < p.walkers[i].MutationChance && len(p.walkers) < p.max {
			p.walkers = append(p.walkers, Walker{
				X:              p.walkers[i].X,
				Y:              p.walkers[i].Y,
				Dir:            RandomDirection(rng),
				MutationChance: p.chance,
			})
			n++
		}
	}
	return n
}

// move advances every walker one step and clamps it to the interior of a
// w x h grid, leaving the outer ring for walls.
func (p *Population) move(w, h int) {
	for i := range p.walkers {
		wk := &p.walkers[i]
		wk.X = clamp(wk.X+wk.Dir.DX, 1, w-2)
		wk.Y = clamp(wk.Y+wk.Dir.DY, 1, h-2)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
