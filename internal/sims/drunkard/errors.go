package drunkard

import (
	"errors"
	"fmt"
)

// ErrTickBudget is returned once a generation exhausts Config.MaxTicks while
// still below its fill target.
var ErrTickBudget = errors.New("tick budget exhausted")

// ConfigError reports a configuration value that makes generation impossible.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("drunkard: invalid %s: %s", e.Field, e.Reason)
}

// BoundsError reports a coordinate outside the grid or, for walkers, outside
// the clamped interior. It always indicates a programming defect.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("drunkard: (%d,%d) out of bounds for %dx%d grid", e.X, e.Y, e.Width, e.Height)
}
