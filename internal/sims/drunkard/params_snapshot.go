package drunkard

import (
	"strconv"

	"walkgen/internal/core"
)

// Parameters reports the configuration and progress of the current run.
func (s *Sim) Parameters() core.ParameterSnapshot {
	status := s.last
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.seed),
			},
		},
		{
			Name: "Walkers",
			Params: []core.Parameter{
				intParam("max_walkers", "Max walkers", s.cfg.MaxWalkers),
				floatParam("mutation", "Mutation chance", s.cfg.MutationChance),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				floatParam("fill", "Fill target", s.cfg.FillPercentage),
				intParam("max_ticks", "Tick budget", s.cfg.MaxTicks),
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				textParam("phase", "Phase", s.engine.Phase().String()),
				intParam("tick", "Tick", s.engine.Tick()),
				intParam("walkers", "Walkers", status.Walkers),
				intParam("floors", "Floor tiles", status.FloorCount),
				textParam("fill_ratio", "Fill ratio", strconv.FormatFloat(status.FillRatio, 'f', 3, 64)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "max_walkers", Label: "Max walkers", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 200, HasMin: true, HasMax: true},
		{Key: "fill", Label: "Fill target", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 1, HasMin: true, HasMax: true},
		{Key: "mutation", Label: "Mutation chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer setting and regenerates with the
// current seed.
func (s *Sim) SetIntParameter(key string, value int) bool {
	cfg := s.cfg
	switch key {
	case "max_walkers":
		cfg.MaxWalkers = value
	case "max_ticks":
		cfg.MaxTicks = value
	default:
		return false
	}
	return s.apply(cfg)
}

// SetFloatParameter updates a float setting and regenerates with the current
// seed.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	cfg := s.cfg
	switch key {
	case "fill":
		cfg.FillPercentage = value
	case "mutation":
		cfg.MutationChance = value
	default:
		return false
	}
	return s.apply(cfg)
}

func (s *Sim) apply(cfg Config) bool {
	if err := cfg.Validate(); err != nil {
		return false
	}
	seed := s.seed
	s.cfg = cfg
	if err := s.restart(seed); err != nil {
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
