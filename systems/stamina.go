package systems

import (
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStamina drains stamina while running and regenerates it otherwise,
// one step per elapsed tick interval.
func UpdateStamina(ecs *ecs.ECS) {
	components.Stamina.Each(ecs.World, func(e *donburi.Entry) {
		running := components.State.Get(e).CurrentState == cfg.Running
		tickStamina(components.Stamina.Get(e), running, cfg.Physics.TimeStep)
	})
}

func tickStamina(s *components.StaminaData, running bool, dt float64) {
	interval := cfg.Stamina.TickInterval
	if interval <= 0 {
		return
	}
	s.RunTimer += dt
	for s.RunTimer >= interval {
		s.RunTimer -= interval
		if running {
			s.Current -= cfg.Stamina.RunDrain
		} else {
			s.Current += cfg.Stamina.Regen
		}
	}
	s.Current = gamemath.Clamp(s.Current, 0, s.Max)
}
