package systems

import (
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates advances state timers and keeps the state tag components in
// step with each entity's current state.
func UpdateStates(ecs *ecs.ECS) {
	var changed []*donburi.Entry
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		state.StateTimer++
		if state.CurrentState != state.PreviousState {
			changed = append(changed, e)
		}
	})

	for _, e := range changed {
		state := components.State.Get(e)
		removeAllStateTags(e)
		addStateTag(e, state.CurrentState)
		state.PreviousState = state.CurrentState
	}
}

func addStateTag(e *donburi.Entry, s cfg.StateID) {
	switch s {
	case cfg.Idle:
		donburi.Add(e, components.Idle, &components.IdleState{})
	case cfg.Running, cfg.StateChase:
		donburi.Add(e, components.Running, &components.RunningState{})
	case cfg.Jumping:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	case cfg.Falling:
		donburi.Add(e, components.Falling, &components.FallingState{})
	case cfg.Dashing:
		donburi.Add(e, components.Dashing, &components.DashingState{})
	case cfg.Attacking, cfg.StateEnemyAttack:
		donburi.Add(e, components.Attacking, &components.AttackingState{})
	case cfg.Hurt:
		donburi.Add(e, components.Hurt, &components.HurtState{})
	}
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.RunningState](e, components.Running)
	donburi.Remove[components.JumpingState](e, components.Jumping)
	donburi.Remove[components.FallingState](e, components.Falling)
	donburi.Remove[components.DashingState](e, components.Dashing)
	donburi.Remove[components.AttackingState](e, components.Attacking)
	donburi.Remove[components.HurtState](e, components.Hurt)
}
