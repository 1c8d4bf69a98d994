package components

import (
	"github.com/automoto/tilefall/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// Set switches state and resets the timer. Setting the current state is a no-op.
func (s *StateData) Set(next config.StateID) {
	if s.CurrentState == next {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()

type IdleState struct{}
type RunningState struct{}
type JumpingState struct{}
type FallingState struct{}
type DashingState struct{}
type AttackingState struct{}
type HurtState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Running = donburi.NewComponentType[RunningState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var Falling = donburi.NewComponentType[FallingState]()
var Dashing = donburi.NewComponentType[DashingState]()
var Attacking = donburi.NewComponentType[AttackingState]()
var Hurt = donburi.NewComponentType[HurtState]()
