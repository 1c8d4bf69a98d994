package systems

import (
	"math"

	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/gamemath"
	"github.com/automoto/tilefall/systems/factory"
	"github.com/automoto/tilefall/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// hurtFrames is how long a hit locks the player's controls.
	hurtFrames        = 15
	knockbackFriction = 4.0 // px/s shed per frame while hurt
)

func UpdatePlayer(ecs *ecs.ECS) {
	controls := getOrCreateControls(ecs)
	input := components.Input.Get(controls)

	var attackers []*donburi.Entry
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		if updateSinglePlayer(controls, input, playerEntry) {
			attackers = append(attackers, playerEntry)
		}
	})

	for _, e := range attackers {
		factory.CreateHitbox(ecs, e, components.Player.Get(e).Direction.X)
	}
}

// updateSinglePlayer applies one frame of input and reports whether the
// player started an attack.
func updateSinglePlayer(controls *donburi.Entry, input *components.InputData, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	stamina := components.Stamina.Get(playerEntry)
	dash := components.Dash.Get(playerEntry)

	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
	if player.AttackTimer > 0 {
		player.AttackTimer--
	}

	if GetAction(input, cfg.ActionToggleLight).JustPressed &&
		components.Abilities.Get(playerEntry).Has(components.AbilitySwitchLight) {
		light := components.Lighting.Get(controls)
		light.On = !light.On
	}

	attacked := false
	switch {
	case dash.Active():
		updateDash(dash, physics)
	case isHurt(state):
		// Controls are locked while recoiling.
		physics.VelX = gamemath.ApplyFriction(physics.VelX, knockbackFriction)
	default:
		handleMovement(input, player, physics)
		if GetAction(input, cfg.ActionDash).JustPressed && stamina.Spend(cfg.Stamina.DashCost) {
			startDash(dash, player, physics)
		} else if GetAction(input, cfg.ActionAttack).JustPressed && player.AttackTimer == 0 &&
			stamina.Spend(cfg.Stamina.AttackCost) {
			player.AttackTimer = cfg.Combat.AttackFrames
			attacked = true
		}
	}

	state.Set(resolvePlayerState(player, physics, state, dash))
	return attacked
}

// handleMovement mirrors the classic keyboard handling: a jump takes
// priority, then held or released right, then held or released left.
// Releasing a direction leaves a little momentum behind.
func handleMovement(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	jump := GetAction(input, cfg.ActionJump)
	right := GetAction(input, cfg.ActionMoveRight)
	left := GetAction(input, cfg.ActionMoveLeft)

	switch {
	case jump.JustPressed:
		if physics.OnGround != nil {
			physics.VelY -= cfg.Player.JumpSpeed
		}
	case right.Pressed:
		physics.VelX = cfg.Player.RunSpeed
		player.Direction.X = cfg.DirectionRight
	case right.JustReleased:
		physics.VelX = cfg.Player.ReleaseSpeed
	case left.Pressed:
		physics.VelX = -cfg.Player.RunSpeed
		player.Direction.X = cfg.DirectionLeft
	case left.JustReleased:
		physics.VelX = -cfg.Player.ReleaseSpeed
	}
}

func startDash(dash *components.DashData, player *components.PlayerData, physics *components.PhysicsData) {
	dash.Direction = player.Direction.X
	if dash.Direction == 0 {
		dash.Direction = cfg.DirectionRight
	}
	dash.Tween = gween.New(
		float32(cfg.Player.DashSpeed),
		float32(cfg.Player.RunSpeed),
		float32(cfg.Player.DashDuration),
		ease.OutQuad,
	)
	physics.VelX = dash.Direction * cfg.Player.DashSpeed
}

func updateDash(dash *components.DashData, physics *components.PhysicsData) {
	speed, done := dash.Tween.Update(float32(cfg.Physics.TimeStep))
	physics.VelX = dash.Direction * float64(speed)
	if done {
		dash.Tween = nil
	}
}

func isHurt(state *components.StateData) bool {
	return state.CurrentState == cfg.Hurt && state.StateTimer < hurtFrames
}

func resolvePlayerState(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, dash *components.DashData) cfg.StateID {
	switch {
	case isHurt(state):
		return cfg.Hurt
	case dash.Active():
		return cfg.Dashing
	case player.AttackTimer > 0:
		return cfg.Attacking
	case physics.OnGround == nil && physics.VelY < 0:
		return cfg.Jumping
	case physics.OnGround == nil:
		return cfg.Falling
	case math.Abs(physics.VelX) > 1:
		return cfg.Running
	}
	return cfg.Idle
}
