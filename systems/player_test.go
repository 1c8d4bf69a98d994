package systems

import (
	"testing"

	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// frame builds input where held actions are down now and released actions
// were down last frame only.
func frame(held, prevHeld []cfg.ActionID) *components.InputData {
	in := &components.InputData{}
	for _, a := range held {
		in.Current[a] = true
	}
	for _, a := range prevHeld {
		in.Previous[a] = true
	}
	return in
}

func TestHandleMovement(t *testing.T) {
	cfg.Reset()
	ground := resolv.NewObject(0, 0, 8, 8)

	tests := []struct {
		name     string
		input    *components.InputData
		onGround bool
		startVY  float64
		wantVX   float64
		wantVY   float64
		wantDir  float64
	}{
		{
			name:     "jump from the ground",
			input:    frame([]cfg.ActionID{cfg.ActionJump}, nil),
			onGround: true,
			wantVY:   -220,
			wantDir:  cfg.DirectionRight,
		},
		{
			name:    "no jump in the air",
			input:   frame([]cfg.ActionID{cfg.ActionJump}, nil),
			startVY: 30,
			wantVY:  30,
			wantDir: cfg.DirectionRight,
		},
		{
			name:     "holding jump does not rejump",
			input:    frame([]cfg.ActionID{cfg.ActionJump}, []cfg.ActionID{cfg.ActionJump}),
			onGround: true,
			wantDir:  cfg.DirectionRight,
		},
		{
			name:     "jump beats a new direction",
			input:    frame([]cfg.ActionID{cfg.ActionJump, cfg.ActionMoveLeft}, nil),
			onGround: true,
			wantVY:   -220,
			wantDir:  cfg.DirectionRight,
		},
		{
			name:    "run right",
			input:   frame([]cfg.ActionID{cfg.ActionMoveRight}, nil),
			wantVX:  45,
			wantDir: cfg.DirectionRight,
		},
		{
			name:    "release right",
			input:   frame(nil, []cfg.ActionID{cfg.ActionMoveRight}),
			wantVX:  20,
			wantDir: cfg.DirectionRight,
		},
		{
			name:    "run left",
			input:   frame([]cfg.ActionID{cfg.ActionMoveLeft}, []cfg.ActionID{cfg.ActionMoveLeft}),
			wantVX:  -45,
			wantDir: cfg.DirectionLeft,
		},
		{
			name:    "release left",
			input:   frame(nil, []cfg.ActionID{cfg.ActionMoveLeft}),
			wantVX:  -20,
			wantDir: cfg.DirectionRight,
		},
		{
			name:    "right wins over left",
			input:   frame([]cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, nil),
			wantVX:  45,
			wantDir: cfg.DirectionRight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := &components.PlayerData{Direction: components.Vector{X: cfg.DirectionRight}}
			physics := &components.PhysicsData{VelY: tt.startVY}
			if tt.onGround {
				physics.OnGround = ground
			}

			handleMovement(tt.input, player, physics)

			if physics.VelX != tt.wantVX || physics.VelY != tt.wantVY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", physics.VelX, physics.VelY, tt.wantVX, tt.wantVY)
			}
			if player.Direction.X != tt.wantDir {
				t.Errorf("direction = %v, want %v", player.Direction.X, tt.wantDir)
			}
		})
	}
}

func TestResolvePlayerState(t *testing.T) {
	ground := resolv.NewObject(0, 0, 8, 8)

	tests := []struct {
		name    string
		player  components.PlayerData
		physics components.PhysicsData
		state   components.StateData
		dashing bool
		want    cfg.StateID
	}{
		{name: "idle", physics: components.PhysicsData{OnGround: ground}, want: cfg.Idle},
		{name: "running", physics: components.PhysicsData{OnGround: ground, VelX: 45}, want: cfg.Running},
		{name: "drifting slowly", physics: components.PhysicsData{OnGround: ground, VelX: 0.5}, want: cfg.Idle},
		{name: "jumping", physics: components.PhysicsData{VelY: -100}, want: cfg.Jumping},
		{name: "falling", physics: components.PhysicsData{VelY: 50}, want: cfg.Falling},
		{name: "attacking", player: components.PlayerData{AttackTimer: 3}, physics: components.PhysicsData{OnGround: ground}, want: cfg.Attacking},
		{name: "dashing beats attacking", player: components.PlayerData{AttackTimer: 3}, dashing: true, want: cfg.Dashing},
		{name: "hurt beats everything", state: components.StateData{CurrentState: cfg.Hurt, StateTimer: 2}, dashing: true, want: cfg.Hurt},
		{name: "hurt wears off", state: components.StateData{CurrentState: cfg.Hurt, StateTimer: hurtFrames}, physics: components.PhysicsData{OnGround: ground}, want: cfg.Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dash := &components.DashData{}
			if tt.dashing {
				startDash(dash, &components.PlayerData{Direction: components.Vector{X: 1}}, &components.PhysicsData{})
			}
			if got := resolvePlayerState(&tt.player, &tt.physics, &tt.state, dash); got != tt.want {
				t.Errorf("state = %v, want %v", got, tt.want)
			}
		})
	}
}

func pressOnly(e *ecs.ECS, actions ...cfg.ActionID) {
	var pressed [cfg.ActionCount]bool
	for _, a := range actions {
		pressed[a] = true
	}
	applyInput(getOrCreateControls(e), pressed)
}

func TestUpdatePlayerDash(t *testing.T) {
	e := newTestECS(t)
	spawnAndMesh(t, e, testLevel("cavern", cavern...))
	player := firstPlayer(t, e)
	components.Player.Get(player).Direction.X = cfg.DirectionLeft

	pressOnly(e, cfg.ActionDash)
	UpdatePlayer(e)

	if s := components.Stamina.Get(player).Current; s != cfg.Stamina.Max-cfg.Stamina.DashCost {
		t.Errorf("stamina = %v, want %v", s, cfg.Stamina.Max-cfg.Stamina.DashCost)
	}
	if !components.Dash.Get(player).Active() {
		t.Fatal("dash did not start")
	}
	if vx := components.Physics.Get(player).VelX; vx != -cfg.Player.DashSpeed {
		t.Errorf("dash vx = %v, want %v", vx, -cfg.Player.DashSpeed)
	}
	if s := components.State.Get(player).CurrentState; s != cfg.Dashing {
		t.Errorf("state = %v, want dashing", s)
	}

	// The dash eases back down to running speed and ends.
	frames := int(cfg.Player.DashDuration/cfg.Physics.TimeStep) + 2
	for i := 0; i < frames; i++ {
		pressOnly(e)
		UpdatePlayer(e)
	}
	if components.Dash.Get(player).Active() {
		t.Error("dash never ended")
	}
}

func TestUpdatePlayerDashNeedsStamina(t *testing.T) {
	e := newTestECS(t)
	spawnAndMesh(t, e, testLevel("cavern", cavern...))
	player := firstPlayer(t, e)
	components.Stamina.Get(player).Current = cfg.Stamina.DashCost - 1

	pressOnly(e, cfg.ActionDash)
	UpdatePlayer(e)

	if components.Dash.Get(player).Active() {
		t.Error("dashed without enough stamina")
	}
	if s := components.Stamina.Get(player).Current; s != cfg.Stamina.DashCost-1 {
		t.Errorf("stamina spent on a failed dash: %v", s)
	}
}

func TestUpdatePlayerAttackSpawnsHitbox(t *testing.T) {
	e := newTestECS(t)
	spawnAndMesh(t, e, testLevel("cavern", cavern...))
	player := firstPlayer(t, e)

	pressOnly(e, cfg.ActionAttack)
	UpdatePlayer(e)

	if n := count(e.World, tags.Hitbox); n != 1 {
		t.Fatalf("hitboxes = %d, want 1", n)
	}
	if got := components.Player.Get(player).AttackTimer; got != cfg.Combat.AttackFrames {
		t.Errorf("attack timer = %d, want %d", got, cfg.Combat.AttackFrames)
	}
	if s := components.Stamina.Get(player).Current; s != cfg.Stamina.Max-cfg.Stamina.AttackCost {
		t.Errorf("stamina = %v, want %v", s, cfg.Stamina.Max-cfg.Stamina.AttackCost)
	}

	// Mashing during the swing does nothing.
	pressOnly(e)
	UpdatePlayer(e)
	pressOnly(e, cfg.ActionAttack)
	UpdatePlayer(e)
	if n := count(e.World, tags.Hitbox); n != 1 {
		t.Errorf("hitboxes = %d during a swing, want 1", n)
	}
}

func TestUpdatePlayerHurtLocksControls(t *testing.T) {
	e := newTestECS(t)
	spawnAndMesh(t, e, testLevel("cavern", cavern...))
	player := firstPlayer(t, e)
	hurtPlayer(player, 10, cfg.DirectionLeft)

	pressOnly(e, cfg.ActionMoveRight)
	UpdatePlayer(e)

	vx := components.Physics.Get(player).VelX
	if vx >= 0 {
		t.Errorf("input moved a hurt player: vx = %v", vx)
	}
	if vx <= -cfg.Combat.KnockbackSpeed {
		t.Errorf("knockback did not decay: vx = %v", vx)
	}
}

func TestToggleLight(t *testing.T) {
	e := newTestECS(t)
	spawnAndMesh(t, e, testLevel("cavern", cavern...))
	light := components.Lighting.Get(getOrCreateControls(e))
	if !light.On {
		t.Fatal("light should start on")
	}

	pressOnly(e, cfg.ActionToggleLight)
	UpdatePlayer(e)
	if light.On {
		t.Fatal("light still on after toggling")
	}

	// Held, not pressed again.
	pressOnly(e, cfg.ActionToggleLight)
	UpdatePlayer(e)
	if light.On {
		t.Error("holding the key toggled again")
	}

	player := firstPlayer(t, e)
	components.Abilities.Get(player).Unlocked = nil
	pressOnly(e)
	pressOnly(e, cfg.ActionToggleLight)
	UpdatePlayer(e)
	if light.On {
		t.Error("toggled without the ability")
	}
}
