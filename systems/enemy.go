package systems

import (
	"math"

	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/shared/gamemath"
	"github.com/automoto/tilefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type enemyStrike struct {
	enemy *donburi.Entry
	dir   float64
}

func UpdateEnemies(ecs *ecs.ECS) {
	// Get player position for AI decisions
	playerEntry, _ := tags.Player.First(ecs.World)
	var playerObject *resolv.Object
	if playerEntry != nil {
		playerObject = components.Object.Get(playerEntry).Object
	}

	var strikes []enemyStrike
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.InvulnFrames > 0 {
			enemy.InvulnFrames--
		}
		if enemy.AttackCooldown > 0 {
			enemy.AttackCooldown--
		}
		if dir, ok := updateEnemyAI(e, enemy, playerObject); ok {
			strikes = append(strikes, enemyStrike{enemy: e, dir: dir})
		}
	})

	for _, s := range strikes {
		applyEnemyStrike(playerEntry, s)
	}
}

// updateEnemyAI runs one frame of the idle/chase/attack machine. It reports
// whether the enemy struck and the direction of the blow.
func updateEnemyAI(e *donburi.Entry, enemy *components.EnemyData, playerObject *resolv.Object) (float64, bool) {
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	tc := enemy.TypeConfig

	if state.CurrentState == cfg.Hurt && state.StateTimer < hurtFrames {
		return 0, false
	}
	if playerObject == nil || tc == nil {
		state.Set(cfg.Idle)
		physics.VelX = 0
		return 0, false
	}

	ex, ey := components.Object.Get(e).Center()
	px := playerObject.X + playerObject.W/2
	py := playerObject.Y + playerObject.H/2
	dx := px - ex
	distance := math.Abs(dx)

	// Skip chase/attack if player is on a different vertical level
	if math.Abs(py-ey) > tc.MaxVerticalChase || distance > tc.ChaseRange {
		state.Set(cfg.Idle)
		physics.VelX = 0
		return 0, false
	}

	dir := gamemath.Facing(dx)
	enemy.Direction.X = dir

	if distance <= tc.AttackRange {
		physics.VelX = 0
		if enemy.AttackCooldown > 0 {
			return 0, false
		}
		state.Set(cfg.StateEnemyAttack)
		state.StateTimer = 0
		enemy.AttackCooldown = tc.AttackCooldown
		return dir, true
	}

	state.Set(cfg.StateChase)
	physics.VelX = dir * tc.ChaseSpeed
	return 0, false
}

func applyEnemyStrike(playerEntry *donburi.Entry, s enemyStrike) {
	if playerEntry == nil || !playerEntry.Valid() {
		return
	}
	tc := components.Enemy.Get(s.enemy).TypeConfig
	if !hurtPlayer(playerEntry, tc.Damage, s.dir) {
		return
	}
	if kind, ok := components.ParseDebuff(tc.Debuff); ok {
		dc := debuffConfig(kind)
		components.Debuffs.Get(playerEntry).Apply(kind, dc.DurationTick, dc.TickFrames)
	}
}
