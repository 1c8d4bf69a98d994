package systems

import (
	"log"

	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/automoto/tilefall/systems/factory"
	"github.com/automoto/tilefall/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealth ticks debuffs, respawns a player whose health ran out and
// removes dead enemies.
func UpdateHealth(ecs *ecs.ECS) {
	var fallen, dead []*donburi.Entry

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		tickDebuffs(components.Debuffs.Get(e), hp)
		if hp.Current == 0 {
			fallen = append(fallen, e)
		}
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).Current == 0 {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		log.Printf("Enemy %s defeated", components.Enemy.Get(e).TypeName)
		factory.Despawn(ecs.World, e)
	}
	for _, e := range fallen {
		RespawnPlayer(e)
	}
}

func debuffConfig(kind components.DebuffKind) cfg.DebuffConfig {
	if kind == components.DebuffFire {
		return cfg.Health.Fire
	}
	return cfg.Health.Poison
}

// tickDebuffs deals damage from every running debuff whose tick is due and
// drops the ones that have run out.
func tickDebuffs(debuffs *components.DebuffsData, hp *components.HealthData) {
	active := debuffs.Active[:0]
	for _, d := range debuffs.Active {
		d.TickTimer--
		if d.TickTimer <= 0 {
			dc := debuffConfig(d.Kind)
			hp.Damage(dc.Damage)
			d.TicksLeft--
			d.TickTimer = dc.TickFrames
		}
		if d.TicksLeft > 0 {
			active = append(active, d)
		}
	}
	debuffs.Active = active
}

// hurtPlayer applies a hit unless the player is still invulnerable from the
// last one. Knockback pushes along dir.
func hurtPlayer(e *donburi.Entry, amount int, dir float64) bool {
	player := components.Player.Get(e)
	if player.InvulnFrames > 0 {
		return false
	}
	components.Health.Get(e).Damage(amount)
	player.InvulnFrames = cfg.Player.InvulnFrames
	player.AttackTimer = 0
	components.Dash.Get(e).Tween = nil
	components.Physics.Get(e).VelX = dir * cfg.Combat.KnockbackSpeed

	state := components.State.Get(e)
	state.Set(cfg.Hurt)
	state.StateTimer = 0
	return true
}

// RespawnPlayer puts the player back on its spawn point with full health
// and stamina.
func RespawnPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	hp := components.Health.Get(e)
	hp.Current = hp.Max
	stamina := components.Stamina.Get(e)
	stamina.Current = stamina.Max
	stamina.RunTimer = 0
	components.Debuffs.Get(e).Clear()
	components.Dash.Get(e).Tween = nil
	player.AttackTimer = 0
	player.InvulnFrames = cfg.Player.InvulnFrames

	physics := components.Physics.Get(e)
	physics.VelX, physics.VelY = 0, 0
	physics.OnGround = nil
	if body := components.Body.Get(e); body.Body != nil {
		body.Body.SetPosition(cp.Vector{X: player.SpawnX, Y: player.SpawnY})
		body.Body.SetVelocity(0, 0)
	}
	components.Object.Get(e).CenterOn(player.SpawnX, player.SpawnY)

	state := components.State.Get(e)
	state.Set(cfg.Idle)
	log.Printf("Player respawned at (%.0f, %.0f)", player.SpawnX, player.SpawnY)
}
