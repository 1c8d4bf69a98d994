package systems

import (
	"testing"

	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
)

func TestEnemyAI(t *testing.T) {
	tests := []struct {
		name       string
		rows       []string
		wantState  cfg.StateID
		wantVelX   float64
		wantDir    float64
		wantStrike bool
	}{
		{
			name:      "player out of range",
			rows:      []string{"P..................G"},
			wantState: cfg.Idle,
			wantDir:   cfg.DirectionLeft,
		},
		{
			name:      "chases toward the left",
			rows:      []string{"..P.....G"},
			wantState: cfg.StateChase,
			wantVelX:  -30,
			wantDir:   cfg.DirectionLeft,
		},
		{
			name:      "chases toward the right",
			rows:      []string{"G.....P.."},
			wantState: cfg.StateChase,
			wantVelX:  30,
			wantDir:   cfg.DirectionRight,
		},
		{
			name:       "strikes in range",
			rows:       []string{"....PG...."},
			wantState:  cfg.StateEnemyAttack,
			wantDir:    cfg.DirectionLeft,
			wantStrike: true,
		},
		{
			name:      "ignores a player on another floor",
			rows:      []string{"...P..", "......", "......", "......", "......", "....G."},
			wantState: cfg.Idle,
			wantDir:   cfg.DirectionLeft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			spawnAndMesh(t, e, testLevel("ai", tt.rows...))
			player := firstPlayer(t, e)
			enemyEntry := firstEnemy(t, e)
			enemy := components.Enemy.Get(enemyEntry)

			_, struck := updateEnemyAI(enemyEntry, enemy, components.Object.Get(player).Object)

			if struck != tt.wantStrike {
				t.Errorf("struck = %v, want %v", struck, tt.wantStrike)
			}
			if s := components.State.Get(enemyEntry).CurrentState; s != tt.wantState {
				t.Errorf("state = %v, want %v", s, tt.wantState)
			}
			if vx := components.Physics.Get(enemyEntry).VelX; vx != tt.wantVelX {
				t.Errorf("vx = %v, want %v", vx, tt.wantVelX)
			}
			if enemy.Direction.X != tt.wantDir {
				t.Errorf("direction = %v, want %v", enemy.Direction.X, tt.wantDir)
			}
		})
	}
}

func TestEnemyAttackCooldown(t *testing.T) {
	e := newTestECS(t)
	spawnAndMesh(t, e, testLevel("duel", "....PG...."))
	player := firstPlayer(t, e)
	enemyEntry := firstEnemy(t, e)
	guard := cfg.Enemy.Types["Guard"]

	UpdateEnemies(e)
	if hp := components.Health.Get(player).Current; hp != cfg.Player.Health-guard.Damage {
		t.Fatalf("hp after strike = %d, want %d", hp, cfg.Player.Health-guard.Damage)
	}
	if cd := components.Enemy.Get(enemyEntry).AttackCooldown; cd != guard.AttackCooldown {
		t.Errorf("cooldown = %d, want %d", cd, guard.AttackCooldown)
	}
	if vx := components.Physics.Get(player).VelX; vx != cfg.DirectionLeft*cfg.Combat.KnockbackSpeed {
		t.Errorf("player knockback vx = %v", vx)
	}

	// Clear invulnerability so only the cooldown can hold the next blow back.
	components.Player.Get(player).InvulnFrames = 0
	for i := 0; i < guard.AttackCooldown-1; i++ {
		UpdateEnemies(e)
		components.Player.Get(player).InvulnFrames = 0
	}
	if hp := components.Health.Get(player).Current; hp != cfg.Player.Health-guard.Damage {
		t.Fatalf("struck during cooldown: hp = %d", hp)
	}

	UpdateEnemies(e)
	if hp := components.Health.Get(player).Current; hp != cfg.Player.Health-2*guard.Damage {
		t.Errorf("hp after cooldown = %d, want %d", hp, cfg.Player.Health-2*guard.Damage)
	}
}

func TestEnemyStrikeAppliesDebuff(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		want   components.DebuffKind
		wantOK bool
	}{
		{name: "guard", row: "....PG....", wantOK: false},
		{name: "viper poisons", row: "....PV....", want: components.DebuffPoison, wantOK: true},
		{name: "imp burns", row: "....PI....", want: components.DebuffFire, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			spawnAndMesh(t, e, testLevel("duel", tt.row))
			player := firstPlayer(t, e)

			UpdateEnemies(e)

			debuffs := components.Debuffs.Get(player)
			if !tt.wantOK {
				if len(debuffs.Active) != 0 {
					t.Errorf("unexpected debuffs %+v", debuffs.Active)
				}
				return
			}
			if !debuffs.Has(tt.want) {
				t.Errorf("expected %v debuff, got %+v", tt.want, debuffs.Active)
			}
		})
	}
}

func TestHurtEnemyHoldsStill(t *testing.T) {
	e := newTestECS(t)
	spawnAndMesh(t, e, testLevel("duel", "..P.....G"))
	enemyEntry := firstEnemy(t, e)
	components.State.Get(enemyEntry).Set(cfg.Hurt)
	components.Physics.Get(enemyEntry).VelX = 60

	UpdateEnemies(e)

	if s := components.State.Get(enemyEntry).CurrentState; s != cfg.Hurt {
		t.Errorf("state = %v, want hurt", s)
	}
	if vx := components.Physics.Get(enemyEntry).VelX; vx != 60 {
		t.Errorf("knockback overridden: vx = %v", vx)
	}
}
