package systems

import (
	"testing"

	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
)

func TestTickStamina(t *testing.T) {
	cfg.Reset()

	tests := []struct {
		name      string
		start     float64
		running   bool
		dt        float64
		want      float64
		wantTimer float64
	}{
		{name: "running drains", start: 50, running: true, dt: 0.25, want: 48},
		{name: "idle regenerates", start: 50, running: false, dt: 0.25, want: 55},
		{name: "regen clamps at max", start: 98, running: false, dt: 0.25, want: 100},
		{name: "drain clamps at zero", start: 1, running: true, dt: 0.25, want: 0},
		{name: "no tick before the interval", start: 50, running: true, dt: 0.125, want: 50, wantTimer: 0.125},
		{name: "long frame ticks twice", start: 50, running: true, dt: 0.5, want: 46},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &components.StaminaData{Current: tt.start, Max: 100}
			tickStamina(s, tt.running, tt.dt)
			if s.Current != tt.want {
				t.Errorf("stamina = %v, want %v", s.Current, tt.want)
			}
			if s.RunTimer != tt.wantTimer {
				t.Errorf("run timer = %v, want %v", s.RunTimer, tt.wantTimer)
			}
		})
	}
}

func TestTickStaminaDisabledInterval(t *testing.T) {
	cfg.Reset()
	defer cfg.Reset()
	cfg.Stamina.TickInterval = 0

	s := &components.StaminaData{Current: 10, Max: 100}
	tickStamina(s, false, 1)
	if s.Current != 10 {
		t.Errorf("stamina changed with a zero interval: %v", s.Current)
	}
}

func TestUpdateStaminaFollowsRunningState(t *testing.T) {
	e := newTestECS(t)
	cfg.Physics.TimeStep = 0.25
	spawnAndMesh(t, e, testLevel("cavern", cavern...))
	player := firstPlayer(t, e)

	stamina := components.Stamina.Get(player)
	stamina.Current = 50
	components.State.Get(player).Set(cfg.Running)
	UpdateStamina(e)
	if stamina.Current != 48 {
		t.Errorf("running stamina = %v, want 48", stamina.Current)
	}

	components.State.Get(player).Set(cfg.Idle)
	UpdateStamina(e)
	if stamina.Current != 53 {
		t.Errorf("idle stamina = %v, want 53", stamina.Current)
	}
}

func TestStaminaSpend(t *testing.T) {
	s := &components.StaminaData{Current: 25, Max: 100}
	if s.Spend(30) {
		t.Fatal("spent more stamina than available")
	}
	if !s.Spend(25) || s.Current != 0 {
		t.Errorf("Spend(25) left %v", s.Current)
	}
}
