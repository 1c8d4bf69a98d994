package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage subtracts amount, clamping at zero, and reports whether the entity
// is now dead.
func (h *HealthData) Damage(amount int) bool {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

var Health = donburi.NewComponentType[HealthData]()

type StaminaData struct {
	Current float64
	Max     float64
	// RunTimer accumulates seconds toward the next drain or regen tick.
	RunTimer float64
}

// Spend takes cost if there is enough stamina left.
func (s *StaminaData) Spend(cost float64) bool {
	if s.Current < cost {
		return false
	}
	s.Current -= cost
	return true
}

var Stamina = donburi.NewComponentType[StaminaData]()
