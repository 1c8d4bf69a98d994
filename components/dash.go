package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DashData eases horizontal speed from the dash speed back down to the run
// speed. Tween is nil while the player is not dashing.
type DashData struct {
	Tween     *gween.Tween
	Direction float64
}

func (d *DashData) Active() bool {
	return d.Tween != nil
}

var Dash = donburi.NewComponentType[DashData]()
