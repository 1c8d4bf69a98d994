package components

import (
	"github.com/automoto/tilefall/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the resolv space used for overlap queries (ground checks,
// hitboxes, enemy reach).
var Space = donburi.NewComponentType[resolv.Space]()

// PhysicsWorldData holds the rigid-body world for the running scene.
type PhysicsWorldData struct {
	World *physics.World
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()
