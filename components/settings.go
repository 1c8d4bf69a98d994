package components

import "github.com/yohamta/donburi"

// DebugData is the singleton holding runtime debug toggles.
type DebugData struct {
	ShowColliders bool
}

var Debug = donburi.NewComponentType[DebugData]()

// ReloadData carries level reload requests into the update loop, either from
// the file watcher or the reload key.
type ReloadData struct {
	Requests chan string
	// Pending is set by the reload key and consumed on the next update.
	Pending bool
}

var Reload = donburi.NewComponentType[ReloadData]()
