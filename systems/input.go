package systems

import (
	"github.com/automoto/tilefall/archetypes"
	"github.com/automoto/tilefall/components"
	cfg "github.com/automoto/tilefall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	controls := getOrCreateControls(ecs)
	input := components.Input.Get(controls)

	pressed := [cfg.ActionCount]bool{}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}

	left, right := getAnalogStickState(gamepadIDs)
	pressed[cfg.ActionMoveLeft] = pressed[cfg.ActionMoveLeft] || left
	pressed[cfg.ActionMoveRight] = pressed[cfg.ActionMoveRight] || right

	applyInput(controls, pressed)
}

// applyInput swaps the input buffers and handles the actions that act on
// the scene rather than the player.
func applyInput(controls *donburi.Entry, pressed [cfg.ActionCount]bool) {
	input := components.Input.Get(controls)
	input.Previous = input.Current
	input.Current = pressed

	if GetAction(input, cfg.ActionDebug).JustPressed {
		debug := components.Debug.Get(controls)
		debug.ShowColliders = !debug.ShowColliders
	}
	if GetAction(input, cfg.ActionReload).JustPressed {
		components.Reload.Get(controls).Pending = true
	}
}

// getAnalogStickState reads the left stick's horizontal axis from all gamepads.
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return left, right
}

// getOrCreateControls returns the singleton holding input, debug toggles,
// reload requests and lighting, creating it if needed.
func getOrCreateControls(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Controls.Spawn(ecs)
		components.Debug.SetValue(entry, components.DebugData{ShowColliders: cfg.Debug.ShowColliders})
		components.Lighting.SetValue(entry, components.LightingData{On: true})
	}
	return entry
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(getOrCreateControls(ecs))
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}
