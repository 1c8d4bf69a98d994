package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDash
	ActionAttack
	ActionToggleLight
	ActionDebug
	ActionReload
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				// A / Cross
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionDash: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyK},
				// B / Circle
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionAttack: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyJ},
				// X / Square
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionToggleLight: {
				Keys: []ebiten.Key{ebiten.KeyL},
				// Y / Triangle
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionReload: {
				Keys: []ebiten.Key{ebiten.KeyF5},
			},
		},
	}
}
