package frontend

import (
	"strings"

	"github.com/automoto/knockout/components"
	cfg "github.com/automoto/knockout/config"
	"github.com/automoto/knockout/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Binding maps a logical action to physical inputs
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings is the default control layout
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionBlock: {
		Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyDown, ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom, ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionDodgeLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionDodgeRight: {
		Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionPunchLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft, ebiten.StandardGamepadButtonFrontTopLeft},
	},
	cfg.ActionPunchRight: {
		Keys:                   []ebiten.Key{ebiten.KeyK, ebiten.KeyX},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop, ebiten.StandardGamepadButtonFrontTopRight},
	},
	cfg.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyF1},
	},
	cfg.ActionFullscreen: {
		Keys: []ebiten.Key{ebiten.KeyF11},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input into the Input singleton.
// Must run BEFORE UpdatePause and the fight systems.
func UpdateInput(ecs *ecs.ECS) {
	input := systems.GetOrCreateInput(ecs)
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// The left stick dodges sideways and blocks when pulled down.
	left, right, down, gpID := getAnalogStickState(gamepadIDs)
	if left || right || down {
		input.Current[cfg.ActionDodgeLeft] = input.Current[cfg.ActionDodgeLeft] || left
		input.Current[cfg.ActionDodgeRight] = input.Current[cfg.ActionDodgeRight] || right
		input.Current[cfg.ActionBlock] = input.Current[cfg.ActionBlock] || down
		gamepadUsed = true
		activeGamepadID = gpID
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}
	return
}

// controlsHint returns the control summary for the last used device
func controlsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Dodge   Square/Triangle: Punch   Circle: Block   Options: Pause"
	case components.InputXbox:
		return "D-Pad: Dodge   X/Y: Punch   B: Block   Start: Pause"
	}
	return "A/D: Dodge   J/K: Punch   S: Block   Esc: Pause   F1: Debug"
}
