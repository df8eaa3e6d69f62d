package systems

import (
	"math"
	"strings"

	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/config/input"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	in := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	in.Previous = in.Current
	in.Current = [input.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range input.Config.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				in.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	updateCursorCapture(in)

	move, look, stickGpID, stickUsed := readSticks(gamepadIDs)
	if stickUsed {
		gamepadUsed = true
		activeGamepadID = stickGpID
	}
	in.Move = mgl64.Vec2{
		keyAxis(in, input.ActionMoveLeft, input.ActionMoveRight) + move.X(),
		keyAxis(in, input.ActionMoveBack, input.ActionMoveForward) + move.Y(),
	}
	in.Move = clampAxes(in.Move)

	in.Look = look.Mul(input.Config.StickLookScale)
	if in.CursorCaptured {
		x, y := ebiten.CursorPosition()
		dx, dy := in.CursorDelta(x, y)
		// Screen y grows downward; look up is positive.
		in.Look = in.Look.Add(mgl64.Vec2{float64(dx), float64(-dy)}.Mul(input.Config.MouseScale))
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		in.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		in.LastInputMethod = components.InputKeyboard
	}
}

// updateCursorCapture releases the cursor on the release action and
// recaptures it on a click inside the window.
func updateCursorCapture(in *components.InputData) {
	if !in.CursorCaptured {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			in.CursorCaptured = true
			in.ResetCursor()
			// Swallow the click so it does not fire a weapon.
			in.Current[input.ActionFire] = false
		}
		return
	}
	if GetAction(in, input.ActionReleaseCursor).JustPressed || ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		in.CursorCaptured = false
		in.ResetCursor()
	}
}

// CaptureCursor locks the cursor to the window for mouse look.
func CaptureCursor(ecs *ecs.ECS) {
	in := getOrCreateInput(ecs)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	in.CursorCaptured = true
	in.ResetCursor()
}

func keyAxis(in *components.InputData, negative, positive input.ActionID) float64 {
	var v float64
	if in.Current[negative] {
		v--
	}
	if in.Current[positive] {
		v++
	}
	return v
}

func clampAxes(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		math.Max(-1, math.Min(1, v.X())),
		math.Max(-1, math.Min(1, v.Y())),
	}
}

// readSticks returns the left stick as move (forward positive) and the right
// stick as look (up positive) from the first gamepad outside the deadzone.
func readSticks(gamepads []ebiten.GamepadID) (move, look mgl64.Vec2, activeGpID ebiten.GamepadID, used bool) {
	deadzone := input.Config.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)

		l := mgl64.Vec2{applyDeadzone(lx, deadzone), -applyDeadzone(ly, deadzone)}
		r := mgl64.Vec2{applyDeadzone(rx, deadzone), -applyDeadzone(ry, deadzone)}
		if l.Len() > 0 || r.Len() > 0 {
			return l, r, gpID, true
		}
	}

	return
}

func applyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) < deadzone {
		return 0
	}
	return v
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(in *components.InputData, id input.ActionID) components.ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
