// Package input maps physical keys, mouse buttons and gamepad buttons to
// logical actions.
package input

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCrouch
	ActionSprint
	ActionZoom
	ActionFire
	ActionWeaponWaterGun
	ActionWeaponPlunger
	ActionWeaponWhirlpool
	ActionWeaponHolster
	ActionReleaseCursor
	ActionToggleInvert
	ActionToggleCrouchMode
	ActionToggleZoomMode
	ActionSensitivityDown
	ActionSensitivityUp
	ActionToggleFullscreen
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Mapping holds all input bindings and analog scaling
type Mapping struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// MouseScale converts cursor pixels per frame into look axis units.
	MouseScale float64
	// StickLookScale converts right stick deflection into look axis units per frame.
	StickLookScale float64
	// SensitivityStep is the amount the sensitivity keys add or remove.
	SensitivityStep float64
}

// Config is the global input configuration
var Config Mapping

func init() {
	Config = Mapping{
		AnalogDeadzone:  0.25,
		MouseScale:      0.1,
		StickLookScale:  1.5,
		SensitivityStep: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				// D-pad Up (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
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
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionCrouch: {
				Keys: []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyC},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionSprint: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft},
				// Left stick press
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftStick,
				},
			},
			ActionZoom: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomLeft,
				},
			},
			ActionFire: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionWeaponWaterGun:  {Keys: []ebiten.Key{ebiten.Key1}},
			ActionWeaponPlunger:   {Keys: []ebiten.Key{ebiten.Key2}},
			ActionWeaponWhirlpool: {Keys: []ebiten.Key{ebiten.Key3}},
			ActionWeaponHolster:   {Keys: []ebiten.Key{ebiten.Key0}},
			ActionReleaseCursor: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleInvert:     {Keys: []ebiten.Key{ebiten.KeyF2}},
			ActionToggleCrouchMode: {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionToggleZoomMode:   {Keys: []ebiten.Key{ebiten.KeyF4}},
			ActionSensitivityDown:  {Keys: []ebiten.Key{ebiten.KeyBracketLeft}},
			ActionSensitivityUp:    {Keys: []ebiten.Key{ebiten.KeyBracketRight}},
			ActionToggleFullscreen: {Keys: []ebiten.Key{ebiten.KeyF11}},
			ActionToggleDebug:      {Keys: []ebiten.Key{ebiten.KeyF1}},
		},
	}
}
