package locomotion

import "github.com/go-gl/mathgl/mgl64"

// CrouchState tracks crouching under a hold or toggle policy. The scale and
// speed multiplier are derived from the flag, so repeated transitions never drift.
type CrouchState struct {
	holdMode       bool
	height         float64
	speedReduction float64
	originalScale  mgl64.Vec3
	crouched       bool
}

func NewCrouchState(holdMode bool, height, speedReduction float64, originalScale mgl64.Vec3) *CrouchState {
	return &CrouchState{
		holdMode:       holdMode,
		height:         height,
		speedReduction: speedReduction,
		originalScale:  originalScale,
	}
}

// Handle applies the crouch key edges and reports whether the state changed.
func (c *CrouchState) Handle(pressed, released bool) bool {
	if c.holdMode {
		if pressed {
			return c.Set(true)
		}
		if released {
			return c.Set(false)
		}
		return false
	}
	if pressed {
		return c.Set(!c.crouched)
	}
	return false
}

// Set forces the state and reports whether it changed.
func (c *CrouchState) Set(crouched bool) bool {
	if c.crouched == crouched {
		return false
	}
	c.crouched = crouched
	return true
}

func (c *CrouchState) Crouched() bool { return c.crouched }
func (c *CrouchState) HoldMode() bool { return c.holdMode }

// SetHoldMode switches the policy. The current crouch flag is kept.
func (c *CrouchState) SetHoldMode(hold bool) { c.holdMode = hold }

// Scale is the body scale for the current state.
func (c *CrouchState) Scale() mgl64.Vec3 {
	if c.crouched {
		return mgl64.Vec3{c.originalScale.X(), c.height, c.originalScale.Z()}
	}
	return c.originalScale
}

// SpeedMultiplier scales the base walk speed.
func (c *CrouchState) SpeedMultiplier() float64 {
	if c.crouched {
		return c.speedReduction
	}
	return 1
}
