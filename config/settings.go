package config

import (
	"math"

	"github.com/automoto/firstperson/locomotion"
)

// Sensitivity bounds for the in-game adjustment keys.
const (
	MinSensitivity = 0.25
	MaxSensitivity = 10.0
)

// Preferences are the player-facing options persisted between sessions.
type Preferences struct {
	Sensitivity  float64 `json:"sensitivity"`
	InvertLook   bool    `json:"invertLook"`
	HoldToCrouch bool    `json:"holdToCrouch"`
	HoldToZoom   bool    `json:"holdToZoom"`
	Fullscreen   bool    `json:"fullscreen"`
}

// CurrentPreferences reads the preference subset out of the active player config.
func CurrentPreferences() Preferences {
	l := Player.Locomotion
	return Preferences{
		Sensitivity:  l.Camera.Sensitivity,
		InvertLook:   l.Camera.Invert,
		HoldToCrouch: l.Crouch.Hold,
		HoldToZoom:   l.Zoom.Hold,
		Fullscreen:   Fullscreen,
	}
}

// ApplyPreferences writes p into the active player config. Out of range
// sensitivities are clamped rather than rejected so a hand-edited save
// cannot brick startup.
func ApplyPreferences(p Preferences) {
	Player.Locomotion.Camera.Sensitivity = ClampSensitivity(p.Sensitivity)
	Player.Locomotion.Camera.Invert = p.InvertLook
	Player.Locomotion.Crouch.Hold = p.HoldToCrouch
	Player.Locomotion.Zoom.Hold = p.HoldToZoom
	Fullscreen = p.Fullscreen
}

// ClampSensitivity keeps s inside [MinSensitivity, MaxSensitivity]; NaN maps
// to the default.
func ClampSensitivity(s float64) float64 {
	if math.IsNaN(s) {
		return defaultSensitivity
	}
	return math.Max(MinSensitivity, math.Min(MaxSensitivity, s))
}

// Fullscreen is the window mode; it is not part of any scene config.
var Fullscreen bool

var defaultSensitivity = locomotion.DefaultSettings().Camera.Sensitivity
