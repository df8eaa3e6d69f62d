package components

import (
	"github.com/automoto/firstperson/shared/hud"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HUDData struct {
	StaminaBar *hud.StaminaBar
	Bar        hud.BarState

	// HitMarker pulses the crosshair after a projectile hits an enemy.
	HitMarker *gween.Tween
	HitAlpha  float64

	ShowDebug bool
}

var HUD = donburi.NewComponentType[HUDData]()
