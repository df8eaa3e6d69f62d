package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/config/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePreferences handles the in-game option keys. Every change is pushed
// into the live controller and saved.
func UpdatePreferences(ecs *ecs.ECS) {
	in := getOrCreateInput(ecs)
	prefs := cfg.CurrentPreferences()
	changed := false

	if GetAction(in, input.ActionToggleInvert).JustPressed {
		prefs.InvertLook = !prefs.InvertLook
		changed = true
	}
	if GetAction(in, input.ActionToggleCrouchMode).JustPressed {
		prefs.HoldToCrouch = !prefs.HoldToCrouch
		changed = true
	}
	if GetAction(in, input.ActionToggleZoomMode).JustPressed {
		prefs.HoldToZoom = !prefs.HoldToZoom
		changed = true
	}
	if GetAction(in, input.ActionSensitivityDown).JustPressed {
		prefs.Sensitivity -= input.Config.SensitivityStep
		changed = true
	}
	if GetAction(in, input.ActionSensitivityUp).JustPressed {
		prefs.Sensitivity += input.Config.SensitivityStep
		changed = true
	}
	if GetAction(in, input.ActionToggleFullscreen).JustPressed {
		prefs.Fullscreen = !prefs.Fullscreen
		changed = true
	}

	if GetAction(in, input.ActionToggleDebug).JustPressed {
		if e, ok := components.HUD.First(ecs.World); ok {
			h := components.HUD.Get(e)
			h.ShowDebug = !h.ShowDebug
		}
	}

	if !changed {
		return
	}

	cfg.ApplyPreferences(prefs)
	prefs = cfg.CurrentPreferences()
	applyPreferencesToPlayer(ecs, prefs)
	ebiten.SetFullscreen(prefs.Fullscreen)

	logrus.WithFields(logrus.Fields{
		"sensitivity":    prefs.Sensitivity,
		"invert":         prefs.InvertLook,
		"hold_to_crouch": prefs.HoldToCrouch,
		"hold_to_zoom":   prefs.HoldToZoom,
	}).Info("preferences changed")
	_ = SavePreferences(prefs)
}

func applyPreferencesToPlayer(ecs *ecs.ECS, p cfg.Preferences) {
	e, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	ctrl := components.Player.Get(e).Controller
	ctrl.SetLookPreferences(p.Sensitivity, p.InvertLook)
	ctrl.SetHoldModes(p.HoldToCrouch, p.HoldToZoom)
}
