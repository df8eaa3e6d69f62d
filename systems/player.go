package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/config/input"
	"github.com/automoto/firstperson/locomotion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the controller's frame phase from this frame's input.
// Must run after UpdateInput.
func UpdatePlayer(ecs *ecs.ECS) {
	e, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	in := getOrCreateInput(ecs)
	t := frameTime(ecs)

	sample := inputSample(in)
	before := player.Controller.Status()
	player.Controller.Update(sample, t.FrameDt)
	after := player.Controller.Status()

	if sample.JumpPressed && before.Grounded && player.Controller.Settings().Jump.Enabled {
		PlaySFX(ecs, cfg.SoundJump)
	}
	if !before.Grounded && after.Grounded {
		PlaySFX(ecs, cfg.SoundLand)
	}
	if before.Zoomed != after.Zoomed {
		PlaySFX(ecs, cfg.SoundZoom)
	}
}

// inputSample converts the polled actions into the controller's per-frame input.
func inputSample(in *components.InputData) locomotion.InputSample {
	crouch := GetAction(in, input.ActionCrouch)
	zoom := GetAction(in, input.ActionZoom)
	return locomotion.InputSample{
		Look:           in.Look,
		Move:           in.Move,
		JumpPressed:    GetAction(in, input.ActionJump).JustPressed,
		CrouchPressed:  crouch.JustPressed,
		CrouchReleased: crouch.JustReleased,
		SprintHeld:     GetAction(in, input.ActionSprint).Pressed,
		ZoomPressed:    zoom.JustPressed,
		ZoomReleased:   zoom.JustReleased,
	}
}

// stepPlayer runs the controller's fixed phase.
func stepPlayer(ecs *ecs.ECS) {
	e, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	components.Player.Get(e).Controller.FixedUpdate()
}

// respawnFallenPlayer puts the player back at the arena spawn after falling
// below the kill plane.
func respawnFallenPlayer(ecs *ecs.ECS) {
	e, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Physics.Get(e)
	if !body.OutOfBounds() {
		return
	}

	player := components.Player.Get(e)
	player.Falls++
	body.SetPosition(player.Spawn)
	body.SetVelocity(mgl64.Vec3{})

	logrus.WithFields(logrus.Fields{
		"falls": player.Falls,
		"spawn": player.Spawn,
	}).Info("player fell out of the arena, respawned")
}

func playerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return components.Player.First(ecs.World)
}
