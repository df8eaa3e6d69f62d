package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera is the late phase: it integrates look input once every other
// frame system has run, then places the eye at the head joint.
func UpdateCamera(ecs *ecs.ECS) {
	e, ok := playerEntry(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	t := frameTime(ecs)

	player.Controller.LateUpdate(t.FrameDt)

	body := components.Physics.Get(e)
	camera := components.Camera.Get(e)
	joint := components.Joint.Get(e)

	camera.Yaw = body.Yaw()
	camera.Eye = eyePosition(body.Position(), body.LocalScale(), camera.Yaw, joint.Local)
}

// eyePosition transforms the joint's local offset by the body's scale and yaw.
func eyePosition(bodyPos, scale mgl64.Vec3, yaw float64, local mgl64.Vec3) mgl64.Vec3 {
	scaled := mgl64.Vec3{local.X() * scale.X(), local.Y() * scale.Y(), local.Z() * scale.Z()}
	return bodyPos.Add(yawRotation(yaw).Mul3x1(scaled))
}

func yawRotation(yaw float64) mgl64.Mat3 {
	return mgl64.Rotate3DY(mgl64.DegToRad(yaw))
}

// rightOf is the horizontal right vector for a yaw in degrees.
func rightOf(yaw float64) mgl64.Vec3 {
	return yawRotation(yaw).Mul3x1(mgl64.Vec3{1, 0, 0})
}
