package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the first-person view. The locomotion controller writes
// pitch and field of view through SetPitch and SetFieldOfView; the renderer
// reads the rest.
type CameraData struct {
	Pitch float64 // degrees, positive looks down
	FOV   float64 // vertical, degrees

	// Eye is the world-space eye position, refreshed each frame.
	Eye mgl64.Vec3
	Yaw float64
}

func (c *CameraData) SetPitch(deg float64)       { c.Pitch = deg }
func (c *CameraData) SetFieldOfView(deg float64) { c.FOV = deg }

var Camera = donburi.NewComponentType[CameraData]()

// JointData is the camera's offset from the body centre, animated by head bob.
type JointData struct {
	Local mgl64.Vec3
}

func (j *JointData) LocalPosition() mgl64.Vec3     { return j.Local }
func (j *JointData) SetLocalPosition(p mgl64.Vec3) { j.Local = p }

var Joint = donburi.NewComponentType[JointData]()
