package locomotion

import (
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Orientation is the camera state in degrees.
type Orientation struct {
	CurrentYaw   float64
	CurrentPitch float64
	TargetYaw    float64
	TargetPitch  float64
}

// CameraRig integrates look input into yaw and pitch and drives the field of view.
type CameraRig struct {
	maxLookAngle  float64
	smoothing     bool
	smoothingRate float64

	baseFOV      float64
	zoomEnabled  bool
	holdToZoom   bool
	zoomFOV      float64
	sprintFOV    float64
	zoomStepTime float64

	orientation Orientation
	fov         float64
	targetFOV   float64
	zoomed      bool
}

func NewCameraRig(cam CameraSettings, zoom ZoomSettings, sprintFOV float64) *CameraRig {
	pitch := mgl64.Clamp(gamemath.NormalizeAngle(cam.InitialPitch), -cam.MaxLookAngle, cam.MaxLookAngle)
	return &CameraRig{
		maxLookAngle:  cam.MaxLookAngle,
		smoothing:     cam.Smoothing,
		smoothingRate: cam.SmoothingRate,
		baseFOV:       cam.FOV,
		zoomEnabled:   zoom.Enabled,
		holdToZoom:    zoom.Hold,
		zoomFOV:       zoom.FOV,
		sprintFOV:     sprintFOV,
		zoomStepTime:  zoom.StepTime,
		orientation: Orientation{
			CurrentYaw:   cam.InitialYaw,
			CurrentPitch: pitch,
			TargetYaw:    cam.InitialYaw,
			TargetPitch:  pitch,
		},
		fov:       cam.FOV,
		targetFOV: cam.FOV,
	}
}

// Integrate applies one late-phase step of look input.
func (r *CameraRig) Integrate(look mgl64.Vec2, sensitivity float64, invert bool, dt float64) {
	o := &r.orientation
	o.TargetYaw += look.X() * sensitivity
	if invert {
		o.TargetPitch += look.Y() * sensitivity
	} else {
		o.TargetPitch -= look.Y() * sensitivity
	}
	o.TargetPitch = mgl64.Clamp(o.TargetPitch, -r.maxLookAngle, r.maxLookAngle)

	if !r.smoothing {
		o.CurrentYaw = o.TargetYaw
		o.CurrentPitch = o.TargetPitch
		return
	}
	t := r.smoothingRate * dt
	o.CurrentYaw = gamemath.LerpAngle(o.CurrentYaw, o.TargetYaw, t)
	o.CurrentPitch = gamemath.LerpAngle(o.CurrentPitch, o.TargetPitch, t)
}

// HandleZoom applies the zoom key edges according to the configured policy.
// Zoom requests are ignored while sprinting.
func (r *CameraRig) HandleZoom(pressed, released, sprinting bool) {
	if !r.zoomEnabled || sprinting {
		return
	}
	if r.holdToZoom {
		if pressed {
			r.zoomed = true
		} else if released {
			r.zoomed = false
		}
		return
	}
	if pressed {
		r.zoomed = !r.zoomed
	}
}

// UpdateFOV picks the target field of view and moves toward it.
func (r *CameraRig) UpdateFOV(sprinting bool, dt float64) float64 {
	switch {
	case sprinting:
		r.zoomed = false
		r.targetFOV = r.sprintFOV
	case r.zoomed:
		r.targetFOV = r.zoomFOV
	default:
		r.targetFOV = r.baseFOV
	}
	r.fov = gamemath.Lerp(r.fov, r.targetFOV, dt*r.zoomStepTime)
	return r.fov
}

func (r *CameraRig) Orientation() Orientation { return r.orientation }
func (r *CameraRig) FOV() float64             { return r.fov }
func (r *CameraRig) TargetFOV() float64       { return r.targetFOV }
func (r *CameraRig) Zoomed() bool             { return r.zoomed }

// SetHoldToZoom switches the zoom policy. An active zoom stays on.
func (r *CameraRig) SetHoldToZoom(hold bool) { r.holdToZoom = hold }
