package locomotion

import (
	"math"

	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// HeadBobAnimator oscillates the camera joint while walking.
type HeadBobAnimator struct {
	speed          float64
	amount         mgl64.Vec3
	smoothing      float64
	sprintSpeed    float64
	speedReduction float64

	neutral mgl64.Vec3
	current mgl64.Vec3
	timer   float64
}

func NewHeadBobAnimator(s HeadBobSettings, sprintSpeed, speedReduction float64, neutral mgl64.Vec3) *HeadBobAnimator {
	return &HeadBobAnimator{
		speed:          s.Speed,
		amount:         s.Amount,
		smoothing:      s.Smoothing,
		sprintSpeed:    sprintSpeed,
		speedReduction: speedReduction,
		neutral:        neutral,
		current:        neutral,
	}
}

// Advance returns the joint's local position for this frame.
func (h *HeadBobAnimator) Advance(dt float64, walking, sprinting, crouched bool) mgl64.Vec3 {
	if !walking {
		h.timer = 0
		h.current = gamemath.LerpVec3(h.current, h.neutral, dt*h.speed)
		return h.current
	}

	switch {
	case sprinting:
		h.timer += dt * (h.speed + h.sprintSpeed)
	case crouched:
		h.timer += dt * h.speed * h.speedReduction
	default:
		h.timer += dt * h.speed
	}
	target := h.neutral.Add(h.amount.Mul(math.Sin(h.timer)))
	h.current = gamemath.LerpVec3(h.current, target, dt*h.speed*h.smoothing)
	return h.current
}

func (h *HeadBobAnimator) Timer() float64       { return h.timer }
func (h *HeadBobAnimator) Offset() mgl64.Vec3   { return h.current.Sub(h.neutral) }
func (h *HeadBobAnimator) Position() mgl64.Vec3 { return h.current }
