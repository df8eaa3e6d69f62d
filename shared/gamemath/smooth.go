package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// minSmoothTime keeps omega finite when a smoothing time of 0 is configured.
const minSmoothTime = 0.0001

// SmoothDampVec2 moves current toward target with a critically damped spring
// that settles in roughly smoothTime seconds. velocity is the filter state and
// is updated in place. A non-positive dt leaves both unchanged.
func SmoothDampVec2(current, target mgl64.Vec2, velocity *mgl64.Vec2, smoothTime, dt float64) mgl64.Vec2 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current.Sub(target)
	temp := velocity.Add(change.Mul(omega)).Mul(dt)
	*velocity = velocity.Sub(temp.Mul(omega)).Mul(exp)
	out := target.Add(change.Add(temp).Mul(exp))

	// Overshoot guard: never pass the target in a single step.
	if target.Sub(current).Dot(out.Sub(target)) > 0 {
		out = target
		*velocity = mgl64.Vec2{}
	}
	return out
}

// Clamp01 clamps t to [0, 1].
func Clamp01(t float64) float64 {
	return mgl64.Clamp(t, 0, 1)
}

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// LerpVec3 interpolates between a and b with t clamped to [0, 1].
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(Clamp01(t)))
}
