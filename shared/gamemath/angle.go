package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Repeat wraps t into [0, length].
func Repeat(t, length float64) float64 {
	return mgl64.Clamp(t-math.Floor(t/length)*length, 0, length)
}

// DeltaAngle is the shortest signed difference between two angles in degrees.
func DeltaAngle(current, target float64) float64 {
	delta := Repeat(target-current, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// LerpAngle interpolates between two angles in degrees along the shortest
// arc. t is clamped to [0, 1].
func LerpAngle(a, b, t float64) float64 {
	return a + DeltaAngle(a, b)*Clamp01(t)
}

// NormalizeAngle maps an angle in degrees into [-180, 180].
func NormalizeAngle(deg float64) float64 {
	return DeltaAngle(0, deg)
}
