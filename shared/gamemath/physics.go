package gamemath

import "github.com/go-gl/mathgl/mgl64"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampHorizontal clamps the X and Z components of v to [-max, max] and zeroes Y.
func ClampHorizontal(v mgl64.Vec3, max float64) mgl64.Vec3 {
	return mgl64.Vec3{ClampSpeed(v.X(), max), 0, ClampSpeed(v.Z(), max)}
}

// Significant reports whether the horizontal components of v exceed eps on either axis.
func Significant(v mgl64.Vec3, eps float64) bool {
	return v.X() > eps || v.X() < -eps || v.Z() > eps || v.Z() < -eps
}

// SeekVelocity returns a velocity of the given speed pointing from -> to on
// the horizontal plane. Returns zero when the points coincide.
func SeekVelocity(from, to mgl64.Vec3, speed float64) mgl64.Vec3 {
	dir := mgl64.Vec3{to.X() - from.X(), 0, to.Z() - from.Z()}
	dist := dir.Len()
	if dist == 0 {
		return mgl64.Vec3{}
	}
	return dir.Mul(speed / dist)
}

// HorizontalDistance is the XZ-plane distance between two points.
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	return mgl64.Vec2{a.X() - b.X(), a.Z() - b.Z()}.Len()
}
