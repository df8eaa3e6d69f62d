package locomotion

import "github.com/go-gl/mathgl/mgl64"

// RigidBody is the physics-engine owned body the controller steers. The
// controller never integrates it; it only reads velocity and requests changes.
type RigidBody interface {
	Velocity() mgl64.Vec3
	// ApplyVelocityChange adds dv to the velocity, ignoring mass.
	ApplyVelocityChange(dv mgl64.Vec3)
	// ApplyImpulse adds impulse/mass to the velocity.
	ApplyImpulse(impulse mgl64.Vec3)
}

// Transform exposes the pose of the controlled body.
type Transform interface {
	Position() mgl64.Vec3
	LocalScale() mgl64.Vec3
	SetLocalScale(scale mgl64.Vec3)
	// SetYaw rotates the body about the vertical axis, in degrees.
	SetYaw(deg float64)
}

// Camera receives the view pitch and field of view, both in degrees.
type Camera interface {
	SetPitch(deg float64)
	SetFieldOfView(deg float64)
}

// Joint is the camera mount moved by head bob, in body-local space.
type Joint interface {
	LocalPosition() mgl64.Vec3
	SetLocalPosition(p mgl64.Vec3)
}

// RayHit describes the closest surface hit by a ray cast.
type RayHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// SpatialQuery answers scene queries against static and moving geometry.
type SpatialQuery interface {
	// CastRay returns the closest hit along dir (unit length) within maxDist.
	CastRay(origin, dir mgl64.Vec3, maxDist float64) (RayHit, bool)
}

// Rig bundles the collaborators a Controller drives. Joint is only required
// when head bob is enabled.
type Rig struct {
	Body      RigidBody
	Transform Transform
	Camera    Camera
	Query     SpatialQuery
	Joint     Joint
}
